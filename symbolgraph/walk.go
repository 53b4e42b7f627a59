package symbolgraph

import (
	"context"
	"fmt"
)

// WalkOption configures Walk via functional arguments.
// An invalid option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when Walk is invoked.
type WalkOption func(*WalkOptions)

// WalkOptions holds parameters and callbacks for Walk.
type WalkOptions struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// Kinds lists the edge kinds to follow, in enqueue order.
	Kinds []EdgeKind

	// MaxDepth, if > 0, stops exploring beyond this depth; 0 means no limit.
	MaxDepth int

	// OnVisit is called when visiting a node. A returned error aborts Walk.
	OnVisit func(label string, depth int) error

	err error
}

// DefaultWalkOptions returns background context, all edge kinds, no depth
// limit and a no-op OnVisit.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		Ctx:      context.Background(),
		Kinds:    AllKinds,
		MaxDepth: 0,
		OnVisit:  func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) WalkOption {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithKinds restricts Walk to the given edge kinds. An empty list or an
// unknown kind is an ErrOptionViolation.
func WithKinds(kinds ...EdgeKind) WalkOption {
	return func(o *WalkOptions) {
		if len(kinds) == 0 {
			o.err = fmt.Errorf("%w: no edge kinds", ErrOptionViolation)
			return
		}
		for _, k := range kinds {
			if !k.IsSlide() && !k.IsMorph() {
				o.err = fmt.Errorf("%w: edge kind %d", ErrOptionViolation, int(k))
				return
			}
		}
		o.Kinds = kinds
	}
}

// WithMaxDepth stops the walk at depth d (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) WalkOption {
	return func(o *WalkOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a visit callback; its error stops the walk.
func WithOnVisit(fn func(label string, depth int) error) WalkOption {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WalkResult holds the visit order, depths and BFS-tree parents.
type WalkResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo returns the BFS-tree path from the start node to dest, or
// ErrUnknownLabel when the walk never reached dest.
func (r *WalkResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %q not reached", ErrUnknownLabel, dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// queueItem pairs a label with its depth.
type queueItem struct {
	label string
	depth int
}

// Walk runs breadth-first search over g from start, following only the
// configured edge kinds.
// Returns ErrGraphNil, ErrUnknownLabel, ErrOptionViolation, the context
// error on cancellation, or a wrapped OnVisit error.
func Walk(g *Graph, start string, opts ...WalkOption) (*WalkResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultWalkOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %q", ErrUnknownLabel, start)
	}

	n := g.Len()
	res := &WalkResult{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
	queue := make([]queueItem, 0, n)

	res.Depth[start] = 0
	queue = append(queue, queueItem{label: start, depth: 0})

	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, item.label)
		if err := o.OnVisit(item.label, item.depth); err != nil {
			return res, fmt.Errorf("symbolgraph: OnVisit error at %q: %w", item.label, err)
		}

		next := item.depth + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}
		node, _ := g.Node(item.label)
		for _, k := range o.Kinds {
			to := node.Target(k)
			if to == None {
				continue
			}
			if _, seen := res.Depth[to]; seen {
				continue
			}
			res.Depth[to] = next
			res.Parent[to] = item.label
			queue = append(queue, queueItem{label: to, depth: next})
		}
	}

	return res, nil
}
