// SPDX-License-Identifier: MIT
// Package: thuemorse/symbolgraph
//
// graph.go: Build and the read-only Graph queries.

package symbolgraph

import (
	"fmt"

	"github.com/katalvlaran/thuemorse/alphabet"
	"github.com/katalvlaran/thuemorse/sequence"
)

// Graph is the directed relation over an alphabet's symbols.
// It is immutable after Build and safe for concurrent readers.
type Graph struct {
	alph  *alphabet.Alphabet
	nodes []Node         // first-seen order
	index map[string]int // label → position in nodes
}

// Build computes the forward neighbors, morphed bits and children of every
// symbol in a. Unresolved references become None.
// Returns ErrNilAlphabet, ErrAmbiguousLabel or ErrReservedLabel.
// Complexity: O(N·K).
func Build(a *alphabet.Alphabet) (*Graph, error) {
	if a == nil {
		return nil, ErrNilAlphabet
	}

	k := a.K()
	g := &Graph{
		alph:  a,
		nodes: make([]Node, 0, a.Len()),
		index: make(map[string]int, a.Len()),
	}
	for _, s := range a.Symbols() {
		if s.Label == alphabet.UnknownLabel {
			return nil, fmt.Errorf("%w: symbol %q at index %d", ErrAmbiguousLabel, s.Bits, s.Index)
		}
		if s.Label == None {
			return nil, fmt.Errorf("%w: %q on symbol %q", ErrReservedLabel, None, s.Bits)
		}

		// slide: drop the first bit, append 0 or 1
		tail := s.Bits[1:]
		morphed := sequence.Homomorphism(s.Bits)

		n := Node{
			Symbol:  s,
			Forward: [2]string{resolve(a, tail+"0"), resolve(a, tail+"1")},
			Morphed: morphed,
			Children: [2]string{
				resolve(a, morphed[k-1:2*k-1]),
				resolve(a, morphed[k:2*k]),
			},
		}
		g.index[s.Label] = len(g.nodes)
		g.nodes = append(g.nodes, n)
	}

	return g, nil
}

// resolve returns the label of bits in a, or None.
func resolve(a *alphabet.Alphabet, bits string) string {
	if s, ok := a.Lookup(bits); ok {
		return s.Label
	}

	return None
}

// Alphabet returns the alphabet the graph was built from.
func (g *Graph) Alphabet() *alphabet.Alphabet { return g.alph }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Nodes returns a copy of the nodes in first-seen order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Node returns the node carrying label.
func (g *Graph) Node(label string) (Node, bool) {
	i, ok := g.index[label]
	if !ok {
		return Node{}, false
	}

	return g.nodes[i], true
}

// HasNode reports whether label names a node.
func (g *Graph) HasNode(label string) bool {
	_, ok := g.index[label]
	return ok
}

// Edges returns every resolved edge, ordered by node then by kind.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, 4*len(g.nodes))
	for _, n := range g.nodes {
		out = appendEdges(out, n, AllKinds)
	}

	return out
}

// EdgesOf returns the resolved out-edges of label restricted to kinds
// (all kinds when none are given), in the order of kinds.
func (g *Graph) EdgesOf(label string, kinds ...EdgeKind) ([]Edge, error) {
	n, ok := g.Node(label)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	if len(kinds) == 0 {
		kinds = AllKinds
	}

	return appendEdges(nil, n, kinds), nil
}

// Successors returns the distinct targets of label's out-edges of the given
// kinds, in first-encountered order.
func (g *Graph) Successors(label string, kinds ...EdgeKind) ([]string, error) {
	edges, err := g.EdgesOf(label, kinds...)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(edges))
	seen := make(map[string]bool, len(edges))
	for _, e := range edges {
		if !seen[e.To] {
			seen[e.To] = true
			out = append(out, e.To)
		}
	}

	return out, nil
}

// appendEdges appends n's resolved edges of the given kinds to dst.
func appendEdges(dst []Edge, n Node, kinds []EdgeKind) []Edge {
	for _, k := range kinds {
		if to := n.Target(k); to != None {
			dst = append(dst, Edge{From: n.Label, To: to, Kind: k})
		}
	}

	return dst
}
