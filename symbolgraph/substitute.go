package symbolgraph

import (
	"fmt"

	"github.com/katalvlaran/thuemorse/alphabet"
)

// Substitute replaces every label with its ordered child pair, applying the
// doubling morphism at the symbol level. alphabet.UnknownLabel expands to two
// UnknownLabel entries, and a None child is emitted as UnknownLabel as well.
//
// For R = Render(T[0 : K+M-1]) the result equals Render(T[K-1 : 2K+2M-2]).
// Returns ErrGraphNil or ErrUnknownLabel.
func Substitute(g *Graph, labels []string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	out := make([]string, 0, 2*len(labels))
	for i, l := range labels {
		if l == alphabet.UnknownLabel {
			out = append(out, alphabet.UnknownLabel, alphabet.UnknownLabel)
			continue
		}
		n, ok := g.Node(l)
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrUnknownLabel, l, i)
		}
		for _, c := range n.Children {
			if c == None {
				c = alphabet.UnknownLabel
			}
			out = append(out, c)
		}
	}

	return out, nil
}
