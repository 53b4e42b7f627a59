// Package symbolgraph defines Node, Edge, EdgeKind and the sentinel errors.
package symbolgraph

import (
	"errors"

	"github.com/katalvlaran/thuemorse/alphabet"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrNilAlphabet is returned by Build(nil).
	ErrNilAlphabet = errors.New("symbolgraph: alphabet is nil")

	// ErrAmbiguousLabel is returned when the alphabet holds symbols labeled
	// alphabet.UnknownLabel (clamped overflow); their labels cannot name nodes.
	ErrAmbiguousLabel = errors.New("symbolgraph: alphabet has unlabeled symbols")

	// ErrReservedLabel is returned when a symbol is labeled None, which
	// would be indistinguishable from an unresolved reference.
	ErrReservedLabel = errors.New("symbolgraph: label is reserved")

	// ErrGraphNil is returned when a nil *Graph is passed.
	ErrGraphNil = errors.New("symbolgraph: graph is nil")

	// ErrUnknownLabel is returned when a label names no node.
	ErrUnknownLabel = errors.New("symbolgraph: unknown label")

	// ErrOptionViolation is returned when an invalid WalkOption is supplied.
	ErrOptionViolation = errors.New("symbolgraph: invalid option supplied")
)

// None marks an unresolved forward or child reference.
const None = "none"

// EdgeKind classifies an edge.
type EdgeKind int

const (
	// SlideZero: slide forward with incoming bit 0.
	SlideZero EdgeKind = iota
	// SlideOne: slide forward with incoming bit 1.
	SlideOne
	// MorphZero: first child under the doubling morphism.
	MorphZero
	// MorphOne: second child under the doubling morphism.
	MorphOne
)

// Edge kind groups, in enqueue order.
var (
	AllKinds   = []EdgeKind{SlideZero, SlideOne, MorphZero, MorphOne}
	SlideKinds = []EdgeKind{SlideZero, SlideOne}
	MorphKinds = []EdgeKind{MorphZero, MorphOne}
)

// String returns "slide0", "slide1", "morph0" or "morph1".
func (k EdgeKind) String() string {
	switch k {
	case SlideZero:
		return "slide0"
	case SlideOne:
		return "slide1"
	case MorphZero:
		return "morph0"
	case MorphOne:
		return "morph1"
	default:
		return "unknown"
	}
}

// IsSlide reports whether k is a slide-forward kind.
func (k EdgeKind) IsSlide() bool { return k == SlideZero || k == SlideOne }

// IsMorph reports whether k is a morph-expand kind.
func (k EdgeKind) IsMorph() bool { return k == MorphZero || k == MorphOne }

// Node is one symbol together with its resolved references.
//
// Forward and Children hold labels, or None when the window is not a symbol.
type Node struct {
	// Symbol is the alphabet entry this node stands for.
	alphabet.Symbol

	// Forward[b] is the symbol reached by sliding with incoming bit b.
	Forward [2]string

	// Morphed is sequence.Homomorphism(Bits), length 2K.
	Morphed string

	// Children are the labels of Morphed[K-1:2K-1] and Morphed[K:2K].
	Children [2]string
}

// Target returns the reference the given edge kind follows, or None.
func (n Node) Target(k EdgeKind) string {
	switch k {
	case SlideZero:
		return n.Forward[0]
	case SlideOne:
		return n.Forward[1]
	case MorphZero:
		return n.Children[0]
	case MorphOne:
		return n.Children[1]
	default:
		return None
	}
}

// Edge is a resolved reference From→To of a given Kind.
type Edge struct {
	From string
	To   string
	Kind EdgeKind
}
