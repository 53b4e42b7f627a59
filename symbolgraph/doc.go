// Package symbolgraph relates the symbols of an alphabet.Alphabet to each
// other and exposes the result as a small, immutable directed graph.
//
// For a symbol S with bits b₀b₁…b_{K-1}:
//
//	forward 0:  b₁…b_{K-1}+"0"   (slide the window one step, next bit 0)
//	forward 1:  b₁…b_{K-1}+"1"   (slide the window one step, next bit 1)
//	morphed:    sequence.Homomorphism(b₀…b_{K-1})   (2K bits)
//	child 0:    morphed[K-1 : 2K-1]
//	child 1:    morphed[K   : 2K]
//
// Each of the four windows is looked up in the alphabet; a miss is recorded
// as None and produces no edge. Misses are expected for forward neighbors
// (the window has no sequence context) and are never errors.
//
// Edge kinds
//
//	SlideZero, SlideOne   "slide-forward" edges labeled by the incoming bit.
//	MorphZero, MorphOne   "morph-expand" edges, the ordered child pair.
//
// The morph-expand pairs form a substitution over labels: Substitute maps a
// rendering of T[0 : K+M-1] to the rendering of T[K-1 : 2K+2M-2], the
// self-similar image of the prefix one generation later.
//
// Traversal
//
//	Walk is a breadth-first search over any subset of edge kinds with the
//	familiar hooks: WithOnVisit, WithMaxDepth, WithContext. Neighbors are
//	enqueued in kind order, so the visit order is deterministic.
//
// Complexity (N = |alphabet|)
//
//   - Build:      O(N·K) time, O(N·K) space.
//   - Edges:      O(N).
//   - Walk:       O(N) time, O(N) space.
//   - Substitute: O(M).
//
// Errors
//
//   - ErrNilAlphabet      Build(nil).
//   - ErrAmbiguousLabel   the alphabet carries clamped UnknownLabel symbols.
//   - ErrGraphNil         Walk/Substitute on a nil graph.
//   - ErrUnknownLabel     a label that names no node.
//   - ErrOptionViolation  invalid Walk option (e.g. negative depth).
package symbolgraph
