// SPDX-License-Identifier: MIT
// Package: thuemorse/alphabet
//
// alphabet.go: Symbol, Alphabet and the window scan that builds them.

package alphabet

import (
	"fmt"

	"github.com/katalvlaran/thuemorse/sequence"
)

// Symbol is one distinct K-length window of the scanned source.
type Symbol struct {
	// Bits is the defining window; len(Bits) == K.
	Bits string

	// Label is the display name assigned in first-seen order.
	Label string

	// Index is the zero-based first-seen position in the Alphabet.
	Index int
}

// Alphabet is the ordered, duplicate-free set of symbols of one scan.
//
// byBits gives O(1) membership; byLabel resolves labels back to symbols and
// skips UnknownLabel. Both are read-only after construction.
type Alphabet struct {
	k       int
	symbols []Symbol
	byBits  map[string]int
	byLabel map[string]int
}

// newAlphabet allocates an empty alphabet for window length k.
func newAlphabet(k int) *Alphabet {
	return &Alphabet{
		k:       k,
		symbols: make([]Symbol, 0),
		byBits:  make(map[string]int),
		byLabel: make(map[string]int),
	}
}

// K returns the window length.
func (a *Alphabet) K() int { return a.k }

// Len returns the number of symbols.
func (a *Alphabet) Len() int { return len(a.symbols) }

// Symbols returns a copy of the symbols in first-seen order.
func (a *Alphabet) Symbols() []Symbol {
	out := make([]Symbol, len(a.symbols))
	copy(out, a.symbols)

	return out
}

// At returns the symbol with first-seen index i. Panics if i is out of range,
// like a slice index.
func (a *Alphabet) At(i int) Symbol { return a.symbols[i] }

// Lookup returns the symbol whose Bits equal bits.
func (a *Alphabet) Lookup(bits string) (Symbol, bool) {
	i, ok := a.byBits[bits]
	if !ok {
		return Symbol{}, false
	}

	return a.symbols[i], true
}

// Contains reports whether bits is a symbol of the alphabet.
func (a *Alphabet) Contains(bits string) bool {
	_, ok := a.byBits[bits]
	return ok
}

// LabelOf returns the label of bits, or UnknownLabel on a miss.
func (a *Alphabet) LabelOf(bits string) string {
	if s, ok := a.Lookup(bits); ok {
		return s.Label
	}

	return UnknownLabel
}

// ByLabel returns the symbol carrying label. UnknownLabel never resolves.
func (a *Alphabet) ByLabel(label string) (Symbol, bool) {
	i, ok := a.byLabel[label]
	if !ok {
		return Symbol{}, false
	}

	return a.symbols[i], true
}

// Build scans source left to right and collects every distinct k-length
// window in first-seen order.
//
// Returns an empty alphabet for k == 0 or len(source) < k, ErrNegativeLength
// for k < 0, a wrapped sequence.ErrInvalidBit for a malformed source and
// ErrLabelSpaceExhausted when the label scheme runs out (unless clamped).
// A custom scheme that repeats a label or yields "" or UnknownLabel fails
// with ErrDuplicateLabel or ErrInvalidLabel.
// Complexity: O(len(source)·k) time, O(|alphabet|·k) space.
func Build(source string, k int, opts ...Option) (*Alphabet, error) {
	return build(methodBuild, []string{source}, k, newCatalogConfig(opts...))
}

// BuildFrom scans every source in order into one alphabet. Windows never
// span two sources.
func BuildFrom(sources []string, k int, opts ...Option) (*Alphabet, error) {
	return build(methodBuildFrom, sources, k, newCatalogConfig(opts...))
}

// SourceLength returns the Thue-Morse prefix length Discover scans for k:
// 8·P with P the smallest power of two ≥ k. Returns 0 for k ≤ 0.
func SourceLength(k int) int {
	if k <= 0 {
		return 0
	}

	return 8 * sequence.SmallestPowerOfTwoAtLeast(k)
}

// DiscoverySource returns the Thue-Morse prefix Discover scans for k,
// sequence.Generate(SourceLength(k)).
func DiscoverySource(k int) string {
	return sequence.Generate(SourceLength(k))
}

// Discover builds the alphabet of every k-length window of the infinite
// Thue-Morse sequence by scanning DiscoverySource(k).
func Discover(k int, opts ...Option) (*Alphabet, error) {
	if k < 0 {
		return nil, catalogErrorf(methodDiscover, ErrNegativeLength, "k=%d", k)
	}

	return build(methodDiscover, []string{DiscoverySource(k)}, k, newCatalogConfig(opts...))
}

// build is the shared scan loop behind Build, BuildFrom and Discover.
func build(method string, sources []string, k int, cfg catalogConfig) (*Alphabet, error) {
	if k < 0 {
		return nil, catalogErrorf(method, ErrNegativeLength, "k=%d", k)
	}
	for i, src := range sources {
		if err := sequence.Validate(src); err != nil {
			return nil, catalogErrorf(method, err, "source %d", i)
		}
	}

	a := newAlphabet(k)
	if k == 0 {
		// no non-empty window exists
		return a, nil
	}

	for _, src := range sources {
		for offset := 0; offset+k <= len(src); offset++ {
			window := src[offset : offset+k]
			if _, seen := a.byBits[window]; seen {
				continue
			}
			if err := a.insert(window, cfg); err != nil {
				return nil, catalogErrorf(method, err, "window %q at offset %d", window, offset)
			}
		}
	}

	return a, nil
}

// insert appends bits as the next symbol, naming it with cfg.labelFn.
func (a *Alphabet) insert(bits string, cfg catalogConfig) error {
	idx := len(a.symbols)
	label := UnknownLabel

	switch {
	case cfg.capacity == Unbounded || idx < cfg.capacity:
		label = cfg.labelFn(idx)
		if label == "" || label == UnknownLabel {
			return fmt.Errorf("%w: %q for index %d", ErrInvalidLabel, label, idx)
		}
		if prev, taken := a.byLabel[label]; taken {
			return fmt.Errorf("%w: %q for indexes %d and %d", ErrDuplicateLabel, label, prev, idx)
		}
	case !cfg.clamp:
		return ErrLabelSpaceExhausted
	}

	a.symbols = append(a.symbols, Symbol{Bits: bits, Label: label, Index: idx})
	a.byBits[bits] = idx
	if label != UnknownLabel {
		a.byLabel[label] = idx
	}

	return nil
}
