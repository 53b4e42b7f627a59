package alphabet

import (
	"fmt"
	"strconv"
)

// UnknownLabel is the sentinel label for windows outside the alphabet and,
// under WithClampedLabels, for symbols past the label space.
const UnknownLabel = "?"

// MaxLabels is the capacity of DefaultLabelFn: 26 + 10 + 26.
const MaxLabels = len(defaultLabelSet)

// defaultLabelSet is the historic symbol set: A–Z, then 0–9, then a–z.
const defaultLabelSet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789abcdefghijklmnopqrstuvwxyz"

// LabelFn names the symbol with zero-based first-seen index idx.
// It must be pure and injective on its capacity.
type LabelFn func(idx int) string

// DefaultLabelFn returns the single-character label for idx in [0,61]:
// 0→"A", 25→"Z", 26→"0", 35→"9", 36→"a", 61→"z".
// Panics outside that range; Build checks capacity before calling it.
// Complexity: O(1).
func DefaultLabelFn(idx int) string {
	if idx < 0 || idx >= MaxLabels {
		panic(fmt.Sprintf("DefaultLabelFn: idx must be in [0,%d], got %d", MaxLabels-1, idx))
	}

	return defaultLabelSet[idx : idx+1]
}

// DecimalLabelFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Useful when K is too large for the 62-label default.
// Panics if idx < 0.
func DecimalLabelFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("DecimalLabelFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.Itoa(idx)
}

// Unbounded is the capacity value for label schemes without an upper limit.
const Unbounded = -1
