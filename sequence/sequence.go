// SPDX-License-Identifier: MIT
// Package: thuemorse/sequence
//
// sequence.go: Thue-Morse generation, inversion and the doubling morphism.

package sequence

import (
	"math/bits"
	"strings"
)

// Bit characters used by every BitString.
const (
	Zero byte = '0'
	One  byte = '1'
)

// morphZero and morphOne are the images of '0' and '1' under Homomorphism.
const (
	morphZero = "01"
	morphOne  = "10"
)

// Generate returns the first n bits of the Thue-Morse sequence.
// Bit i is '1' iff the number of set bits in i is odd.
// Generate(0) (or any n ≤ 0) returns "".
// Complexity: O(n) time, O(n) space.
func Generate(n int) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		// parity of popcount(i)
		if bits.OnesCount(uint(i))&1 == 1 {
			buf[i] = One
		} else {
			buf[i] = Zero
		}
	}

	return string(buf)
}

// BitInverse flips every bit of s. Bytes other than '0'/'1' are copied
// unchanged; callers that need strictness run Validate first.
// BitInverse(BitInverse(s)) == s for every valid BitString.
// Complexity: O(len(s)).
func BitInverse(s string) string {
	buf := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case Zero:
			buf[i] = One
		case One:
			buf[i] = Zero
		default:
			buf[i] = s[i]
		}
	}

	return string(buf)
}

// Homomorphism applies the Thue-Morse substitution 0→"01", 1→"10" to every
// bit of s and returns the concatenation (length 2·len(s)).
//
// Only prefixes of the sequence map onto its next generation; see the
// package documentation for the caveat on middle windows.
// Complexity: O(len(s)).
func Homomorphism(s string) string {
	var sb strings.Builder
	sb.Grow(2 * len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == One {
			sb.WriteString(morphOne)
		} else {
			sb.WriteString(morphZero)
		}
	}

	return sb.String()
}

// Iterate applies Homomorphism to seed the given number of times.
// Iterate("0", g) == Generate(1<<g). generations ≤ 0 returns seed unchanged.
// Complexity: O(len(seed)·2^generations).
func Iterate(seed string, generations int) string {
	out := seed
	for g := 0; g < generations; g++ {
		out = Homomorphism(out)
	}

	return out
}

// Blocks returns the block pair of the A/B decomposition:
// A = Generate(n) and B = BitInverse(A). For n a power of two the sequence
// continues as A B B A B A A B ..., i.e. the block word obeys A→AB, B→BA.
func Blocks(n int) (a, b string) {
	a = Generate(n)
	return a, BitInverse(a)
}

// LargestPowerOfTwoAtMost returns the largest power of two ≤ n.
// Returns 1 for n ≤ 1.
func LargestPowerOfTwoAtMost(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << (bits.Len(uint(n)) - 1)
}

// LargestPowerOfTwoBelow returns the largest power of two < n.
// Returns 1 for n ≤ 2, matching the historic block-size helper.
func LargestPowerOfTwoBelow(n int) int {
	r := 1
	for r*2 < n {
		r *= 2
	}

	return r
}

// SmallestPowerOfTwoAtLeast returns the smallest power of two ≥ n.
// Returns 1 for n ≤ 1.
func SmallestPowerOfTwoAtLeast(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}

// Validate reports the first byte of s that is neither '0' nor '1'.
// The empty string is valid.
func Validate(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] != Zero && s[i] != One {
			return invalidBitf(i, s[i])
		}
	}

	return nil
}
