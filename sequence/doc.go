// Package sequence generates the Thue-Morse bit sequence and the string
// transformations that act on it.
//
// What
//
//   - Generate(n):                first n bits; bit i = popcount(i) mod 2.
//   - BitInverse(s):              flip every '0'/'1'.
//   - Homomorphism(s):            the doubling morphism 0→"01", 1→"10".
//   - Iterate(seed, g):           Homomorphism applied g times.
//   - Blocks(n):                  the historic A/B block pair (A, BitInverse(A)).
//   - LargestPowerOfTwoAtMost(n), LargestPowerOfTwoBelow(n), SmallestPowerOfTwoAtLeast(n).
//   - Validate(s):                reject anything but '0'/'1'.
//
// A BitString is a plain Go string of ASCII '0' and '1' bytes. All functions
// are pure: same input, same output, no shared state.
//
// Morphism caveat
//
//	The Thue-Morse sequence T is a fixed point of Homomorphism, so
//	Homomorphism(T[0:n]) == T[0:2n]. This holds for prefixes only. A window
//	taken from the middle of T maps onto T[2i : 2i+2n] for its start offset i,
//	which is generally not the window's own continuation.
//
// Complexity
//
//   - Generate:     O(n) time, O(n) space.
//   - BitInverse:   O(n) time, O(n) space.
//   - Homomorphism: O(n) time, O(2n) space.
//
// Errors
//
//   - ErrInvalidBit  a byte other than '0'/'1' was found (wrapped with offset).
package sequence
