// Package alphabet extracts the ordered set of distinct fixed-length windows
// ("symbols") of a BitString and gives each one a short display label.
//
// The package offers the following key components:
//
//   - Catalog construction:
//     – Build:        scan one source for every K-length window.
//     – BuildFrom:    scan several sources into one alphabet, in order.
//     – Discover:     scan the Thue-Morse prefix of length SourceLength(K).
//   - Label schemes (LabelFn implementations):
//     – DefaultLabelFn: "A"…"Z", "0"…"9", "a"…"z" (MaxLabels = 62).
//     – DecimalLabelFn: "0","1",… (unbounded).
//   - Read-only queries on *Alphabet: Lookup, LabelOf, ByLabel, Contains, Symbols.
//   - Rendering: Render / RenderLabels slide the window over a BitString and
//     spell it in labels, UnknownLabel ('?') for windows outside the alphabet.
//
// Source policy
//
//	Discover(K) scans the single prefix T[0 : 8·P], P the smallest power of two
//	≥ K. Every K-window of the infinite sequence already occurs there. Scanning
//	only the four block concatenations AA, AB, BA, BB of a block A and its
//	inverse B misses windows once K spans three blocks, so that strategy is
//	not offered.
//
// Label space
//
//	Labels are assigned in first-seen order. With the default scheme the
//	63rd distinct window fails with ErrLabelSpaceExhausted. WithClampedLabels
//	opts into the historic fallback: overflowing symbols get UnknownLabel and
//	are left out of the label index, so ByLabel never resolves to the wrong one.
//
// Guarantees:
//
//   - No two symbols share Bits; Symbols() is in first-appearance order.
//   - Every Symbol.Bits has exactly K bytes of '0'/'1'.
//   - K == 0 yields an empty alphabet; lookups never fail, they miss.
//   - An *Alphabet is immutable after construction and safe for concurrent reads.
//
// Errors
//
//   - ErrNegativeLength       K < 0.
//   - ErrLabelSpaceExhausted  more distinct windows than the label scheme can name.
//   - sequence.ErrInvalidBit  a source contains a byte other than '0'/'1'.
package alphabet
