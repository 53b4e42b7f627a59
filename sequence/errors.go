// SPDX-License-Identifier: MIT
// Package: thuemorse/sequence
//
// errors.go: sentinel errors for the sequence package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (offset, byte) is attached with %w at the failure site.

package sequence

import (
	"errors"
	"fmt"
)

// ErrInvalidBit indicates a BitString contains a byte other than '0' or '1'.
// Usage: if errors.Is(err, ErrInvalidBit) { /* reject input */ }.
var ErrInvalidBit = errors.New("sequence: invalid bit")

// invalidBitf wraps ErrInvalidBit with the offending offset and byte.
func invalidBitf(offset int, b byte) error {
	return fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, b, offset)
}
