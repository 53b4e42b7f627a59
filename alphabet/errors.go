// SPDX-License-Identifier: MIT
// Package: thuemorse/alphabet
//
// errors.go: sentinel errors for the alphabet package.
//
// Error policy (same as the rest of the module):
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with %w via catalogErrorf, never baked into sentinels.
//   • Build never panics; option constructors panic on programmer error.

package alphabet

import (
	"errors"
	"fmt"
)

// ErrNegativeLength indicates a negative window length K.
var ErrNegativeLength = errors.New("alphabet: window length is negative")

// ErrLabelSpaceExhausted indicates the source holds more distinct windows
// than the configured label scheme can name (62 with DefaultLabelFn).
// Usage: if errors.Is(err, ErrLabelSpaceExhausted) { /* choose a smaller K */ }.
var ErrLabelSpaceExhausted = errors.New("alphabet: label space exhausted")

// ErrDuplicateLabel indicates a label scheme named two symbols alike.
var ErrDuplicateLabel = errors.New("alphabet: duplicate label")

// ErrInvalidLabel indicates a label scheme produced an empty label or
// UnknownLabel, neither of which can name a symbol.
var ErrInvalidLabel = errors.New("alphabet: invalid label")

// catalogErrorf wraps err with the method context: "<method>: <msg>: <err>".
func catalogErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

// Method name tokens used as error prefixes.
const (
	methodBuild     = "Build"
	methodBuildFrom = "BuildFrom"
	methodDiscover  = "Discover"
)
