// SPDX-License-Identifier: MIT
// Package sparsevec: sentinel error set (unified, consistent).
// All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. Panics are reserved for programmer errors in private
// helpers, never for caller-triggered conditions.
package sparsevec

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates an index outside [0, length).
	ErrOutOfRange = errors.New("sparsevec: index out of range")

	// ErrLengthMismatch indicates two vectors passed to a binary operation
	// have different lengths.
	ErrLengthMismatch = errors.New("sparsevec: length mismatch")
)

// vecErrorf wraps an underlying error with an operation tag.
func vecErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
