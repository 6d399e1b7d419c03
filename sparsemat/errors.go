// SPDX-License-Identifier: MIT
// Package sparsemat: sentinel error set (unified, consistent).
// Every algorithm MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm panics on caller-triggered conditions; the
// RREF invariant failing an internal sanity check is the one case that
// indicates a bug in this package rather than bad input, and is
// documented inline where it could occur.
package sparsemat

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnMismatch indicates two matrices (or a matrix and a row)
	// passed to a binary operation have different column counts.
	ErrColumnMismatch = errors.New("sparsemat: column count mismatch")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("sparsemat: index out of range")

	// ErrInconsistent is the value-level signal that a system of
	// equalities has no solution (a row reduced to 0 = nonzero). Callers
	// map this to bottom; it is never an exception.
	ErrInconsistent = errors.New("sparsemat: inconsistent system")

	// ErrBadShape indicates a requested column count is not positive.
	ErrBadShape = errors.New("sparsemat: invalid column count")
)

// matErrorf wraps an underlying error with an operation tag.
func matErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
