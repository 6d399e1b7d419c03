// SPDX-License-Identifier: MIT
// Package rational: sentinel error set.
// All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. Arithmetic is reserved for division-by-zero, a bug
// indicator rather than a recoverable condition (see spec §5/§7).
package rational

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by Div and Inv when the divisor is zero.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrNilValue is returned when a nil *big.Rat would otherwise be dereferenced.
	ErrNilValue = errors.New("rational: nil value")
)

// ratErrorf wraps an underlying error with an operation tag.
func ratErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
