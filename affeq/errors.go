// SPDX-License-Identifier: MIT
package affeq

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVar indicates an operation named a variable absent from
	// the state's environment.
	ErrUnknownVar = errors.New("affeq: unknown variable")

	// ErrEnvIncompatible names spec §7's EnvIncompatible taxon (two
	// states sharing a variable name under incompatible Kinds). No
	// operation in this package returns it: on such states Leq answers
	// false, Meet returns bottom and Join returns top.
	ErrEnvIncompatible = errors.New("affeq: incompatible environments")

	// ErrMarshal / ErrUnmarshal wrap YAML (de)serialization failures.
	ErrMarshal   = errors.New("affeq: marshal failed")
	ErrUnmarshal = errors.New("affeq: unmarshal failed")

	// ErrLengthMismatch indicates a parallel-assignment call whose
	// variable and expression lists had different lengths.
	ErrLengthMismatch = errors.New("affeq: mismatched lengths")

	// ErrBadConstraint indicates a Tcons whose operator is not one of the
	// defined Op values. A Tcons whose expression fails to linearize is
	// not an error: MeetTcons returns the state unchanged.
	ErrBadConstraint = errors.New("affeq: malformed constraint")
)

// affeqErrorf wraps an underlying error with an operation tag.
func affeqErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
