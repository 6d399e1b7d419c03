// SPDX-License-Identifier: MIT
package varenv

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName indicates a Variable with an empty name was supplied.
	ErrEmptyName = errors.New("varenv: variable name is empty")

	// ErrDuplicateVar indicates the same variable name was supplied twice
	// when building an Environment.
	ErrDuplicateVar = errors.New("varenv: duplicate variable name")

	// ErrUnknownVar indicates a referenced variable is not present in
	// the environment.
	ErrUnknownVar = errors.New("varenv: unknown variable")

	// ErrEnvIncompatible is spec §7's EnvIncompatible taxon: two
	// environments share a variable name declared with different Kind.
	ErrEnvIncompatible = errors.New("varenv: incompatible variable kinds")

	// ErrNotSubEnv indicates a growth operation was asked to adapt an
	// environment to a target that is not one of its super-environments.
	ErrNotSubEnv = errors.New("varenv: not a sub-environment of the target")

	// ErrColumnMismatch indicates a matrix passed to an adapter function
	// has a column count inconsistent with the given Environment.
	ErrColumnMismatch = errors.New("varenv: matrix column count does not match environment size")
)

// envErrorf wraps an underlying error with an operation tag.
func envErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
