// SPDX-License-Identifier: MIT
package texpr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAffine is spec §7's NotAffine taxon: the expression does not
	// reduce to a linear combination of variables plus a constant.
	ErrNotAffine = errors.New("texpr: expression is not affine")

	// ErrUnknownVar indicates a Var node names a variable absent from
	// the environment passed to Linearize.
	ErrUnknownVar = errors.New("texpr: unknown variable")

	// ErrLengthMismatch indicates a coefficient vector passed to
	// FromLinear does not have length env.Size()+1.
	ErrLengthMismatch = errors.New("texpr: coefficient vector length does not match environment")
)

// texprErrorf wraps an underlying error with an operation tag.
func texprErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
