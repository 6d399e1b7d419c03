// SPDX-License-Identifier: MIT
// Package texpr implements the linear expression tree and its
// linearization into a coefficient vector (spec §4.6): the bridge
// between the caller's C-expression dialect and the core's sparse
// vector/matrix representation.
//
// The dialect is deliberately small: Const, Var, Neg, Cast, Add, Sub,
// Mul. A non-linear Mul (no constant factor on either side) can be
// built, but Linearize rejects it with ErrNotAffine. Anything outside
// the dialect — a comparison, a call — is simply not expressible as an
// Expr; the caller (the driver, out of scope per spec §1) is
// responsible for rejecting or desugaring those before handing a tree
// to this package.
package texpr
