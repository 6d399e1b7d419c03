// SPDX-License-Identifier: MIT
// Package affeq implements the affine-equalities abstract domain's
// state, lattice operations, and transfer functions (spec §4.5, §4.7):
// the pair { d: Option<Matrix>, env: Environment }, the six lattice
// primitives (leq, meet, join, widen, narrow, and the top/bottom
// constants), variable add/remove/forget, assignment (invertible and
// non-invertible), parallel assignment, guards against linear
// constraints, bound extraction, and the canonical textual/YAML forms.
//
// This package is a pure value library (spec §5): every exported
// function takes States by value and returns a fresh one. It never
// logs, times, or touches a file; a collaborator that wants visibility
// into normalization/reduction/inconsistency events supplies a Tracer
// (see options.go) — the diag package is the one concrete
// implementation, and it is never imported from here.
package affeq
