// Package rational provides an exact arbitrary-precision rational scalar
// used throughout the affine-equalities domain.
//
// Rational wraps math/big.Rat: every arithmetic operation is exact, there
// is no rounding, and division by zero is reported rather than silently
// producing +Inf/NaN. No example repo in the retrieval pack ships a
// third-party exact-rational type (the few that touch math/big use it for
// fixed-width field elements over big.Int, not general fractions), so this
// package is deliberately the one place in the module that leans on the
// standard library instead of a pack dependency — see DESIGN.md.
package rational
