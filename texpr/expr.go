// SPDX-License-Identifier: MIT
package texpr

import "github.com/goaffine/affineeq/rational"

// Expr is a node of the linear expression tree spec §4.6 linearizes.
// The only implementations are the node types in this file; the
// unexported method closes the set the same way the teacher closes its
// small sealed enums.
type Expr interface {
	isExpr()
}

// ConstExpr is a literal rational constant.
type ConstExpr struct{ Value rational.Rational }

// VarExpr references a named program variable.
type VarExpr struct{ Name string }

// NegExpr is unary negation.
type NegExpr struct{ Operand Expr }

// CastExpr is a value-preserving type cast: transparent to
// linearization (the caller only builds one when the cast cannot alter
// the rational value, spec §4.6).
type CastExpr struct{ Operand Expr }

// AddExpr is binary addition.
type AddExpr struct{ Left, Right Expr }

// SubExpr is binary subtraction.
type SubExpr struct{ Left, Right Expr }

// MulExpr is binary multiplication. Linearizes only when at least one
// side reduces to a constant.
type MulExpr struct{ Left, Right Expr }

func (ConstExpr) isExpr() {}
func (VarExpr) isExpr()   {}
func (NegExpr) isExpr()   {}
func (CastExpr) isExpr()  {}
func (AddExpr) isExpr()   {}
func (SubExpr) isExpr()   {}
func (MulExpr) isExpr()   {}

// Const builds a constant leaf.
func Const(q rational.Rational) Expr { return ConstExpr{Value: q} }

// Var builds a variable reference.
func Var(name string) Expr { return VarExpr{Name: name} }

// Neg builds a negation node.
func Neg(e Expr) Expr { return NegExpr{Operand: e} }

// Cast builds a transparent cast node.
func Cast(e Expr) Expr { return CastExpr{Operand: e} }

// Add builds an addition node.
func Add(a, b Expr) Expr { return AddExpr{Left: a, Right: b} }

// Sub builds a subtraction node.
func Sub(a, b Expr) Expr { return SubExpr{Left: a, Right: b} }

// Mul builds a multiplication node.
func Mul(a, b Expr) Expr { return MulExpr{Left: a, Right: b} }
