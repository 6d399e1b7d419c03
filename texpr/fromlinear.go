// SPDX-License-Identifier: MIT
package texpr

import (
	"github.com/goaffine/affineeq/rational"
	"github.com/goaffine/affineeq/sparsevec"
	"github.com/goaffine/affineeq/varenv"
)

// FromLinear builds an Expr equivalent to the affine combination v
// encodes — the dual of Linearize, added so invariant's round-trip
// property (spec §8: "invariant(t) parsed back … reproduces t") has
// something concrete to parse back into.
//
// Contract: v.Len() == env.Size()+1 (ErrLengthMismatch otherwise).
func FromLinear(v sparsevec.SparseVector, env varenv.Environment) (Expr, error) {
	n := env.Size()
	if v.Len() != n+1 {
		return nil, texprErrorf("FromLinear", ErrLengthMismatch)
	}

	var acc Expr
	for _, e := range v.Entries() {
		if e.Index == n {
			continue
		}
		va, ok := env.VariableAt(e.Index)
		if !ok {
			return nil, texprErrorf("FromLinear", ErrUnknownVar)
		}
		term := Var(va.Name)
		if !e.Value.Equal(rational.One()) {
			term = Mul(Const(e.Value), term)
		}
		acc = appendTerm(acc, term)
	}

	if k := v.Nth(n); !k.IsZero() {
		acc = appendTerm(acc, Const(k))
	}
	if acc == nil {
		acc = Const(rational.Zero())
	}
	return acc, nil
}

func appendTerm(acc, term Expr) Expr {
	if acc == nil {
		return term
	}
	return Add(acc, term)
}
