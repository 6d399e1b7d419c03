// SPDX-License-Identifier: MIT
package texpr

import (
	"github.com/goaffine/affineeq/rational"
	"github.com/goaffine/affineeq/sparsemat"
	"github.com/goaffine/affineeq/sparsevec"
	"github.com/goaffine/affineeq/varenv"
)

// Linearize converts e into a coefficient vector of length env.Size()+1
// (spec §4.6): index i (0 <= i < env.Size()) holds the coefficient of
// the i-th variable, and the last index holds the constant term. m
// supplies the current state's known equalities so a Var(x) the state
// already pins to a constant (a row that is a single-variable equality
// for x) is substituted rather than left symbolic.
//
// Returns ErrNotAffine if e is not a linear combination of variables
// and constants, and ErrUnknownVar if e references a variable absent
// from env.
func Linearize(e Expr, env varenv.Environment, m sparsemat.Matrix) (sparsevec.SparseVector, error) {
	n := env.Size()
	switch t := e.(type) {
	case ConstExpr:
		return constVec(n, t.Value), nil

	case VarExpr:
		idx, ok := env.DimOfVar(t.Name)
		if !ok {
			return sparsevec.SparseVector{}, texprErrorf("Linearize", ErrUnknownVar)
		}
		if k, pinned := constantRowValue(m, n, idx); pinned {
			return constVec(n, k), nil
		}
		v := sparsevec.Zero(n + 1)
		v, _ = v.SetNth(idx, rational.One())
		return v, nil

	case NegExpr:
		inner, err := Linearize(t.Operand, env, m)
		if err != nil {
			return sparsevec.SparseVector{}, err
		}
		return inner.MapPreservingZero(func(q rational.Rational) rational.Rational { return q.Neg() }), nil

	case CastExpr:
		return Linearize(t.Operand, env, m)

	case AddExpr:
		l, r, err := linearizeBoth(t.Left, t.Right, env, m)
		if err != nil {
			return sparsevec.SparseVector{}, err
		}
		sum, err := l.Add(r)
		if err != nil {
			return sparsevec.SparseVector{}, texprErrorf("Linearize", err)
		}
		return sum, nil

	case SubExpr:
		l, r, err := linearizeBoth(t.Left, t.Right, env, m)
		if err != nil {
			return sparsevec.SparseVector{}, err
		}
		diff, err := l.Sub(r)
		if err != nil {
			return sparsevec.SparseVector{}, texprErrorf("Linearize", err)
		}
		return diff, nil

	case MulExpr:
		l, r, err := linearizeBoth(t.Left, t.Right, env, m)
		if err != nil {
			return sparsevec.SparseVector{}, err
		}
		if l.IsConstVec() {
			return r.Scale(l.Nth(n)), nil
		}
		if r.IsConstVec() {
			return l.Scale(r.Nth(n)), nil
		}
		return sparsevec.SparseVector{}, texprErrorf("Linearize", ErrNotAffine)

	default:
		return sparsevec.SparseVector{}, texprErrorf("Linearize", ErrNotAffine)
	}
}

func linearizeBoth(a, b Expr, env varenv.Environment, m sparsemat.Matrix) (sparsevec.SparseVector, sparsevec.SparseVector, error) {
	l, err := Linearize(a, env, m)
	if err != nil {
		return sparsevec.SparseVector{}, sparsevec.SparseVector{}, err
	}
	r, err := Linearize(b, env, m)
	if err != nil {
		return sparsevec.SparseVector{}, sparsevec.SparseVector{}, err
	}
	return l, r, nil
}

func constVec(n int, q rational.Rational) sparsevec.SparseVector {
	v := sparsevec.Zero(n + 1)
	v, _ = v.SetNth(n, q)
	return v
}

// constantRowValue reports whether m's RREF pins column j to a single
// constant — a row whose only variable entry (among the first n
// columns) is j itself — and if so, the value that constant must take.
func constantRowValue(m sparsemat.Matrix, n, j int) (rational.Rational, bool) {
	if n == 0 || m.NumCols() != n+1 {
		return rational.Rational{}, false
	}
	i, found := m.GetColUpperTriangular(j)
	if !found {
		return rational.Rational{}, false
	}
	row, err := m.GetRow(i)
	if err != nil {
		return rational.Rational{}, false
	}
	varEntries := 0
	for _, e := range row.Entries() {
		if e.Index < n {
			varEntries++
		}
	}
	if varEntries != 1 {
		return rational.Rational{}, false
	}
	return row.Nth(n).Neg(), true
}
