// SPDX-License-Identifier: MIT
package affeq

import (
	"errors"

	"github.com/goaffine/affineeq/rational"
	"github.com/goaffine/affineeq/sparsemat"
	"github.com/goaffine/affineeq/sparsevec"
	"github.com/goaffine/affineeq/texpr"
	"github.com/goaffine/affineeq/varenv"
)

// AssignTexpr implements spec §4.7's assign_texpr: the forward transfer
// function for "x := e". Three cases, chosen by linearizing e against
// t's current knowledge:
//
//  1. e is not affine in the current environment: the new value of x is
//     unknown, so x is havoced (forgotten).
//  2. linearize(e) has a non-zero coefficient on x itself (e.g. x := x+1,
//     x := 2*x): the assignment is an invertible change of variables.
//     Every existing row is rewritten in terms of the new x by
//     substituting the old x out via that equation.
//  3. linearize(e) has a zero coefficient on x: the old x is eliminated
//     from the system (reduce_col drops one row that mentions it and
//     rewrites the others without it), then x - linearize(e) = 0 is
//     added as a fresh equality.
func AssignTexpr(t State, x string, e texpr.Expr) (State, error) {
	if t.IsBotEnv() {
		return t, nil
	}
	idx, ok := t.env.DimOfVar(x)
	if !ok {
		return State{}, affeqErrorf("AssignTexpr", ErrUnknownVar)
	}
	v, err := texpr.Linearize(e, t.env, t.matrix)
	if err != nil {
		if errors.Is(err, texpr.ErrNotAffine) {
			return ForgetVars(t, []string{x})
		}
		return State{}, affeqErrorf("AssignTexpr", err)
	}

	n := t.env.Size()
	coeff := v.Nth(idx)
	if !coeff.IsZero() {
		return assignInvertible(t, idx, n, v, coeff)
	}
	return assignNonInvertible(t, idx, n, v)
}

// AssignVar is AssignTexpr specialized to "x := y".
func AssignVar(t State, x, y string) (State, error) {
	return AssignTexpr(t, x, texpr.Var(y))
}

// assignInvertible rewrites every row to eliminate the old value of the
// assigned variable, using the fact that v's coefficient at idx is
// invertible to express old-x in terms of new-x and the other
// variables: old_x = (1/coeff)*new_x - sum_{j != idx} (v_j/coeff)*x_j -
// (v_k/coeff). Substituting that into each row r replaces r's
// old-x-coefficient (r_idx) with r_idx times that expression.
func assignInvertible(t State, idx, n int, v sparsevec.SparseVector, coeff rational.Rational) (State, error) {
	inv, err := coeff.Inv()
	if err != nil {
		return State{}, affeqErrorf("AssignTexpr", err)
	}
	subst := sparsevec.Zero(n + 1)
	subst, _ = subst.SetNth(idx, inv)
	for _, e := range v.Entries() {
		if e.Index == idx {
			continue
		}
		subst, _ = subst.SetNth(e.Index, e.Value.Neg().Mul(inv))
	}
	unit := sparsevec.Zero(n + 1)
	unit, _ = unit.SetNth(idx, rational.One())
	delta, err := subst.Sub(unit)
	if err != nil {
		return State{}, affeqErrorf("AssignTexpr", err)
	}

	rows := t.matrix.Rows()
	newRows := make([]sparsevec.SparseVector, 0, len(rows))
	for _, row := range rows {
		factor := row.Nth(idx)
		if factor.IsZero() {
			newRows = append(newRows, row)
			continue
		}
		scaled := delta.Scale(factor)
		newRow, err := row.Add(scaled)
		if err != nil {
			return State{}, affeqErrorf("AssignTexpr", err)
		}
		newRows = append(newRows, newRow)
	}

	result, ok := sparsemat.Normalize(newRows, n+1)
	tracer := t.tracerOrDefault()
	if !ok {
		// An invertible change of variables can never manufacture an
		// inconsistency out of a consistent system; reaching this would
		// indicate a bug upstream rather than a reachable program state.
		tracer.OnInconsistent("AssignTexpr")
		return botEnvTraced(t.env, tracer), nil
	}
	tracer.OnNormalize("AssignTexpr", result.NumRows())
	return fromMatrix(t.env, result, tracer), nil
}

// assignNonInvertible eliminates the assigned variable's column with
// ReduceCol (its old value can no longer be recovered from the new one;
// one row mentioning it is dropped and the others are rewritten without
// it) and then asserts the new defining equality.
func assignNonInvertible(t State, idx, n int, v sparsevec.SparseVector) (State, error) {
	reduced, err := t.matrix.ReduceCol(idx)
	if err != nil {
		return State{}, affeqErrorf("AssignTexpr", err)
	}
	unit := sparsevec.Zero(n + 1)
	unit, _ = unit.SetNth(idx, rational.One())
	w, err := unit.Sub(v)
	if err != nil {
		return State{}, affeqErrorf("AssignTexpr", err)
	}
	result, ok, err := sparsemat.RREFVec(reduced, w)
	if err != nil {
		return State{}, affeqErrorf("AssignTexpr", err)
	}
	tracer := t.tracerOrDefault()
	if !ok {
		tracer.OnInconsistent("AssignTexpr")
		return botEnvTraced(t.env, tracer), nil
	}
	tracer.OnReduce("AssignTexpr", "")
	tracer.OnNormalize("AssignTexpr", result.NumRows())
	return fromMatrix(t.env, result, tracer), nil
}

// AssignVarParallel implements spec §4.7/§9's simultaneous assignment
// x1,...,xk := e1,...,ek: every ei is linearized against the state
// BEFORE any of the assignments take effect, so "x,y := y,x" swaps
// rather than collapsing both to the same value. This is done by
// assigning each ei's value into a fresh primed column first, then
// overwriting each real xi from its primed twin and forgetting the
// primes.
//
// Contract: len(xs) == len(es); every xi must be distinct.
func AssignVarParallel(t State, xs []string, es []texpr.Expr) (State, error) {
	if len(xs) != len(es) {
		return State{}, affeqErrorf("AssignVarParallel", ErrLengthMismatch)
	}
	if t.IsBotEnv() {
		return t, nil
	}
	if len(xs) == 0 {
		return t, nil
	}

	primed := make([]varenv.Variable, len(xs))
	for i, x := range xs {
		idx, ok := t.env.DimOfVar(x)
		if !ok {
			return State{}, affeqErrorf("AssignVarParallel", ErrUnknownVar)
		}
		kind, _ := t.env.VariableAt(idx)
		primed[i] = varenv.Variable{Name: primeName(x), Kind: kind.Kind}
	}

	cur, err := AddVars(t, primed)
	if err != nil {
		return State{}, affeqErrorf("AssignVarParallel", err)
	}
	for i, e := range es {
		cur, err = AssignTexpr(cur, primed[i].Name, e)
		if err != nil {
			return State{}, affeqErrorf("AssignVarParallel", err)
		}
	}
	for i, x := range xs {
		cur, err = AssignVar(cur, x, primed[i].Name)
		if err != nil {
			return State{}, affeqErrorf("AssignVarParallel", err)
		}
	}
	primedNames := make([]string, len(primed))
	for i, p := range primed {
		primedNames[i] = p.Name
	}
	// The primed columns are throwaway scaffolding, not real program
	// variables: RemoveVars (not ForgetVars) deletes them from the
	// environment entirely so they never leak into a later lookup.
	return RemoveVars(cur, primedNames)
}

// SubstituteExp implements spec §4.7/§9's substitute_exp: the
// inverse-image (weakest-precondition) counterpart to AssignTexpr,
// defined as assign_exp(t,x,e) followed by forget_vars(t,[x]) — NOT the
// other order. Forgetting x first (as a plain forward assignment would)
// throws away whatever relationship t held between x and the rest of
// the state before e's defining equality can be folded in, which is
// unsound for a pre-image: it can exclude valid pre-states. Assigning
// first, then forgetting, never does — the result may be coarser than
// the most precise pre-image (see DESIGN.md for the case where x
// appeared in only one row of t), but it is always a sound
// over-approximation of it, same as every other transfer function here.
func SubstituteExp(t State, x string, e texpr.Expr) (State, error) {
	assigned, err := AssignTexpr(t, x, e)
	if err != nil {
		return State{}, affeqErrorf("SubstituteExp", err)
	}
	return ForgetVars(assigned, []string{x})
}

func primeName(x string) string { return x + "'" }

// AssignVarParallelWith implements spec §5/§9's single convenience
// mutator: it computes AssignVarParallel(*cell, xs, es) and overwrites
// *cell with the result. It is not a concurrency primitive — the
// caller must hold exclusive access to cell, exactly as spec §5
// describes. Every other operation in this package remains purely
// functional; this is the sole in-place escape hatch.
func AssignVarParallelWith(cell *State, xs []string, es []texpr.Expr) error {
	next, err := AssignVarParallel(*cell, xs, es)
	if err != nil {
		return err
	}
	*cell = next
	return nil
}
