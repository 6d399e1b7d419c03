// SPDX-License-Identifier: MIT
package affeq

import (
	"github.com/goaffine/affineeq/sparsemat"
	"github.com/goaffine/affineeq/varenv"
)

// AddVars extends t with fresh, unconstrained variables (spec §4.4's
// add_vars lifted to State). Bottom stays bottom, just over the wider
// environment — there is no matrix to grow, so the environment is
// extended directly.
func AddVars(t State, vars []varenv.Variable) (State, error) {
	if t.IsBotEnv() {
		newEnv, err := varenv.New(append(append([]varenv.Variable{}, t.env.Variables()...), vars...))
		if err != nil {
			return State{}, affeqErrorf("AddVars", err)
		}
		return botEnvTraced(newEnv, t.tracerOrDefault()), nil
	}
	newEnv, m, err := varenv.AddVars(t.env, t.matrix, vars)
	if err != nil {
		return State{}, affeqErrorf("AddVars", err)
	}
	return fromMatrix(newEnv, m, t.tracerOrDefault()), nil
}

// RemoveVars drops names from t, eliminating their columns via the
// forget primitive (spec §4.4's remove_vars). Bottom stays bottom.
func RemoveVars(t State, names []string) (State, error) {
	if t.IsBotEnv() {
		remove := make(map[string]bool, len(names))
		for _, n := range names {
			if !t.env.Has(n) {
				return State{}, affeqErrorf("RemoveVars", ErrUnknownVar)
			}
			remove[n] = true
		}
		kept := make([]varenv.Variable, 0, t.env.Size())
		for _, v := range t.env.Variables() {
			if !remove[v.Name] {
				kept = append(kept, v)
			}
		}
		newEnv, err := varenv.New(kept)
		if err != nil {
			return State{}, affeqErrorf("RemoveVars", err)
		}
		return botEnvTraced(newEnv, t.tracerOrDefault()), nil
	}
	newEnv, m, err := varenv.RemoveVars(t.env, t.matrix, names)
	if err != nil {
		return State{}, affeqErrorf("RemoveVars", err)
	}
	t.tracerOrDefault().OnReduce("RemoveVars", namesJoined(names))
	return fromMatrix(newEnv, m, t.tracerOrDefault()), nil
}

// ForgetVars implements spec §4.7's forget_vars directly against the
// matrix rather than delegating to RemoveVars: for each name, ReduceCol
// drops one row mentioning it and rewrites the other rows without it,
// then RemoveZeroRows sweeps trivial equalities. Unlike RemoveVars, env is untouched — a forgotten
// variable stays declared, just unconstrained, exactly as spec §4.7
// distinguishes the two ("forget" existentially quantifies a variable
// out of the *equalities*; "remove" drops it from the *environment*
// too). This is what AssignTexpr's havoc case needs: the assigned
// variable must remain assignable and referenceable afterwards.
func ForgetVars(t State, names []string) (State, error) {
	if t.IsBotEnv() {
		return t, nil
	}
	work := t.matrix
	for _, name := range names {
		idx, ok := t.env.DimOfVar(name)
		if !ok {
			return State{}, affeqErrorf("ForgetVars", ErrUnknownVar)
		}
		var err error
		work, err = work.ReduceCol(idx)
		if err != nil {
			return State{}, affeqErrorf("ForgetVars", err)
		}
	}
	work = work.RemoveZeroRows()
	tracer := t.tracerOrDefault()
	tracer.OnReduce("ForgetVars", namesJoined(names))

	// ReduceCol eliminates the forgotten column from every other row via
	// a linear combination, but doesn't re-sort pivots or re-scale them
	// to a unit leading coefficient: a free (non-pivot) variable forgotten
	// out of two or more rows can leave them both pivoting the same
	// column with a non-unit, even negative, leading coefficient. Every
	// public operation must hand back RREF (spec §8), so re-normalize.
	result, ok := sparsemat.Normalize(work.Rows(), work.NumCols())
	if !ok {
		tracer.OnInconsistent("ForgetVars")
		return botEnvTraced(t.env, tracer), nil
	}
	return fromMatrix(t.env, result, tracer), nil
}

func namesJoined(names []string) string {
	if len(names) == 0 {
		return ""
	}
	out := names[0]
	for _, n := range names[1:] {
		out += "," + n
	}
	return out
}
