// SPDX-License-Identifier: MIT
package affeq

import "github.com/goaffine/affineeq/sparsemat"

// Leq implements spec §4.7's leq: bottom is below everything, nothing
// is below bottom except bottom, and otherwise a must be expressible
// over b's environment and every equality of b must already be implied
// by a.
func Leq(a, b State) (bool, error) {
	if a.IsBotEnv() {
		return true, nil
	}
	if b.IsBotEnv() {
		return false, nil
	}
	if !a.env.IsSubEnvOf(b.env) {
		return false, nil
	}
	grown, err := growTo(a, b.env)
	if err != nil {
		return false, affeqErrorf("Leq", err)
	}
	covered, err := sparsemat.IsCoveredBy(b.matrix, grown.matrix)
	if err != nil {
		return false, affeqErrorf("Leq", err)
	}
	return covered, nil
}

// Meet implements spec §4.7's meet: the greatest lower bound, i.e. the
// conjunction of both systems of equalities over their least common
// extension.
func Meet(a, b State) (State, error) {
	lceEnv, err := lce(a, b)
	if err != nil {
		// EnvIncompatible: spec §7 says callers are never meant to mix
		// incompatible envs; the useless-but-defined answer is bottom.
		return Bot(WithTracer(a.tracerOrDefault())), nil
	}
	ga, err := growTo(a, lceEnv)
	if err != nil {
		return State{}, affeqErrorf("Meet", err)
	}
	gb, err := growTo(b, lceEnv)
	if err != nil {
		return State{}, affeqErrorf("Meet", err)
	}
	if ga.IsBotEnv() {
		return ga, nil
	}
	if gb.IsBotEnv() {
		return gb, nil
	}
	if ga.IsTopEnv() {
		return gb, nil
	}
	if gb.IsTopEnv() {
		return ga, nil
	}
	tracer := ga.tracerOrDefault()
	result, ok, err := sparsemat.RREFMatrix(ga.matrix, gb.matrix)
	if err != nil {
		return State{}, affeqErrorf("Meet", err)
	}
	if !ok {
		tracer.OnInconsistent("Meet")
		return botEnvTraced(lceEnv, tracer), nil
	}
	tracer.OnNormalize("Meet", result.NumRows())
	return fromMatrix(lceEnv, result, tracer), nil
}

// Join implements spec §4.7's join: the least upper bound, i.e. the
// smallest affine subspace containing both.
func Join(a, b State) (State, error) {
	lceEnv, err := lce(a, b)
	if err != nil {
		// EnvIncompatible: the useless-but-defined answer is top over
		// whichever environment is larger, since join must over-approximate.
		if a.env.Size() >= b.env.Size() {
			top, _ := Top(a.env, WithTracer(a.tracerOrDefault()))
			return top, nil
		}
		top, _ := Top(b.env, WithTracer(b.tracerOrDefault()))
		return top, nil
	}
	ga, err := growTo(a, lceEnv)
	if err != nil {
		return State{}, affeqErrorf("Join", err)
	}
	gb, err := growTo(b, lceEnv)
	if err != nil {
		return State{}, affeqErrorf("Join", err)
	}
	if ga.IsBotEnv() {
		return gb, nil
	}
	if gb.IsBotEnv() {
		return ga, nil
	}
	if ga.IsTopEnv() || gb.IsTopEnv() {
		top, err := Top(lceEnv, WithTracer(ga.tracerOrDefault()))
		if err != nil {
			return State{}, affeqErrorf("Join", err)
		}
		return top, nil
	}
	if ga.matrix.Equal(gb.matrix) {
		return ga, nil
	}
	joined, err := sparsemat.LinearDisjunct(ga.matrix, gb.matrix)
	if err != nil {
		return State{}, affeqErrorf("Join", err)
	}
	tracer := ga.tracerOrDefault()
	tracer.OnNormalize("Join", joined.NumRows())
	return fromMatrix(lceEnv, joined, tracer), nil
}

// Widen implements spec §4.7's widen: join when the environments
// already match (Karr's lattice has finite ascending chains per fixed
// environment, so join alone guarantees termination); otherwise the
// newer state is returned unchanged. This is not a strict
// extrapolation — callers must not expect widen to accelerate
// convergence across environment changes.
func Widen(a, b State) (State, error) {
	if a.env.Equal(b.env) {
		return Join(a, b)
	}
	return b, nil
}

// Narrow implements spec §4.7's narrow: the identity on the first
// argument. Present for interface completeness with fixpoint solvers
// that always call narrow after widen.
func Narrow(a, _ State) State { return a }

// Unify implements spec §6's unify: the fixpoint-solver convenience
// that merges two states known to describe the same program point from
// different call edges. For Karr's domain there is no information
// beyond the lattice meet/join pair to draw on, so Unify is Join:
// the affine hull of both incoming stores is the most precise state
// that soundly covers either one (§8's "Join is lub").
func Unify(a, b State) (State, error) {
	return Join(a, b)
}
