// SPDX-License-Identifier: MIT
package affeq

import "github.com/goaffine/affineeq/varenv"

// growTo adapts t to super, inserting empty columns for every variable
// super has that t.Env() doesn't (spec §4.4's dimchange2_add). super
// must be a super-environment of t.Env() (varenv.IsSubEnvOf).
func growTo(t State, super varenv.Environment) (State, error) {
	if t.env.Equal(super) {
		return t, nil
	}
	if t.bottom {
		return botEnvTraced(super, t.tracerOrDefault()), nil
	}
	grown, err := varenv.DimChange2Add(t.env, t.matrix, super)
	if err != nil {
		return State{}, affeqErrorf("growTo", err)
	}
	return fromMatrix(super, grown, t.tracerOrDefault()), nil
}

// lce returns the least common extension of a's and b's environments.
func lce(a, b State) (varenv.Environment, error) {
	env, err := varenv.LCE(a.env, b.env)
	if err != nil {
		return varenv.Environment{}, affeqErrorf("lce", err)
	}
	return env, nil
}
