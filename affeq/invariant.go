// SPDX-License-Identifier: MIT
package affeq

import "github.com/goaffine/affineeq/texpr"

// Invariant implements spec §4.7's invariant: converts t's rows back
// into external EQ constraints, one per row. Bottom and top both yield
// no constraints — bottom's "no constraints" reading is the documented
// convention (spec §4.7), not a claim that bottom is unconstrained.
func Invariant(t State) ([]Tcons, error) {
	if t.IsBotEnv() {
		return nil, nil
	}
	rows := t.matrix.Rows()
	out := make([]Tcons, 0, len(rows))
	for _, row := range rows {
		e, err := texpr.FromLinear(row, t.env)
		if err != nil {
			return nil, affeqErrorf("Invariant", err)
		}
		out = append(out, Tcons{Expr: e, Op: OpEQ})
	}
	return out, nil
}
