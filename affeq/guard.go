// SPDX-License-Identifier: MIT
package affeq

import (
	"math/big"

	"github.com/goaffine/affineeq/sparsemat"
	"github.com/goaffine/affineeq/texpr"
)

// Op is the comparison operator of a linear guard (spec §4.7's
// meet_tcons taxonomy).
type Op int

const (
	// OpEQ is "== 0".
	OpEQ Op = iota
	// OpDISEQ is "!= 0".
	OpDISEQ
	// OpSUP is the strict "> 0".
	OpSUP
	// OpSUPEQ is the non-strict ">= 0".
	OpSUPEQ
)

// String renders an Op for diagnostics.
func (op Op) String() string {
	switch op {
	case OpEQ:
		return "=="
	case OpDISEQ:
		return "!="
	case OpSUP:
		return ">"
	case OpSUPEQ:
		return ">="
	default:
		return "?"
	}
}

// Tcons is a linear constraint "expr OP 0" — the guard form analyses
// assert with (spec §4.7, §6's external interface table).
type Tcons struct {
	Expr texpr.Expr
	Op   Op
}

// MeetTcons implements spec §4.7's meet_tcons: restricts t to the
// states additionally satisfying c. If c's expression fails to
// linearize, t is returned unchanged (the guard is simply not
// exploited, not an error).
//
// The domain can represent equalities exactly but only approximates
// DISEQ/SUP/SUPEQ guards over a non-constant linearization — see
// DESIGN.md for the precision trade-off spec §9 flags as an open
// question.
func MeetTcons(t State, c Tcons) (State, error) {
	if t.IsBotEnv() {
		return t, nil
	}
	v, err := texpr.Linearize(c.Expr, t.env, t.matrix)
	if err != nil {
		return t, nil
	}
	n := t.env.Size()
	tracer := t.tracerOrDefault()

	if v.IsConstVec() {
		c0 := v.Nth(n)
		var bottom bool
		switch c.Op {
		case OpEQ:
			bottom = !c0.IsZero()
		case OpDISEQ:
			bottom = c0.IsZero()
		case OpSUP:
			bottom = c0.Sign() <= 0
		case OpSUPEQ:
			bottom = c0.Sign() < 0
		default:
			return State{}, affeqErrorf("MeetTcons", ErrBadConstraint)
		}
		if bottom {
			tracer.OnInconsistent("MeetTcons")
			return botEnvTraced(t.env, tracer), nil
		}
		return t, nil
	}

	switch c.Op {
	case OpEQ:
		result, ok, err := sparsemat.RREFVec(t.matrix, v)
		if err != nil {
			return State{}, affeqErrorf("MeetTcons", err)
		}
		if !ok {
			tracer.OnInconsistent("MeetTcons")
			return botEnvTraced(t.env, tracer), nil
		}
		tracer.OnNormalize("MeetTcons", result.NumRows())
		return fromMatrix(t.env, result, tracer), nil

	case OpDISEQ, OpSUP:
		candidate, ok, err := sparsemat.RREFVec(t.matrix, v)
		if err != nil {
			return State{}, affeqErrorf("MeetTcons", err)
		}
		if !ok {
			// The equality version is never satisfiable on t, so the
			// guard holds everywhere t does.
			return t, nil
		}
		candState := fromMatrix(t.env, candidate, tracer)
		implied, err := Leq(t, candState)
		if err != nil {
			return State{}, affeqErrorf("MeetTcons", err)
		}
		if implied {
			// Every point of t already satisfies the equality version;
			// the guard can never hold.
			tracer.OnInconsistent("MeetTcons")
			return botEnvTraced(t.env, tracer), nil
		}
		// Satisfiable on part of t but not determinable precisely in
		// this domain: over-approximate by leaving t unchanged.
		return t, nil

	case OpSUPEQ:
		return t, nil

	default:
		return State{}, affeqErrorf("MeetTcons", ErrBadConstraint)
	}
}

// AssertConstraint is the spec §6 external-interface name for
// MeetTcons (the "ask" abstraction parameter APRON-style domains pass
// alongside a constraint has no counterpart here — every equality
// question t can answer itself).
func AssertConstraint(t State, c Tcons) (State, error) {
	return MeetTcons(t, c)
}

// BoundTexpr implements spec §4.7's bound_texpr: if e linearizes to an
// integer-valued rational constant, returns that value as both the
// lower and upper bound (ok == true); otherwise returns (nil, nil,
// false). This domain intentionally does not derive interval bounds
// from affine equalities — only the degenerate single-point case.
func BoundTexpr(t State, e texpr.Expr) (lo, hi *big.Int, ok bool) {
	if t.IsBotEnv() {
		return nil, nil, false
	}
	v, err := texpr.Linearize(e, t.env, t.matrix)
	if err != nil || !v.IsConstVec() {
		return nil, nil, false
	}
	c := v.Nth(t.env.Size())
	if !c.IsInteger() {
		return nil, nil, false
	}
	n := c.Numerator()
	return n, new(big.Int).Set(n), true
}
