// Package affeq_test exercises the abstract-domain transfer functions
// and lattice operations against spec §8's concrete scenarios and the
// standard lattice laws.
package affeq_test

import (
	"testing"

	"github.com/goaffine/affineeq/affeq"
	"github.com/goaffine/affineeq/rational"
	"github.com/goaffine/affineeq/texpr"
	"github.com/goaffine/affineeq/varenv"
	"github.com/stretchr/testify/require"
)

func q(n int64) rational.Rational { return rational.FromInt64(n) }

func intVar(name string) varenv.Variable { return varenv.Variable{Name: name, Kind: varenv.KindInt} }

func mustEnv(t *testing.T, names ...string) varenv.Environment {
	t.Helper()
	vars := make([]varenv.Variable, len(names))
	for i, n := range names {
		vars[i] = intVar(n)
	}
	env, err := varenv.New(vars)
	require.NoError(t, err)
	return env
}

func mustTop(t *testing.T, env varenv.Environment) affeq.State {
	t.Helper()
	s, err := affeq.Top(env)
	require.NoError(t, err)
	return s
}

func mustMeetTcons(t *testing.T, s affeq.State, e texpr.Expr, op affeq.Op) affeq.State {
	t.Helper()
	out, err := affeq.MeetTcons(s, affeq.Tcons{Expr: e, Op: op})
	require.NoError(t, err)
	return out
}

// xMinusY builds x - y (as a texpr.Expr) for asserting x = y.
func xMinusY(x, y string) texpr.Expr { return texpr.Sub(texpr.Var(x), texpr.Var(y)) }
