// SPDX-License-Identifier: MIT
package affeq

import (
	"github.com/goaffine/affineeq/sparsemat"
	"github.com/goaffine/affineeq/varenv"
)

// State is the pair { d: Option<Matrix>, env: Environment } of spec
// §3/§4.5. bottom == true encodes d = None; otherwise matrix holds the
// (possibly empty, meaning top-over-env) RREF matrix.
type State struct {
	matrix sparsemat.Matrix
	env    varenv.Environment
	bottom bool
	tracer Tracer
}

// Top returns the state with no equalities over env — "no constraints"
// rather than "unreachable".
func Top(env varenv.Environment, opts ...Option) (State, error) {
	m, err := sparsemat.New(env.Size() + 1)
	if err != nil {
		return State{}, affeqErrorf("Top", err)
	}
	cfg := newConfig(opts...)
	return State{matrix: m, env: env, tracer: cfg.tracer}, nil
}

// Bot returns the canonical bottom: unreachable, over the empty
// environment.
func Bot(opts ...Option) State {
	cfg := newConfig(opts...)
	return State{bottom: true, tracer: cfg.tracer}
}

// BotEnv returns bottom retaining env — used internally whenever an
// operation collapses to unreachable but the caller's environment is
// still informative (e.g. for a subsequent AddVars).
func BotEnv(env varenv.Environment, opts ...Option) State {
	cfg := newConfig(opts...)
	return State{bottom: true, env: env, tracer: cfg.tracer}
}

func fromMatrix(env varenv.Environment, m sparsemat.Matrix, tracer Tracer) State {
	return State{matrix: m, env: env, tracer: tracer}
}

func botEnvTraced(env varenv.Environment, tracer Tracer) State {
	return State{bottom: true, env: env, tracer: tracer}
}

// IsBot reports whether t is the canonical bottom (unreachable, empty
// environment).
func (t State) IsBot() bool { return t.bottom && t.env.IsEmpty() }

// IsBotEnv reports whether t is unreachable, over any environment.
func (t State) IsBotEnv() bool { return t.bottom }

// IsTop reports whether t is the canonical top (no constraints, empty
// environment).
func (t State) IsTop() bool { return !t.bottom && t.env.IsEmpty() && t.matrix.IsEmpty() }

// IsTopEnv reports whether t has no constraints, over any environment.
func (t State) IsTopEnv() bool { return !t.bottom && t.matrix.IsEmpty() }

// Env returns t's environment.
func (t State) Env() varenv.Environment { return t.env }

// Matrix returns t's underlying RREF matrix. Meaningless when
// t.IsBotEnv(); callers should check that first.
func (t State) Matrix() sparsemat.Matrix { return t.matrix }
