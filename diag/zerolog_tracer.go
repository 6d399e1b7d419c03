// SPDX-License-Identifier: MIT
package diag

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/goaffine/affineeq/affeq"
)

// ZerologTracer implements affeq.Tracer by emitting a structured event
// per algebra step: normalize/reduce/inconsistent, grounded on the
// teacher's pkg/logger (Caller()-annotated, console-writer-by-default
// zerolog.Logger).
type ZerologTracer struct {
	log zerolog.Logger
}

var _ affeq.Tracer = ZerologTracer{}

// NewZerologTracer returns a Tracer that logs to os.Stderr in the
// teacher's console-writer style. Pass opts to customize the
// underlying logger (e.g. WithLogger to redirect output or add fields).
func NewZerologTracer(opts ...Option) ZerologTracer {
	cfg := newConfig(opts...)
	return ZerologTracer{log: cfg.logger}
}

func (t ZerologTracer) OnNormalize(op string, rows int) {
	t.log.Debug().Str("op", op).Int("rows", rows).Msg("normalize")
}

func (t ZerologTracer) OnReduce(op string, variable string) {
	e := t.log.Debug().Str("op", op)
	if variable != "" {
		e = e.Str("variable", variable)
	}
	e.Msg("reduce")
}

func (t ZerologTracer) OnInconsistent(op string) {
	t.log.Warn().Str("op", op).Msg("inconsistent: collapsed to bottom")
}

// Option customizes a ZerologTracer.
type Option func(*config)

type config struct {
	logger zerolog.Logger
}

func newConfig(opts ...Option) config {
	cfg := (config{}).withDefaultLogger()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (config) withDefaultLogger() config {
	return config{
		logger: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Caller().Logger(),
	}
}

// WithLogger overrides the underlying zerolog.Logger entirely.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}
