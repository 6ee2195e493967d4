// SPDX-License-Identifier: MIT
// Package: mobius
//
// options.go: functional options for New.
//
// Contract:
//   • Options are functional (type Option func(*config)) and applied in order;
//     later options override earlier ones.
//   • Shape values (R, w, n, workers) are NOT checked here: they are user data
//     and New reports ErrInvalidParameter for them. Option constructors panic
//     only on programmer errors that have no sensible runtime meaning.
//   • Defaults: R=1.0, w=0.2, n=100, workers=1, package logger, DefaultRenderStyle.

package mobius

import (
	"log/slog"

	"github.com/JyotsnaGuntha/mobius-strip-model/surface"
)

// Option customizes a Strip before its grids are built.
type Option func(*config)

// config aggregates every knob New reads. Resolved once, never mutated after.
type config struct {
	params  surface.Params
	workers int
	logger  *slog.Logger // nil → package logger at construction time
	style   RenderStyle
}

// newConfig starts from the documented defaults and applies opts in order.
func newConfig(opts ...Option) config {
	cfg := config{
		params:  surface.DefaultParams(),
		workers: 1,
		style:   DefaultRenderStyle(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = Logger()
	}

	return cfg
}

// WithRadius sets the central radius R (must be > 0 at New).
func WithRadius(R float64) Option {
	return func(c *config) { c.params.R = R }
}

// WithWidth sets the strip width w (must be > 0 at New).
func WithWidth(w float64) Option {
	return func(c *config) { c.params.W = w }
}

// WithResolution sets the number of samples per axis n (must be ≥ 2 at New).
func WithResolution(n int) Option {
	return func(c *config) { c.params.N = n }
}

// WithParams sets R, w and n at once.
func WithParams(p surface.Params) Option {
	return func(c *config) { c.params = p }
}

// WithWorkers evaluates the coordinate grid with up to k goroutines.
// k = 1 (the default) keeps evaluation single-threaded; results do not
// depend on k.
func WithWorkers(k int) Option {
	return func(c *config) { c.workers = k }
}

// WithLogger sets a per-strip logger; nil falls back to the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithRenderStyle overrides the hints handed to renderers.
// Panics on a negative or >1 alpha: such a style cannot be drawn.
func WithRenderStyle(s RenderStyle) Option {
	if s.Alpha < 0 || s.Alpha > 1 {
		panic("mobius: WithRenderStyle(alpha outside [0,1])")
	}

	return func(c *config) { c.style = s }
}
