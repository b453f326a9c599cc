// SPDX-License-Identifier: MIT
// Package: victory/sample
//
// options.go — functional options for the demo-series generators.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves never panic.
//   • Determinism is explicit: seeding happens per call (seed argument)
//     or via a shared stream (WithRand).
//   • No hidden globals; everything flows through config.

package sample

import (
	"math/rand"
)

// Option customizes a generator by mutating its config before the series
// is produced. Applying N options costs O(N) time.
type Option func(*config)

// config aggregates all generator knobs; passed by value, immutable to
// callers once resolved.
type config struct {
	amplitude  float64    // >0
	frequency  float64    // >0, cycles per sample
	trendK     float64    // any real, added as k·i
	noiseSigma float64    // ≥0, Gaussian stdev; 0 disables noise
	rng        *rand.Rand // shared stream; nil means seed-local RNG
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultAmplitude  = 1.0
	defaultFrequency  = 0.125 // period ≈ 8 samples
	defaultTrend      = 0.0
	defaultNoiseSigma = 0.0
)

// newConfig resolves defaults then applies options in order (last wins).
func newConfig(opts ...Option) config {
	cfg := config{
		amplitude:  defaultAmplitude,
		frequency:  defaultFrequency,
		trendK:     defaultTrend,
		noiseSigma: defaultNoiseSigma,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// rngFrom returns cfg.rng when a shared stream was supplied, else a local
// seeded source, keeping determinism across composed calls.
func rngFrom(cfg config, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}
	return rand.New(rand.NewSource(seed))
}

// WithAmplitude sets the series amplitude A (>0). Panics if A <= 0.
func WithAmplitude(a float64) Option {
	if a <= 0 {
		panic("sample: WithAmplitude(A<=0)")
	}
	return func(c *config) { c.amplitude = a }
}

// WithFrequency sets the base frequency f0 (>0) in cycles per sample.
// Panics if f0 <= 0.
func WithFrequency(f0 float64) Option {
	if f0 <= 0 {
		panic("sample: WithFrequency(f0<=0)")
	}
	return func(c *config) { c.frequency = f0 }
}

// WithTrend sets the linear trend coefficient k; any real value.
func WithTrend(k float64) Option {
	return func(c *config) { c.trendK = k }
}

// WithNoise sets the Gaussian noise sigma (>=0). Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("sample: WithNoise(sigma<0)")
	}
	return func(c *config) { c.noiseSigma = sigma }
}

// WithRand provides an explicit shared RNG stream. Panics on nil; prefer
// the per-call seed for reproducible fixtures.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sample: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}
