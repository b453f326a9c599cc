// SPDX-License-Identifier: MIT
// Package: victory/sample
//
// sample.go — deterministic demo-series generators.
//
// Purpose (single responsibility):
//   • Reproducible {x,y} series for examples, fixtures and benchmarks.
//   • Strict determinism per (n, seed, options); no global state.
//   • O(n) time and memory; tiny constant factors.

package sample

import (
	"math"

	"github.com/jlismore/victory/chartdata"
)

// Wave returns a length-n sinusoid A·sin(2π·f0·i) with optional linear
// trend k·i and additive Gaussian noise, as raw {x,y} datums. Returns nil
// for n < 1 (invalid input, not an error).
//
// Complexity: O(n).
func Wave(n int, seed int64, opts ...Option) []chartdata.Datum {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([]chartdata.Datum, n)
	for i := 0; i < n; i++ {
		t := float64(i)
		y := cfg.amplitude * math.Sin(2*math.Pi*cfg.frequency*t)
		y += cfg.trendK * t
		if cfg.noiseSigma > 0 {
			y += rng.NormFloat64() * cfg.noiseSigma
		}
		out[i] = chartdata.Datum{"x": t, "y": y}
	}
	return out
}

// Walk returns a length-n cumulative random walk with step scale A and
// optional linear trend, as raw {x,y} datums. Returns nil for n < 1.
//
// Complexity: O(n).
func Walk(n int, seed int64, opts ...Option) []chartdata.Datum {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([]chartdata.Datum, n)
	level := 0.0
	for i := 0; i < n; i++ {
		level += rng.NormFloat64() * cfg.amplitude
		y := level + cfg.trendK*float64(i)
		if cfg.noiseSigma > 0 {
			y += rng.NormFloat64() * cfg.noiseSigma
		}
		out[i] = chartdata.Datum{"x": float64(i), "y": y}
	}
	return out
}
