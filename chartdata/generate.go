// SPDX-License-Identifier: MIT
// Package: victory/chartdata
//
// generate.go — synthetic {x,y} series over a domain.
//
// Purpose:
//   • When a caller supplies no explicit dataset, produce an evenly
//     stepped raw series the formatter can consume like any other data.
//   • Per axis independently: resolve the domain (per-axis override →
//     shared domain → base-scale default), emit samples steps across
//     [min,max), then append the exact maximum if floating-point stepping
//     missed it. The boundary is always represented exactly.
//
// Errors:
//   • ErrInvalidDomain — negative samples, non-finite bounds, or a
//     zero-length interval forced through more than one step.

package chartdata

import "fmt"

// GenerateData produces the synthetic raw series used when Config.Data is
// absent: per-axis stepped sequences zipped positionally into {x,y} pairs.
// Determinism: identical config yields an identical series.
//
// Complexity: O(samples) time and space.
func GenerateData(cfg Config) ([]Datum, error) {
	xs, err := generateAxis(cfg, AxisX)
	if err != nil {
		return nil, fmt.Errorf("GenerateData: axis x: %w", err)
	}
	ys, err := generateAxis(cfg, AxisY)
	if err != nil {
		return nil, fmt.Errorf("GenerateData: axis y: %w", err)
	}

	// Both sequences derive from the same sample count; zip defensively
	// to the shorter in case one axis hit its maximum exactly.
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	out := make([]Datum, n)
	for i := 0; i < n; i++ {
		out[i] = Datum{"x": xs[i], "y": ys[i]}
	}
	return out, nil
}

// generateAxis resolves the axis domain and emits the stepped sequence,
// appending the exact domain maximum when the last step missed it.
func generateAxis(cfg Config, axis Axis) ([]float64, error) {
	samples := cfg.Samples
	if samples == 0 {
		samples = DefaultSamples
	}
	if samples < 0 {
		return nil, fmt.Errorf("samples %d: %w", cfg.Samples, ErrInvalidDomain)
	}

	domain := cfg.domainFor(axis)
	if !domain.Finite() {
		return nil, fmt.Errorf("domain [%v,%v]: %w", domain.Min, domain.Max, ErrInvalidDomain)
	}
	if domain.Degenerate() && samples > 1 {
		// A zero-length interval cannot be stepped more than once.
		return nil, fmt.Errorf("domain [%v,%v] with %d samples: %w",
			domain.Min, domain.Max, samples, ErrInvalidDomain)
	}

	step := (domain.Max - domain.Min) / float64(samples)
	out := make([]float64, 0, samples+1)
	for i := 0; i < samples; i++ {
		out = append(out, domain.Min+step*float64(i))
	}
	if out[len(out)-1] != domain.Max {
		out = append(out, domain.Max)
	}
	return out, nil
}
