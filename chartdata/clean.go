// SPDX-License-Identifier: MIT
// Package: victory/chartdata
//
// clean.go — scale-aware removal of records illegal for the resolved
// scale types.
//
// Zero is undefined under a logarithmic scale; letting it through would
// surface as silent rendering corruption (divide-by-zero in downstream
// coordinate math), so affected records are removed here. A record is
// removed if it fails any applicable rule.

package chartdata

import (
	"github.com/spf13/cast"

	"github.com/jlismore/victory/scale"
)

// CleanData removes records whose computed values are invalid for the
// resolved scale types: zero "_x" under a logarithmic x scale, zero "_y"
// or "_y0" under a logarithmic y scale. No-op (the input is returned
// unchanged) when neither axis is logarithmic.
//
// Complexity: O(n) time, O(n) space when active.
func CleanData(data []Datum, cfg Config) []Datum {
	logX := cfg.scaleFor(AxisX) == scale.Log
	logY := cfg.scaleFor(AxisY) == scale.Log
	if !logX && !logY {
		return data
	}

	out := make([]Datum, 0, len(data))
	for _, d := range data {
		if logX && numericZero(d[FieldX]) {
			continue
		}
		if logY && (numericZero(d[FieldY]) || numericZero(d[FieldY0])) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// numericZero reports whether v is a numeric value exactly equal to zero.
// Absent fields, strings and booleans are never "zero" here: only genuine
// numerics are illegal under a log scale.
func numericZero(v any) bool {
	switch v.(type) {
	case nil, string, bool:
		return false
	}
	f, err := cast.ToFloat64E(v)
	return err == nil && f == 0
}
