// SPDX-License-Identifier: MIT
// Package: victory/chartdata
//
// stringmap.go — per-axis categorical string→integer mapping.
//
// Contract:
//   • One map per axis per formatting pass, built from the union of three
//     string sources: tick declarations, category declarations (with
//     orientation-aware axis resolution), and raw data values.
//   • Deduplicated in first-seen order; integers assigned sequentially
//     starting at 1. Zero is reserved so integer comparisons against "no
//     mapping" stay unambiguous.
//   • nil — not an empty map — signals "no categorical axis". Absence and
//     emptiness are never conflated.
//   • Maps are call-scoped and never cached across calls: caching without
//     input identity tracking would serve stale mappings after the data
//     changes.

package chartdata

import (
	"github.com/jlismore/victory/accessor"
)

// StringMap scans tick declarations, category declarations and the raw
// dataset for string values on the given axis and assigns each distinct
// string a stable 1-based integer, in first-seen order. Returns nil when
// the axis carries no strings.
//
// Complexity: O(ticks + categories + len(data)) time and space.
func StringMap(cfg Config, data any, axis Axis) map[string]int {
	seq, _ := sequence(data)
	return stringMapOf(cfg, seq, axis)
}

// stringMapOf is the internal form operating on an already-coerced
// sequence, shared with FormatData so the dataset is coerced once.
func stringMapOf(cfg Config, seq []any, axis Axis) map[string]int {
	var union []string
	union = append(union, stringsFromTicks(cfg.Ticks, axis)...)
	union = append(union, cfg.Categories.forAxis(axis, cfg.Horizontal)...)
	union = append(union, stringsFromData(cfg, seq, axis)...)
	if len(union) == 0 {
		return nil
	}

	out := make(map[string]int, len(union))
	next := 1
	for _, s := range union {
		if _, seen := out[s]; seen {
			continue
		}
		out[s] = next
		next++
	}
	return out
}

// stringsFromTicks filters the axis tick declarations to string values.
func stringsFromTicks(t Ticks, axis Axis) []string {
	declared := t.forAxis(axis)
	out := make([]string, 0, len(declared))
	for _, v := range declared {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// stringsFromData collects every string yielded by the axis accessor over
// the normalized raw data, in dataset order.
func stringsFromData(cfg Config, seq []any, axis Axis) []string {
	get := accessor.Resolve(cfg.specFor(string(axis)))
	out := make([]string, 0)
	for _, raw := range seq {
		v, ok := get(normalizeDatum(raw))
		if !ok {
			continue
		}
		if s, isStr := v.(string); isStr && s != "" {
			out = append(out, s)
		}
	}
	return out
}
