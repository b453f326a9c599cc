// SPDX-License-Identifier: MIT
// Package: victory/chartdata
//
// events.go — per-datum identity keys for event correlation.
//
// Event keys let render layers correlate a datum across re-renders.
// Priority per record: an eventKey field already on the datum, then the
// configured accessor, then the positional index. Stable across
// reformatting of unchanged input because every source is deterministic.

package chartdata

import (
	"maps"

	"github.com/jlismore/victory/accessor"
)

// AddEventKeys annotates every record with its event key. Records that
// already carry one pass through unchanged; annotated records are fresh
// copies (the input records are never edited in place).
//
// Complexity: O(n) time, O(n) space for annotated records.
func AddEventKeys(cfg Config, data []Datum) []Datum {
	get := accessor.Resolve(cfg.EventKey)

	out := make([]Datum, len(data))
	for i, d := range data {
		if _, has := d[FieldEventKey]; has {
			out[i] = d
			continue
		}
		key, ok := get(map[string]any(d))
		if !ok {
			key = i
		}
		annotated := maps.Clone(d)
		annotated[FieldEventKey] = key
		out[i] = annotated
	}
	return out
}
