// SPDX-License-Identifier: MIT
// Package: victory/chartdata
//
// format.go — raw datum → Formatted Datum conversion.
//
// Design contract (strict):
//   • Input order is preserved through formatting; reordering happens only
//     in the sort stage.
//   • Per expected key: explicit accessor override when set, else the key
//     name; undefined results fall back to the positional index (x) or
//     the normalized datum itself (y, supporting bare-primitive datasets);
//     still-undefined values are omitted entirely, never emitted.
//   • String values resolve through the axis string map into the computed
//     integer plus a display-name shadow field; y0 reuses the y-axis map.
//   • Merge lays computed semantic fields over the original fields, so a
//     caller field literally named "_x" is overridden by the computed one
//     (pinned by TestFormatData_MergeSemantics).
//   • A record that is empty after merge is dropped, never emitted.

package chartdata

import (
	"github.com/jlismore/victory/accessor"
)

// defaultKeys are the expected keys when the caller names none.
var defaultKeys = []string{"x", "y", "y0"}

// FormatData converts a raw dataset into Formatted Datum records, then
// applies the stable sort and the scale-aware clean, in that order.
// Non-sequence input yields an empty (non-nil) result.
//
// Complexity: O(len(data) · len(keys)) plus the sort's O(n log n).
func FormatData(data any, cfg Config, keys ...string) []Datum {
	seq, ok := sequence(data)
	if !ok || len(seq) == 0 {
		return []Datum{}
	}
	if len(keys) == 0 {
		keys = defaultKeys
	}

	// One string map per axis per pass; nil means "no categorical axis".
	stringMaps := map[Axis]map[string]int{
		AxisX: stringMapOf(cfg, seq, AxisX),
		AxisY: stringMapOf(cfg, seq, AxisY),
	}

	// Resolve each key's accessor once, outside the datum loop.
	accessors := make(map[string]accessor.Accessor, len(keys))
	for _, key := range keys {
		accessors[key] = accessor.Resolve(cfg.specFor(key))
	}

	out := make([]Datum, 0, len(seq))
	for i, raw := range seq {
		d := normalizeDatum(raw)

		computed := Datum{}
		for _, key := range keys {
			v, present := accessors[key](d)
			if !present {
				// Documented fallbacks; other keys stay absent.
				switch key {
				case "x":
					v, present = i, true
				case "y":
					v, present = d, true
				}
			}
			if !present {
				continue // omit the field entirely
			}
			emit(computed, key, v, stringMaps)
		}

		// Merge original fields under the computed ones.
		rec := Datum{}
		if fields, isMap := d.(map[string]any); isMap {
			for k, v := range fields {
				rec[k] = v
			}
		}
		for k, v := range computed {
			rec[k] = v
		}
		if len(rec) == 0 {
			continue // empty after merge: dropped, never emitted
		}
		out = append(out, rec)
	}

	out = SortData(out, cfg.SortKey, cfg.SortOrder)
	return CleanData(out, cfg)
}

// emit writes one resolved value into the computed fields: strings with a
// live axis mapping become the mapped integer plus a name shadow; every
// other value lands in the semantic field directly.
func emit(computed Datum, key string, v any, stringMaps map[Axis]map[string]int) {
	if s, isStr := v.(string); isStr {
		if m := stringMaps[axisForKey(key)]; m != nil {
			if n := m[s]; n > 0 {
				computed[nameField(key)] = s
				computed[semanticField(key)] = n
				return
			}
		}
	}
	computed[semanticField(key)] = v
}

// semanticField returns the computed field name for an expected key.
func semanticField(key string) string {
	return "_" + key
}

// axisForKey maps an expected key onto the axis whose string map serves
// it. y0 inherits the y-axis map unconditionally; keys beyond x/y/y0 have
// no categorical axis.
func axisForKey(key string) Axis {
	switch key {
	case "x":
		return AxisX
	case "y", "y0":
		return AxisY
	default:
		return Axis("")
	}
}
