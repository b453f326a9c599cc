// SPDX-License-Identifier: MIT
// Package: victory/chartdata
//
// normalize.go — raw datum and dataset normalization.
//
// Purpose:
//   • Unwrap immutable Records into plain field maps, keeping the
//     errorX/errorY fields as opaque references (their immutable form is
//     meaningful to specialized downstream consumers).
//   • Decode arbitrary record-like Go values (structs, typed maps) into
//     plain field maps so the accessor machinery sees one shape.
//   • Coerce any sequence-like dataset into []any; non-sequence input is
//     rejected as "not a dataset", not an error.

package chartdata

import (
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/jlismore/victory/immutable"
)

// normalizeDatum converts one raw datum into the shape the accessors and
// the merge step operate on: a plain map[string]any for record-like
// values, the value itself for primitives.
func normalizeDatum(raw any) any {
	switch d := raw.(type) {
	case nil:
		return nil
	case immutable.Record:
		return immutable.ToPlain(d, fieldErrorX, fieldErrorY)
	case map[string]any:
		return d
	case Datum:
		return map[string]any(d)
	}

	rv := reflect.ValueOf(raw)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct, reflect.Map:
		var fields map[string]any
		if err := mapstructure.Decode(rv.Interface(), &fields); err == nil && fields != nil {
			return fields
		}
		return raw
	default:
		// Primitives (bare y values) pass through untouched.
		return raw
	}
}

// sequence coerces a dataset into []any. The second result is false for
// non-sequence input (including nil), which callers translate into an
// empty result per the error-avoidance policy.
func sequence(data any) ([]any, bool) {
	switch s := data.(type) {
	case nil:
		return nil, false
	case []any:
		return s, true
	case []Datum:
		out := make([]any, len(s))
		for i, d := range s {
			out[i] = d
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(s))
		for i, d := range s {
			out[i] = d
		}
		return out, true
	case immutable.Iterable:
		out := make([]any, s.Len())
		for i := 0; i < s.Len(); i++ {
			out[i] = s.At(i)
		}
		return out, true
	}

	rv := reflect.ValueOf(data)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	}
	return nil, false
}
