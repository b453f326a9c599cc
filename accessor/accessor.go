package accessor

import (
	"reflect"
)

// Accessor extracts a value from a (already normalized) datum.
// The second result is false when the datum holds no value for the spec;
// that absence is a valid terminal state, not an error.
type Accessor func(datum any) (any, bool)

// specKind discriminates the Spec tagged union.
type specKind uint8

const (
	specUnset specKind = iota // zero value: no spec supplied
	specFunc                  // caller-provided accessor function
	specPath                  // key/path/index traversal
	specNone                  // explicit "no value" marker
)

// Spec is a tagged-union key specification. Build one with Func, Key,
// Path, Index or None; the zero value means "unset" (see package doc).
type Spec struct {
	kind specKind
	fn   Accessor
	path []any // string keys and int indexes, traversed in order
}

// Func wraps an existing accessor function as a Spec.
// Panics on nil: a nil accessor is a programmer error, surfaced early.
func Func(fn Accessor) Spec {
	if fn == nil {
		panic("accessor: Func(nil)")
	}
	return Spec{kind: specFunc, fn: fn}
}

// Key specifies a single top-level key.
func Key(k string) Spec {
	return Spec{kind: specPath, path: []any{k}}
}

// Index specifies a positional index into a sequence datum.
func Index(i int) Spec {
	return Spec{kind: specPath, path: []any{i}}
}

// Path specifies a nested traversal; each segment must be a string key or
// an int index. Panics on an empty path or an unsupported segment type
// (programmer error, validated at construction so Resolve stays pure).
func Path(segments ...any) Spec {
	if len(segments) == 0 {
		panic("accessor: Path() requires at least one segment")
	}
	for _, seg := range segments {
		switch seg.(type) {
		case string, int:
		default:
			panic("accessor: Path segment must be string or int")
		}
	}
	p := make([]any, len(segments))
	copy(p, segments)
	return Spec{kind: specPath, path: p}
}

// None returns the explicit "no value" spec: its accessor always reports
// absence. Distinct from the zero-value (unset) Spec.
func None() Spec {
	return Spec{kind: specNone}
}

// IsZero reports whether the spec is unset (zero value).
func (s Spec) IsZero() bool {
	return s.kind == specUnset
}

// Segments returns a copy of the traversal path for Key/Path/Index specs,
// and nil for Func, None and unset specs. Callers use it to rewrite legacy
// key aliases without reaching into the union.
func (s Spec) Segments() []any {
	if s.kind != specPath {
		return nil
	}
	p := make([]any, len(s.path))
	copy(p, s.path)
	return p
}

// Resolve pattern-matches the spec once and returns a uniform Accessor.
//   - Func: the wrapped function, unchanged.
//   - Key/Path/Index: nested traversal; (nil,false) when any segment is
//     missing along the way.
//   - None and unset: constant "no value".
//
// Complexity: O(1) to resolve; traversal is O(len(path)) per call.
func Resolve(s Spec) Accessor {
	switch s.kind {
	case specFunc:
		return s.fn
	case specPath:
		path := s.path
		return func(datum any) (any, bool) {
			cur := datum
			var ok bool
			for _, seg := range path {
				cur, ok = lookup(cur, seg)
				if !ok {
					return nil, false
				}
			}
			return cur, true
		}
	default:
		return func(any) (any, bool) { return nil, false }
	}
}

// lookup fetches one path segment from a container. Supported containers:
// map[string]any (fast path), any map with string-assignable keys, slices
// and arrays (int segments), and structs (string segments name exported
// fields). Everything else yields no value.
func lookup(container, segment any) (any, bool) {
	if container == nil {
		return nil, false
	}

	// Fast path: plain field maps, the dominant datum shape after
	// normalization.
	if m, isMap := container.(map[string]any); isMap {
		k, isKey := segment.(string)
		if !isKey {
			return nil, false
		}
		v, present := m[k]
		return v, present
	}

	rv := reflect.ValueOf(container)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		k, isKey := segment.(string)
		if !isKey || rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Slice, reflect.Array:
		i, isIdx := segment.(int)
		if !isIdx || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	case reflect.Struct:
		name, isKey := segment.(string)
		if !isKey {
			return nil, false
		}
		fv := rv.FieldByName(name)
		if !fv.IsValid() || !fv.CanInterface() {
			return nil, false
		}
		return fv.Interface(), true
	default:
		return nil, false
	}
}
