package immutable

import (
	"slices"
	"sort"
)

// Record is the keyed immutable-container contract: read-only access to
// named fields with a stable key order.
type Record interface {
	// Get returns the value stored under key, and whether it exists.
	Get(key string) (any, bool)
	// Keys returns all field keys in a stable, deterministic order.
	Keys() []string
}

// Iterable is the positional immutable-container contract.
type Iterable interface {
	// Len returns the number of entries.
	Len() int
	// At returns the entry at index i; i must be in [0, Len()).
	At(i int) any
}

// IsRecord reports whether v satisfies the Record contract.
func IsRecord(v any) bool {
	_, ok := v.(Record)
	return ok
}

// IsIterable reports whether v satisfies the Iterable contract.
func IsIterable(v any) bool {
	_, ok := v.(Iterable)
	return ok
}

// Map is the reference Record implementation: a defensively copied,
// read-only field map with sorted key order for determinism.
type Map struct {
	fields map[string]any
	keys   []string
}

// NewMap copies fields into a read-only Record. The source map stays
// caller-owned; later mutation of it does not affect the Record.
// Key order is sorted so conversions are deterministic.
func NewMap(fields map[string]any) Map {
	cp := make(map[string]any, len(fields))
	keys := make([]string, 0, len(fields))
	for k, v := range fields {
		cp[k] = v
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return Map{fields: cp, keys: keys}
}

// Get returns the value stored under key, and whether it exists.
func (m Map) Get(key string) (any, bool) {
	v, ok := m.fields[key]
	return v, ok
}

// Keys returns the field keys in sorted order.
func (m Map) Keys() []string {
	return slices.Clone(m.keys)
}

// Slice is the reference Iterable implementation over a defensive copy.
type Slice struct {
	items []any
}

// NewSlice copies items into a read-only Iterable.
func NewSlice(items ...any) Slice {
	return Slice{items: slices.Clone(items)}
}

// Len returns the number of entries.
func (s Slice) Len() int { return len(s.items) }

// At returns the entry at index i.
func (s Slice) At(i int) any { return s.items[i] }

// ToPlain shallow-converts a Record into a plain field map. Field values
// that are themselves Records or Iterables are converted recursively,
// except fields named in skip: those are carried over untouched as opaque
// references, preserving their immutable form for downstream consumers.
//
// Complexity: O(fields) plus the size of converted nested containers.
func ToPlain(r Record, skip ...string) map[string]any {
	out := make(map[string]any, len(r.Keys()))
	for _, k := range r.Keys() {
		v, ok := r.Get(k)
		if !ok {
			continue
		}
		if slices.Contains(skip, k) {
			out[k] = v // opaque pass-through
			continue
		}
		out[k] = toPlainValue(v)
	}
	return out
}

// toPlainValue converts nested immutable containers to plain structures.
func toPlainValue(v any) any {
	switch c := v.(type) {
	case Record:
		return ToPlain(c)
	case Iterable:
		items := make([]any, c.Len())
		for i := 0; i < c.Len(); i++ {
			items[i] = toPlainValue(c.At(i))
		}
		return items
	default:
		return v
	}
}
