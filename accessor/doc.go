// Package accessor resolves key specifications into uniform datum
// accessors for github.com/jlismore/victory.
//
// A key specification (Spec) is a tagged union: a caller-supplied
// function, a single key, a nested path, a positional index, or an
// explicit "no value" marker. Resolve pattern-matches the union once and
// returns a pure Accessor, so no runtime type inspection leaks into call
// sites downstream.
//
// Contract:
//   - Accessors never panic and never error: a missing key, index out of
//     range, or unsupported container is a valid terminal state reported
//     as (nil, false). Callers apply their own fallback policy.
//   - The zero-value Spec is "unset". It is distinct from None(): unset
//     lets a caller substitute its own default spec (e.g. the expected key
//     name), while None() deliberately resolves to no value.
//
// Example:
//
//	get := accessor.Resolve(accessor.Path("point", "y"))
//	v, ok := get(map[string]any{"point": map[string]any{"y": 3.5}})
//	// v == 3.5, ok == true
package accessor
