// SPDX-License-Identifier: MIT
// Package: victory/chartdata
//
// sort.go — stable ordering of formatted data.
//
// Contract:
//   • No-op when the sort key is unset: insertion order is the default.
//   • Legacy aliasing: a bare "x"/"y" key is rewritten to "_x"/"_y",
//     because formatting renames those fields.
//   • Stable for equal keys; Descending reverses the comparison; any
//     other order value sorts ascending.
//   • The input slice is never reordered in place; a fresh slice is
//     returned (records are shared, sequences are not).

package chartdata

import (
	"sort"
	"strings"

	"github.com/spf13/cast"

	"github.com/jlismore/victory/accessor"
)

// SortData reorders data by the value the key spec extracts from each
// record. Values compare numerically when both coerce to float64, else
// lexically by their string form; records without a value sort first.
//
// Complexity: O(n log n) comparisons, O(n) extra space.
func SortData(data []Datum, key accessor.Spec, order SortOrder) []Datum {
	if key.IsZero() {
		return data
	}
	get := accessor.Resolve(aliasSortKey(key))

	ascending := order != Descending
	out := make([]Datum, len(data))
	copy(out, data)
	sort.SliceStable(out, func(i, j int) bool {
		av, aok := get(out[i])
		bv, bok := get(out[j])
		c := compare(av, aok, bv, bok)
		if ascending {
			return c < 0
		}
		return c > 0
	})
	return out
}

// aliasSortKey rewrites a bare "x" or "y" key to its formatted field name.
// Function specs, paths and any other key pass through untouched.
func aliasSortKey(key accessor.Spec) accessor.Spec {
	segs := key.Segments()
	if len(segs) != 1 {
		return key
	}
	if k, isKey := segs[0].(string); isKey {
		switch k {
		case "x":
			return accessor.Key(FieldX)
		case "y":
			return accessor.Key(FieldY)
		}
	}
	return key
}

// compare orders two extracted values. Absent values sort before present
// ones; present values compare numerically when both coerce to float64,
// else lexically by string form.
func compare(av any, aok bool, bv any, bok bool) int {
	if !aok || !bok {
		switch {
		case aok == bok:
			return 0
		case !aok:
			return -1
		default:
			return 1
		}
	}
	af, aerr := cast.ToFloat64E(av)
	bf, berr := cast.ToFloat64E(bv)
	if aerr == nil && berr == nil {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(cast.ToString(av), cast.ToString(bv))
}
