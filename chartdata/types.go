// SPDX-License-Identifier: MIT
// Package: victory/chartdata
//
// types.go — datum, axis, ordering and configuration types.
//
// Design:
//   • Config is a plain options struct with a usable zero value: nil data,
//     unset accessor specs, linear scales, one sample, insertion order.
//   • A zero-value accessor.Spec means "no override"; the key name itself
//     becomes the accessor spec. accessor.None() is a valid override that
//     deliberately yields no value — the two are never conflated.
//   • Formatted Datum records are plain field maps; the computed semantic
//     fields are namespaced with a leading underscore so they do not
//     collide with caller fields under merge.

package chartdata

import (
	"github.com/jlismore/victory/accessor"
	"github.com/jlismore/victory/scale"
)

// Datum is one formatted record: the computed semantic fields merged with
// every original field of the raw datum. Records are never mutated after
// creation; later stages filter or reorder sequences only.
type Datum map[string]any

// Semantic field names produced by formatting and annotation.
const (
	// FieldX holds the computed x value.
	FieldX = "_x"
	// FieldY holds the computed y value.
	FieldY = "_y"
	// FieldY0 holds the computed y0 (baseline) value, when present.
	FieldY0 = "_y0"
	// FieldEventKey holds the per-datum identity used for event
	// correlation across re-renders.
	FieldEventKey = "eventKey"
)

// Reserved raw-datum fields preserved as opaque references during
// immutable normalization (their nested immutable structure survives for
// specialized downstream consumers).
const (
	fieldErrorX = "errorX"
	fieldErrorY = "errorY"
)

// nameField returns the display-name shadow field for an expected key:
// "_xName", "_yName", "_y0Name". It carries the original string when the
// value was resolved through a categorical string map.
func nameField(key string) string {
	return "_" + key + "Name"
}

// Axis is one independent dimension of a series.
type Axis string

const (
	// AxisX is the horizontal dimension (before orientation swap).
	AxisX Axis = "x"
	// AxisY is the vertical dimension (before orientation swap).
	AxisY Axis = "y"
)

// CurrentAxis resolves the effective axis under the layout orientation:
// a horizontal layout swaps x and y.
func CurrentAxis(axis Axis, horizontal bool) Axis {
	if !horizontal {
		return axis
	}
	if axis == AxisX {
		return AxisY
	}
	return AxisX
}

// SortOrder selects the direction of SortData. Anything other than
// Descending (including the zero value) sorts ascending.
type SortOrder string

const (
	// Ascending sorts smallest first (default).
	Ascending SortOrder = "ascending"
	// Descending reverses the comparison.
	Descending SortOrder = "descending"
)

// Categories declares categorical values per axis. All applies to both
// axes when a per-axis list is absent. Empty strings are treated as
// absent entries and removed.
type Categories struct {
	All []string
	X   []string
	Y   []string
}

// forAxis returns the category declarations for the effective axis, with
// absent (empty-string) entries removed.
func (c Categories) forAxis(axis Axis, horizontal bool) []string {
	cur := CurrentAxis(axis, horizontal)
	declared := c.All
	if cur == AxisX && c.X != nil {
		declared = c.X
	}
	if cur == AxisY && c.Y != nil {
		declared = c.Y
	}
	out := make([]string, 0, len(declared))
	for _, s := range declared {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Ticks declares tick values and formats. Values is the flat declaration
// applying to any axis; X and Y are per-axis declarations; Format is the
// fallback consulted only when no tick values are declared at all.
type Ticks struct {
	Values []any
	X      []any
	Y      []any
	Format []any
}

// forAxis returns the tick declarations feeding the string map of axis,
// in the documented precedence: flat values, per-axis values, format.
func (t Ticks) forAxis(axis Axis) []any {
	if len(t.Values) > 0 {
		return t.Values
	}
	perAxis := t.X
	if axis == AxisY {
		perAxis = t.Y
	}
	if len(perAxis) > 0 {
		return perAxis
	}
	return t.Format
}

// DefaultSamples is the number of generated steps when Samples is unset.
const DefaultSamples = 1

// Config carries every recognized option of the pipeline. The zero value
// is valid: no data (synthetic generation over the default base domain),
// key-name accessors, linear scales, insertion order, no event keys.
type Config struct {
	// Data is the raw dataset: a slice of any element type, an
	// immutable Iterable, or nil to request synthetic generation.
	Data any

	// X, Y, Y0 override the accessor spec per expected key. An unset
	// (zero-value) spec means "use the key name"; accessor.None() is an
	// explicit override yielding no value.
	X  accessor.Spec
	Y  accessor.Spec
	Y0 accessor.Spec

	// EventKey is the accessor spec for per-datum identity values.
	EventKey accessor.Spec

	// Domain is the shared generation interval; DomainX and DomainY
	// override it per axis. When all are nil the base-scale default
	// domain applies.
	Domain  *scale.Domain
	DomainX *scale.Domain
	DomainY *scale.Domain

	// Samples is the number of evenly spaced generation steps
	// (DefaultSamples when zero; negative is ErrInvalidDomain).
	Samples int

	// Categories and Ticks feed the per-axis categorical string maps.
	Categories Categories
	Ticks      Ticks

	// SortKey orders formatted data; unset preserves insertion order.
	// Bare "x"/"y" keys alias to "_x"/"_y" (legacy compatibility).
	SortKey   accessor.Spec
	SortOrder SortOrder

	// ScaleX and ScaleY are the externally resolved scale types per
	// axis; Log activates scale-aware cleaning.
	ScaleX scale.Type
	ScaleY scale.Type

	// Horizontal swaps the x/y axes for category resolution.
	Horizontal bool
}

// scaleFor returns the resolved scale type of the given axis.
func (c Config) scaleFor(axis Axis) scale.Type {
	if axis == AxisY {
		return c.ScaleY
	}
	return c.ScaleX
}

// domainFor resolves the generation interval for axis: per-axis override,
// then the shared domain, then the base-scale default.
func (c Config) domainFor(axis Axis) scale.Domain {
	perAxis := c.DomainX
	if axis == AxisY {
		perAxis = c.DomainY
	}
	if perAxis != nil {
		return *perAxis
	}
	if c.Domain != nil {
		return *c.Domain
	}
	return scale.DefaultDomain()
}

// specFor returns the accessor spec for an expected key: the per-key
// override when set, else the key name itself.
func (c Config) specFor(key string) accessor.Spec {
	var s accessor.Spec
	switch key {
	case "x":
		s = c.X
	case "y":
		s = c.Y
	case "y0":
		s = c.Y0
	}
	if s.IsZero() {
		s = accessor.Key(key)
	}
	return s
}
