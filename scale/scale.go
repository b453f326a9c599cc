package scale

import (
	"errors"
	"math"
)

// ErrUnknownScale indicates a scale name that Parse does not recognize.
// Usage: if errors.Is(err, ErrUnknownScale) { /* reject the scale name */ }.
var ErrUnknownScale = errors.New("scale: unknown scale type")

// Type identifies the numeric transform applied to an axis for rendering.
// The zero value is Linear, so an unconfigured axis behaves linearly.
type Type int

const (
	// Linear is the identity transform (default).
	Linear Type = iota
	// Log is the logarithmic transform; zero is undefined under it.
	Log
	// Time treats values as timestamps on a linear scale.
	Time
	// Sqrt is the square-root power transform.
	Sqrt
)

// typeNames maps Type constants to their canonical names, in order.
var typeNames = [...]string{"linear", "log", "time", "sqrt"}

// String returns the canonical lowercase name of the scale type.
func (t Type) String() string {
	if t < Linear || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// Parse maps a canonical scale name to its Type.
// Returns ErrUnknownScale for anything not produced by Type.String.
func Parse(name string) (Type, error) {
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	return Linear, ErrUnknownScale
}

// Domain is a closed numeric interval [Min, Max] for one axis.
type Domain struct {
	Min float64
	Max float64
}

// DefaultDomain returns the base-scale fallback interval [0,1] used by the
// synthetic generator when neither a per-axis nor a shared domain is set.
func DefaultDomain() Domain {
	return Domain{Min: 0, Max: 1}
}

// Finite reports whether both bounds are finite numbers (not NaN or ±Inf).
func (d Domain) Finite() bool {
	return !math.IsNaN(d.Min) && !math.IsInf(d.Min, 0) &&
		!math.IsNaN(d.Max) && !math.IsInf(d.Max, 0)
}

// Degenerate reports whether the interval has zero length.
func (d Domain) Degenerate() bool {
	return d.Min == d.Max
}
