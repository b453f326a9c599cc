package scale_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jlismore/victory/scale"
)

// TestParse_RoundTrip verifies every canonical name parses back to its
// Type and stringifies to the same name.
func TestParse_RoundTrip(t *testing.T) {
	for _, typ := range []scale.Type{scale.Linear, scale.Log, scale.Time, scale.Sqrt} {
		parsed, err := scale.Parse(typ.String())
		assert.NoError(t, err, "canonical name %q must parse", typ.String())
		assert.Equal(t, typ, parsed, "round trip must be identity")
	}
}

// TestParse_Unknown ensures unrecognized names surface ErrUnknownScale.
func TestParse_Unknown(t *testing.T) {
	_, err := scale.Parse("banana")
	assert.ErrorIs(t, err, scale.ErrUnknownScale, "unknown name must error")
}

// TestType_ZeroValueIsLinear pins the default: an unconfigured axis is
// linear.
func TestType_ZeroValueIsLinear(t *testing.T) {
	var typ scale.Type
	assert.Equal(t, scale.Linear, typ, "zero value must be Linear")
	assert.Equal(t, "linear", typ.String())
}

// TestDomain_Predicates covers Finite and Degenerate.
func TestDomain_Predicates(t *testing.T) {
	assert.True(t, scale.Domain{Min: 0, Max: 1}.Finite())
	assert.False(t, scale.Domain{Min: math.NaN(), Max: 1}.Finite(), "NaN bound is not finite")
	assert.False(t, scale.Domain{Min: 0, Max: math.Inf(1)}.Finite(), "Inf bound is not finite")
	assert.True(t, scale.Domain{Min: 3, Max: 3}.Degenerate(), "zero-length interval is degenerate")
	assert.False(t, scale.Domain{Min: 3, Max: 4}.Degenerate())
}

// TestDefaultDomain pins the base-scale fallback interval.
func TestDefaultDomain(t *testing.T) {
	assert.Equal(t, scale.Domain{Min: 0, Max: 1}, scale.DefaultDomain())
}
