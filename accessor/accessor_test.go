package accessor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jlismore/victory/accessor"
)

// TestResolve_Func returns the wrapped function unchanged in behavior.
func TestResolve_Func(t *testing.T) {
	get := accessor.Resolve(accessor.Func(func(d any) (any, bool) {
		return 42, true
	}))
	v, ok := get(nil)
	assert.True(t, ok)
	assert.Equal(t, 42, v, "function specs are used as-is")
}

// TestResolve_Key fetches a top-level map field and reports absence for a
// missing key without erroring.
func TestResolve_Key(t *testing.T) {
	datum := map[string]any{"x": 3.5}

	v, ok := accessor.Resolve(accessor.Key("x"))(datum)
	assert.True(t, ok)
	assert.Equal(t, 3.5, v)

	_, ok = accessor.Resolve(accessor.Key("y"))(datum)
	assert.False(t, ok, "missing key is a valid terminal state")
}

// TestResolve_Path traverses nested maps, slices and structs; any missing
// segment yields no value.
func TestResolve_Path(t *testing.T) {
	type point struct{ Y float64 }
	datum := map[string]any{
		"series": []any{
			map[string]any{"p": point{Y: 7}},
		},
	}

	v, ok := accessor.Resolve(accessor.Path("series", 0, "p", "Y"))(datum)
	assert.True(t, ok, "full path must resolve")
	assert.Equal(t, 7.0, v)

	_, ok = accessor.Resolve(accessor.Path("series", 1, "p"))(datum)
	assert.False(t, ok, "index out of range terminates traversal")

	_, ok = accessor.Resolve(accessor.Path("series", 0, "q"))(datum)
	assert.False(t, ok, "missing mid-path key terminates traversal")
}

// TestResolve_Index addresses sequence datums positionally.
func TestResolve_Index(t *testing.T) {
	datum := []any{"a", "b"}

	v, ok := accessor.Resolve(accessor.Index(1))(datum)
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = accessor.Resolve(accessor.Index(5))(datum)
	assert.False(t, ok)
	_, ok = accessor.Resolve(accessor.Index(-1))(datum)
	assert.False(t, ok, "negative index never resolves")
}

// TestResolve_NoneAndUnset both yield constant "no value", and IsZero
// distinguishes them.
func TestResolve_NoneAndUnset(t *testing.T) {
	datum := map[string]any{"x": 1}

	_, ok := accessor.Resolve(accessor.None())(datum)
	assert.False(t, ok, "None always reports no value")

	var unset accessor.Spec
	_, ok = accessor.Resolve(unset)(datum)
	assert.False(t, ok, "unset spec resolves like None")

	assert.True(t, unset.IsZero(), "zero value is unset")
	assert.False(t, accessor.None().IsZero(), "None is an explicit spec, not unset")
}

// TestResolve_TypedContainers covers typed maps and slices reached via
// reflection.
func TestResolve_TypedContainers(t *testing.T) {
	v, ok := accessor.Resolve(accessor.Key("x"))(map[string]float64{"x": 2})
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)

	v, ok = accessor.Resolve(accessor.Index(0))([]int{9, 8})
	assert.True(t, ok)
	assert.Equal(t, 9, v)

	_, ok = accessor.Resolve(accessor.Key("x"))(42)
	assert.False(t, ok, "primitives hold no keyed values")
	_, ok = accessor.Resolve(accessor.Key("x"))(nil)
	assert.False(t, ok, "nil datum holds no values")
}

// TestSegments exposes the traversal path for alias rewriting and stays
// nil for non-path specs.
func TestSegments(t *testing.T) {
	assert.Equal(t, []any{"x"}, accessor.Key("x").Segments())
	assert.Equal(t, []any{"a", 1}, accessor.Path("a", 1).Segments())
	assert.Nil(t, accessor.None().Segments())
	assert.Nil(t, accessor.Func(func(any) (any, bool) { return nil, false }).Segments())

	// Mutating the copy must not affect the spec.
	spec := accessor.Path("a", "b")
	segs := spec.Segments()
	segs[0] = "z"
	assert.Equal(t, []any{"a", "b"}, spec.Segments(), "Segments returns a copy")
}

// TestConstructors_Panic validates fail-fast construction for programmer
// errors.
func TestConstructors_Panic(t *testing.T) {
	assert.Panics(t, func() { accessor.Func(nil) }, "Func(nil) must panic")
	assert.Panics(t, func() { accessor.Path() }, "empty Path must panic")
	assert.Panics(t, func() { accessor.Path(3.14) }, "non string/int segment must panic")
}
