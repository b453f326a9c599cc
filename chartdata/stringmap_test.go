package chartdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jlismore/victory/accessor"
	"github.com/jlismore/victory/chartdata"
)

// TestStringMap_FromData builds the mapping from raw data values in
// first-seen order with 1-based integers.
func TestStringMap_FromData(t *testing.T) {
	data := []any{
		map[string]any{"x": "cats", "y": 1},
		map[string]any{"x": "dogs", "y": 2},
		map[string]any{"x": "cats", "y": 3},
		map[string]any{"x": "birds", "y": 4},
	}

	m := chartdata.StringMap(chartdata.Config{}, data, chartdata.AxisX)
	assert.Equal(t, map[string]int{"cats": 1, "dogs": 2, "birds": 3}, m,
		"first-seen order, sequential from 1")
}

// TestStringMap_AbsentNotEmpty pins the invariant: no strings ⇒ nil map,
// never an empty one.
func TestStringMap_AbsentNotEmpty(t *testing.T) {
	data := []any{
		map[string]any{"x": 1, "y": 2},
	}
	m := chartdata.StringMap(chartdata.Config{}, data, chartdata.AxisX)
	assert.Nil(t, m, "absence, not emptiness, signals a non-categorical axis")
}

// TestStringMap_TickSources covers the tick precedence: flat values,
// per-axis values, then format fallback. Non-string ticks are ignored.
func TestStringMap_TickSources(t *testing.T) {
	cfg := chartdata.Config{
		Ticks: chartdata.Ticks{Values: []any{"low", 5, "high"}},
	}
	m := chartdata.StringMap(cfg, []any{}, chartdata.AxisX)
	assert.Equal(t, map[string]int{"low": 1, "high": 2}, m, "flat tick values filter to strings")

	cfg = chartdata.Config{
		Ticks: chartdata.Ticks{Y: []any{"a", "b"}},
	}
	assert.Nil(t, chartdata.StringMap(cfg, []any{}, chartdata.AxisX),
		"per-axis ticks feed only their own axis")
	assert.Equal(t, map[string]int{"a": 1, "b": 2},
		chartdata.StringMap(cfg, []any{}, chartdata.AxisY))

	cfg = chartdata.Config{
		Ticks: chartdata.Ticks{Format: []any{"one", "two"}},
	}
	assert.Equal(t, map[string]int{"one": 1, "two": 2},
		chartdata.StringMap(cfg, []any{}, chartdata.AxisX),
		"tick format is the fallback when no tick values are declared")
}

// TestStringMap_CategoriesHorizontal checks orientation-aware category
// resolution: a horizontal layout swaps the axes.
func TestStringMap_CategoriesHorizontal(t *testing.T) {
	cfg := chartdata.Config{
		Categories: chartdata.Categories{X: []string{"left"}, Y: []string{"up", ""}},
	}

	assert.Equal(t, map[string]int{"left": 1},
		chartdata.StringMap(cfg, []any{}, chartdata.AxisX))

	cfg.Horizontal = true
	assert.Equal(t, map[string]int{"up": 1},
		chartdata.StringMap(cfg, []any{}, chartdata.AxisX),
		"horizontal layout resolves axis x to the y categories; empty entries removed")
}

// TestStringMap_UnionOrder merges ticks, categories and data in that
// order, deduplicating on first sight.
func TestStringMap_UnionOrder(t *testing.T) {
	cfg := chartdata.Config{
		Ticks:      chartdata.Ticks{Values: []any{"t"}},
		Categories: chartdata.Categories{All: []string{"c", "t"}},
	}
	data := []any{
		map[string]any{"x": "d"},
		map[string]any{"x": "c"},
	}

	m := chartdata.StringMap(cfg, data, chartdata.AxisX)
	assert.Equal(t, map[string]int{"t": 1, "c": 2, "d": 3}, m,
		"ticks, then categories, then data; duplicates keep their first assignment")
}

// TestStringMap_AccessorOverride routes data scanning through the per-key
// accessor override.
func TestStringMap_AccessorOverride(t *testing.T) {
	cfg := chartdata.Config{
		X: accessor.Path("tag", "name"),
	}
	data := []any{
		map[string]any{"tag": map[string]any{"name": "alpha"}},
	}
	m := chartdata.StringMap(cfg, data, chartdata.AxisX)
	assert.Equal(t, map[string]int{"alpha": 1}, m)
}
