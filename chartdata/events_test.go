package chartdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlismore/victory/accessor"
	"github.com/jlismore/victory/chartdata"
)

// TestAddEventKeys_Priority pins the three-level priority: an existing
// eventKey field, the configured accessor, then the positional index.
func TestAddEventKeys_Priority(t *testing.T) {
	cfg := chartdata.Config{EventKey: accessor.Key("id")}
	data := []chartdata.Datum{
		{"_x": 0, "eventKey": "explicit"},
		{"_x": 1, "id": "from-accessor"},
		{"_x": 2},
	}

	out := chartdata.AddEventKeys(cfg, data)
	require.Len(t, out, 3)
	assert.Equal(t, "explicit", out[0]["eventKey"], "existing field wins")
	assert.Equal(t, "from-accessor", out[1]["eventKey"], "configured accessor is second")
	assert.Equal(t, 2, out[2]["eventKey"], "positional index is the last resort")
}

// TestAddEventKeys_IndexDefault annotates every record with its index
// when nothing else is configured.
func TestAddEventKeys_IndexDefault(t *testing.T) {
	data := []chartdata.Datum{{"_x": 10}, {"_x": 20}}
	out := chartdata.AddEventKeys(chartdata.Config{}, data)
	require.Len(t, out, 2)
	assert.Equal(t, 0, out[0]["eventKey"])
	assert.Equal(t, 1, out[1]["eventKey"])
}

// TestAddEventKeys_NoMutation verifies annotation copies records instead
// of editing them in place.
func TestAddEventKeys_NoMutation(t *testing.T) {
	data := []chartdata.Datum{{"_x": 10}}
	out := chartdata.AddEventKeys(chartdata.Config{}, data)

	_, leaked := data[0]["eventKey"]
	assert.False(t, leaked, "input records are never edited in place")
	assert.Equal(t, 0, out[0]["eventKey"])
}

// TestAddEventKeys_StableAcrossReformat pins stability: reformatting
// unchanged input yields identical keys.
func TestAddEventKeys_StableAcrossReformat(t *testing.T) {
	cfg := chartdata.Config{EventKey: accessor.Key("_x")}
	data := []chartdata.Datum{{"_x": 7}, {"_x": 9}}

	first := chartdata.AddEventKeys(cfg, data)
	second := chartdata.AddEventKeys(cfg, data)
	assert.Equal(t, first, second)
	assert.Equal(t, 7, first[0]["eventKey"])
}
