package pokered_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/warpgraph/internal/extract/pokered"
	"github.com/cory-johannsen/warpgraph/internal/mapdata"
)

const mapObjectASM = `
	object_const_def

	def_warp_events
	warp_event  5,  5, OAKS_LAB, 2
	warp_event 12, 11, REDS_HOUSE_1F, 1
	warp_event  3,  7, LAST_MAP, 1

	def_bg_events
	bg_event 13, 13, 1 ; OaksLabText1

	def_object_events
	object_event 11, 11, SPRITE_OAK, STAY, NONE, 1
`

func TestParseWarpEvents(t *testing.T) {
	warps, err := pokered.ParseWarpEvents(strings.NewReader(mapObjectASM))
	require.NoError(t, err)
	require.Len(t, warps, 3)

	assert.Equal(t, mapdata.WarpEvent{X: 5, Y: 5, DestMap: "OAKS_LAB", DestWarpID: 2}, warps[0])
	assert.Equal(t, mapdata.WarpEvent{X: 12, Y: 11, DestMap: "REDS_HOUSE_1F", DestWarpID: 1}, warps[1])
	assert.Equal(t, mapdata.WarpEvent{X: 3, Y: 7, DestMap: "LAST_MAP", DestWarpID: 1}, warps[2])
}

func TestParseWarpEventsStopsAtBackgroundSection(t *testing.T) {
	input := `
	def_warp_events
	warp_event 1, 1, PALLET_TOWN, 1
	def_bg_events
	warp_event 2, 2, VIRIDIAN_CITY, 1
`
	warps, err := pokered.ParseWarpEvents(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, warps, 1)
	assert.Equal(t, "PALLET_TOWN", warps[0].DestMap)
}

func TestParseWarpEventsStopsAtObjectSection(t *testing.T) {
	input := `
	def_warp_events
	warp_event 1, 1, PALLET_TOWN, 1
	def_object_events
	warp_event 2, 2, VIRIDIAN_CITY, 1
`
	warps, err := pokered.ParseWarpEvents(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, warps, 1)
}

func TestParseWarpEventsIgnoredOutsideSection(t *testing.T) {
	input := `
	warp_event 1, 1, PALLET_TOWN, 1
	def_bg_events
`
	warps, err := pokered.ParseWarpEvents(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, warps)
}

func TestParseWarpEventsNoSection(t *testing.T) {
	input := `
	object_const_def
	def_object_events
`
	warps, err := pokered.ParseWarpEvents(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, warps)
}

func TestParseWarpEventsPreservesFileOrder(t *testing.T) {
	input := `
	def_warp_events
	warp_event 9, 9, ROUTE_3, 3
	warp_event 1, 1, ROUTE_1, 1
	warp_event 5, 5, ROUTE_2, 2
	def_bg_events
`
	warps, err := pokered.ParseWarpEvents(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, warps, 3)
	assert.Equal(t, "ROUTE_3", warps[0].DestMap)
	assert.Equal(t, "ROUTE_1", warps[1].DestMap)
	assert.Equal(t, "ROUTE_2", warps[2].DestMap)
}
