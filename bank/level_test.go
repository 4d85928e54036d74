package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spectrebit/tapemaker/game"
)

func TestLevelRoundTrip(t *testing.T) {
	p := screenProject()
	p.Screens = []game.Screen{
		{ID: "menu", Tiles: tileGrid("air")},
		{ID: "start", Tiles: tileGrid("air")},
		{ID: "caverns", Tiles: tileGrid("air")},
	}
	p.Levels = []game.Level{
		{ID: "caves", ScreenIDs: []string{"start", "caverns"}},
		{ID: "finale", ScreenIDs: []string{"menu"}},
	}

	records, err := ParseLevels(PackLevels(p.Levels, testIndex(p)))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []int{1, 2}, records[0].ScreenIndices)
	assert.Equal(t, []int{0}, records[1].ScreenIndices)
}

func TestPackLevelsDanglingScreen(t *testing.T) {
	p := screenProject()
	p.Screens = []game.Screen{{ID: "start", Tiles: tileGrid("air")}}
	p.Levels = []game.Level{{ID: "caves", ScreenIDs: []string{"no-such-screen"}}}
	ix := testIndex(p)

	records, err := ParseLevels(PackLevels(p.Levels, ix))
	require.NoError(t, err)

	assert.Equal(t, []int{0}, records[0].ScreenIndices)
	assert.NotEmpty(t, ix.Misses())
}
