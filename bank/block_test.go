package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spectrebit/tapemaker/game"
)

func testIndex(p *game.Project) *game.Index {
	return game.BuildIndex(p)
}

func TestPackBlocksConveyor(t *testing.T) {
	p := &game.Project{
		Sprites: []game.Sprite{{ID: "s0"}, {ID: "belt"}},
		Blocks: []game.Block{{
			ID:       "conv",
			Type:     "conveyor",
			SpriteID: "belt",
			Props:    game.Properties{"speed": 2.5, "direction": "right"},
		}},
	}

	b := PackBlocks(p.Blocks, testIndex(p))

	// Count, pointer table, then the record.
	require.Equal(t, byte(1), b[0])
	off := int(b[1]) | int(b[2])<<8
	require.Equal(t, 3, off)
	assert.Equal(t, []byte{1, 2, 0b00000011, 10, 1}, b[off:])
}

func TestPackBlocksCountPrefix(t *testing.T) {
	blocks := []game.Block{
		{ID: "a", Type: "solid", SpriteID: "s"},
		{ID: "b", Type: "spike", SpriteID: "s"},
		{ID: "c", Type: "decoration", SpriteID: "s"},
	}
	p := &game.Project{Sprites: []game.Sprite{{ID: "s"}}, Blocks: blocks}

	b := PackBlocks(blocks, testIndex(p))
	assert.Equal(t, byte(3), b[0])
}

func TestBlockRoundTrip(t *testing.T) {
	blocks := []game.Block{
		{ID: "floor", Type: "solid", SpriteID: "s1"},
		{ID: "conv", Type: "conveyor", SpriteID: "s2",
			Props: game.Properties{"speed": 1.5, "direction": "left"}},
		{ID: "crumbly", Type: "crumble", SpriteID: "s1",
			Props: game.Properties{"crumbleTime": 8.0, "respawnTime": 50.0}},
		{ID: "rope", Type: "ladder", SpriteID: "s2",
			Props: game.Properties{"climbSpeed": 0.75}},
	}
	p := &game.Project{
		Sprites: []game.Sprite{{ID: "s1"}, {ID: "s2"}},
		Blocks:  blocks,
	}

	records, err := ParseBlocks(PackBlocks(blocks, testIndex(p)))
	require.NoError(t, err)
	require.Len(t, records, len(blocks))

	for i, rec := range records {
		assert.Equal(t, blocks[i].Type, rec.Type, "block %d type", i)
	}

	assert.Equal(t, byte(0), records[0].Flags)
	assert.Equal(t, byte(0b11), records[1].Flags)
	assert.Equal(t, 1.5, records[1].Props["speed"])
	assert.Equal(t, "left", records[1].Props["direction"])
	assert.Equal(t, byte(0b1100), records[2].Flags)
	assert.Equal(t, 8.0, records[2].Props["crumbleTime"])
	assert.Equal(t, byte(0b100000), records[3].Flags)
	assert.Equal(t, 0.75, records[3].Props["climbSpeed"])
}

func TestBlockUnknownTypeFallsBack(t *testing.T) {
	blocks := []game.Block{{ID: "x", Type: "no-such-type", SpriteID: "s"}}
	p := &game.Project{Sprites: []game.Sprite{{ID: "s"}}, Blocks: blocks}

	records, err := ParseBlocks(PackBlocks(blocks, testIndex(p)))
	require.NoError(t, err)
	assert.Equal(t, "decoration", records[0].Type)
}

func TestPackBlocksDeterministic(t *testing.T) {
	blocks := []game.Block{
		{ID: "conv", Type: "conveyor", SpriteID: "s",
			Props: game.Properties{"speed": 2.0, "direction": "right", "friction": 0.5}},
	}
	p := &game.Project{Sprites: []game.Sprite{{ID: "s"}}, Blocks: blocks}

	first := PackBlocks(blocks, testIndex(p))
	second := PackBlocks(blocks, testIndex(p))
	assert.Equal(t, first, second)
}
