package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spectrebit/tapemaker/game"
)

func frame(rows ...string) game.PixelGrid {
	g := make(game.PixelGrid, len(rows))
	for y, row := range rows {
		g[y] = make([]uint8, len(row))
		for x, c := range row {
			if c != '0' {
				g[y][x] = uint8(c - '0')
			}
		}
	}
	return g
}

func TestPackSpritePixelsLength(t *testing.T) {
	tests := []struct {
		width, height int
		want          int
	}{
		{8, 8, 8},
		{16, 16, 32},
		{9, 3, 6},  // 9 wide needs 2 bytes per row
		{24, 5, 15},
	}
	for _, tt := range tests {
		g := make(game.PixelGrid, tt.height)
		for y := range g {
			g[y] = make([]uint8, tt.width)
		}
		assert.Len(t, PackSpritePixels(g), tt.want, "%dx%d", tt.width, tt.height)
	}
}

func TestPackSpritePixelsBits(t *testing.T) {
	// Bit 7 is the leftmost pixel; any non-zero palette index sets it.
	g := frame(
		"10000001",
		"02000000",
		"00000000",
	)
	b := PackSpritePixels(g)
	assert.Equal(t, []byte{0x81, 0x40, 0x00}, b)
}

func TestSpriteBankRoundTrip(t *testing.T) {
	sprites := []game.Sprite{
		{
			ID:        "player",
			Frames:    []game.PixelGrid{frame("11110000", "00001111"), frame("11111111", "00000000")},
			Collision: game.Box{Left: 1, Top: 2, Right: 3, Bottom: 4},
		},
		{
			ID:     "coin",
			Frames: []game.PixelGrid{frame("01100110", "01100110")},
		},
	}

	records, err := ParseSprites(PackSprites(sprites))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 8, records[0].Width)
	assert.Equal(t, 2, records[0].Height)
	require.Len(t, records[0].Frames, 2)
	assert.Equal(t, []byte{0xf0, 0x0f}, records[0].Frames[0])
	assert.Equal(t, []byte{0xff, 0x00}, records[0].Frames[1])
	assert.Equal(t, game.Box{Left: 1, Top: 2, Right: 3, Bottom: 4}, records[0].Collision)

	require.Len(t, records[1].Frames, 1)
	assert.Equal(t, []byte{0x66, 0x66}, records[1].Frames[0])
	assert.Equal(t, game.Box{}, records[1].Collision)
}
