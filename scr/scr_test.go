package scr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spectrebit/tapemaker/game"
)

func blankScreen(fill uint8) game.PixelGrid {
	pix := make(game.PixelGrid, game.ScreenHeight)
	for y := range pix {
		pix[y] = make([]uint8, game.ScreenWidth)
		for x := range pix[y] {
			pix[y][x] = fill
		}
	}
	return pix
}

func TestBitmapOffset(t *testing.T) {
	// The screen thirds interleave rows; spot-check known addresses.
	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 0x0000},
		{8, 0, 0x0001},
		{0, 1, 0x0100},
		{0, 8, 0x0020},
		{0, 64, 0x0800},
		{0, 191, 0x17e0},
		{248, 0, 0x001f},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, bitmapOffset(tt.x, tt.y), "(%d,%d)", tt.x, tt.y)
	}
}

func TestEncodeCellBytes(t *testing.T) {
	pix := blankScreen(0)
	// Ink an anti-diagonal in the top-left cell using bright red (10). The
	// top-left pixel stays black so black is the cell's paper color.
	for i := 0; i < 8; i++ {
		pix[i][7-i] = 10
	}

	var out bytes.Buffer
	require.NoError(t, Encode(&out, pix))
	b := out.Bytes()
	require.Len(t, b, Size)

	// Top-left cell bitmap rows: one bit walking left.
	for i := 0; i < 8; i++ {
		assert.Equal(t, byte(0x01<<i), b[bitmapOffset(0, i)], "row %d", i)
	}

	// Attribute: bright, black paper, red ink.
	assert.Equal(t, byte(0x40|0x02), b[BitmapSize])

	// An untouched single-color cell: ink == paper, empty bitmap.
	assert.Equal(t, byte(0x00), b[BitmapSize+1])
}

func TestRoundTrip(t *testing.T) {
	pix := blankScreen(0)
	// Vary ink color per cell over black paper; every cell holds at most
	// two colors so the round-trip must be exact. Bright black (8) is
	// skipped: the hardware cannot represent it distinctly.
	for cy := 0; cy < game.TileRows; cy++ {
		for cx := 0; cx < game.TileColumns; cx++ {
			ink := uint8((cx+cy)%15) + 1
			if ink == 8 {
				ink = 9
			}
			for dy := 0; dy < 8; dy++ {
				for dx := 0; dx < 8; dx++ {
					if (dx+dy)%3 == 0 {
						pix[cy*8+dy][cx*8+dx] = ink
					}
				}
			}
		}
	}

	var out bytes.Buffer
	require.NoError(t, Encode(&out, pix))

	got, err := Decode(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, pix, got)
}

func TestEncodeConstraintViolation(t *testing.T) {
	pix := blankScreen(0)
	pix[0][0] = 1
	pix[0][1] = 2
	pix[0][2] = 3

	var out bytes.Buffer
	err := Encode(&out, pix)
	require.Error(t, err)

	var ce *ConstraintError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 0, ce.CellX)
	assert.Equal(t, 0, ce.CellY)
	assert.Equal(t, 4, ce.Colors)
}

func TestEncodeMixedBrightnessCell(t *testing.T) {
	// Normal red next to bright blue: two colors, but they straddle the
	// cell-wide BRIGHT bit, so the cell cannot be encoded faithfully.
	pix := blankScreen(0)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x < 4 {
				pix[y][x] = 2
			} else {
				pix[y][x] = 9
			}
		}
	}

	var out bytes.Buffer
	err := Encode(&out, pix)
	require.Error(t, err)

	var be *BrightnessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 0, be.CellX)
	assert.Equal(t, 0, be.CellY)
}

func TestEncodeBadSize(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, Encode(&out, make(game.PixelGrid, 10)))
}

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(bytes.NewReader(make([]byte, Size)))
	require.NoError(t, err)
	assert.Equal(t, game.ScreenWidth, cfg.Width)
	assert.Equal(t, game.ScreenHeight, cfg.Height)
}

func TestDecodeShortData(t *testing.T) {
	_, err := Decode(bytes.NewReader(make([]byte, Size-1)))
	assert.Equal(t, errNotEnough, err)
}

func TestDecodeTrailingData(t *testing.T) {
	_, err := Decode(bytes.NewReader(make([]byte, Size+1)))
	assert.Equal(t, errTooMuch, err)
}
