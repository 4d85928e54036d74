package scr

import (
	"errors"
	"io"

	"github.com/spectrebit/tapemaker/game"
)

var errBadSize = errors.New("scr: pixel grid is not 256x192")

type encoder struct {
	w   io.Writer
	out [Size]byte
}

// cellColors lists the distinct palette colors of one cell in first-seen
// order, scanning row major from the cell's top-left pixel.
func cellColors(pix game.PixelGrid, cellX, cellY int) []uint8 {
	var colors []uint8
	for y := cellY * game.CellSize; y < (cellY+1)*game.CellSize; y++ {
	pixels:
		for x := cellX * game.CellSize; x < (cellX+1)*game.CellSize; x++ {
			c := pix[y][x]
			for _, seen := range colors {
				if seen == c {
					continue pixels
				}
			}
			colors = append(colors, c)
		}
	}
	return colors
}

func (e *encoder) encodeCell(pix game.PixelGrid, cellX, cellY int) error {
	colors := cellColors(pix, cellX, cellY)
	if len(colors) > 2 {
		return &ConstraintError{CellX: cellX, CellY: cellY, Colors: len(colors)}
	}
	if len(colors) == 2 && mixedBrightness(colors[0], colors[1]) {
		return &BrightnessError{CellX: cellX, CellY: cellY}
	}

	// The top-left pixel's color becomes paper; the other color, if any,
	// becomes ink. A single-color cell encodes with ink == paper and an
	// all-zero bitmap.
	paper := colors[0]
	ink := paper
	if len(colors) == 2 {
		ink = colors[1]
	}

	e.out[BitmapSize+attrOffset(cellX, cellY)] = attribute(ink, paper)

	for dy := 0; dy < game.CellSize; dy++ {
		y := cellY*game.CellSize + dy
		var b byte
		for dx := 0; dx < game.CellSize; dx++ {
			x := cellX*game.CellSize + dx
			if len(colors) == 2 && pix[y][x] == ink {
				b |= 0x80 >> uint(dx)
			}
		}
		e.out[bitmapOffset(cellX*game.CellSize, y)] = b
	}
	return nil
}

func (e *encoder) encode(pix game.PixelGrid) error {
	for cellY := 0; cellY < game.TileRows; cellY++ {
		for cellX := 0; cellX < game.TileColumns; cellX++ {
			if err := e.encodeCell(pix, cellX, cellY); err != nil {
				return err
			}
		}
	}
	_, err := e.w.Write(e.out[:])
	return err
}

// Encode writes pix to w in the native screen format. It fails with a
// ConstraintError if any 8x8 cell holds more than two distinct colors;
// reducing the grid first is the caller's job.
func Encode(w io.Writer, pix game.PixelGrid) error {
	if pix.Width() != game.ScreenWidth || pix.Height() != game.ScreenHeight {
		return errBadSize
	}
	e := encoder{w: w}
	return e.encode(pix)
}
