/*
Package quant maps arbitrary colors onto the 16 entry hardware palette and
enforces the display's two-colors-per-8x8-cell constraint.

Quantization is staged: nearest-palette mapping first, then per-cell
reduction keeping each cell's two most frequent colors, then an optional
monochrome pass reducing the survivors to a paper/ink pair under a
selectable policy.
*/
package quant

import (
	"image"
	"image/color"

	"github.com/spectrebit/tapemaker/game"
)

// Palette is the hardware palette: eight normal colors then their bright
// counterparts. Bright black duplicates black.
var Palette = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xff}, // black
	color.RGBA{0x00, 0x00, 0xd7, 0xff}, // blue
	color.RGBA{0xd7, 0x00, 0x00, 0xff}, // red
	color.RGBA{0xd7, 0x00, 0xd7, 0xff}, // magenta
	color.RGBA{0x00, 0xd7, 0x00, 0xff}, // green
	color.RGBA{0x00, 0xd7, 0xd7, 0xff}, // cyan
	color.RGBA{0xd7, 0xd7, 0x00, 0xff}, // yellow
	color.RGBA{0xd7, 0xd7, 0xd7, 0xff}, // white
	color.RGBA{0x00, 0x00, 0x00, 0xff}, // bright black
	color.RGBA{0x00, 0x00, 0xff, 0xff}, // bright blue
	color.RGBA{0xff, 0x00, 0x00, 0xff}, // bright red
	color.RGBA{0xff, 0x00, 0xff, 0xff}, // bright magenta
	color.RGBA{0x00, 0xff, 0x00, 0xff}, // bright green
	color.RGBA{0x00, 0xff, 0xff, 0xff}, // bright cyan
	color.RGBA{0xff, 0xff, 0x00, 0xff}, // bright yellow
	color.RGBA{0xff, 0xff, 0xff, 0xff}, // bright white
}

func sqDiff(x, y uint32) uint32 {
	d := x - y
	return (d * d) >> 2
}

// NearestIndex returns the palette index closest to c by squared Euclidean
// distance. Ties resolve to the earliest palette entry.
func NearestIndex(c color.Color) uint8 {
	r, g, b, _ := c.RGBA()

	best := uint32(1<<32 - 1)
	var bestIndex uint8
	for i, p := range Palette {
		pr, pg, pb, _ := p.RGBA()
		if sum := sqDiff(r, pr) + sqDiff(g, pg) + sqDiff(b, pb); sum < best {
			best = sum
			bestIndex = uint8(i)
		}
	}
	return bestIndex
}

// MapImage converts any image into a grid of palette indices by nearest
// color. The grid takes the image's dimensions.
func MapImage(m image.Image) game.PixelGrid {
	b := m.Bounds()
	pix := make(game.PixelGrid, b.Dy())
	for y := range pix {
		pix[y] = make([]uint8, b.Dx())
		for x := range pix[y] {
			pix[y][x] = NearestIndex(m.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return pix
}

// luminance is the Rec. 601 weighting, scaled by 1000 to stay integral.
func luminance(i uint8) int {
	c := Palette[i].(color.RGBA)
	return 299*int(c.R) + 587*int(c.G) + 114*int(c.B)
}
