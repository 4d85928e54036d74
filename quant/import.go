package quant

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
	xdraw "golang.org/x/image/draw"

	"github.com/spectrebit/tapemaker/game"
)

// Import converts an arbitrary image into a screen-sized, cell-reduced
// grid of palette indices: scale to 256x192, median-cut down to 16 colors
// when the source uses more, then nearest-palette mapping and per-cell
// reduction.
func Import(m image.Image) game.PixelGrid {
	b := m.Bounds()
	if b.Dx() != game.ScreenWidth || b.Dy() != game.ScreenHeight {
		scaled := image.NewRGBA(image.Rect(0, 0, game.ScreenWidth, game.ScreenHeight))
		xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), m, b, xdraw.Src, nil)
		m = scaled
		b = m.Bounds()
	}

	pm, _ := m.(*image.Paletted)
	if pm == nil || len(pm.Palette) > len(Palette) {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, len(Palette)), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	return ReduceCells(MapImage(pm))
}
