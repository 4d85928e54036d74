package scr

import (
	"errors"
	"image"
	"io"

	"github.com/spectrebit/tapemaker/game"
	"github.com/spectrebit/tapemaker/quant"
)

var (
	errNotEnough = errors.New("scr: not enough screen data")
	errTooMuch   = errors.New("scr: too much screen data")
)

type decoder struct {
	r   io.Reader
	tmp [Size]byte
}

func (d *decoder) read() error {
	if _, err := io.ReadFull(d.r, d.tmp[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return errNotEnough
		}
		return err
	}
	if n, err := d.r.Read(d.tmp[:1]); n != 0 || (err != nil && err != io.EOF) {
		if err != nil && err != io.EOF {
			return err
		}
		return errTooMuch
	}
	return nil
}

func (d *decoder) decode() (game.PixelGrid, error) {
	if err := d.read(); err != nil {
		return nil, err
	}

	pix := make(game.PixelGrid, game.ScreenHeight)
	for y := range pix {
		pix[y] = make([]uint8, game.ScreenWidth)
	}

	for cellY := 0; cellY < game.TileRows; cellY++ {
		for cellX := 0; cellX < game.TileColumns; cellX++ {
			ink, paper := attributeColors(d.tmp[BitmapSize+attrOffset(cellX, cellY)])
			for dy := 0; dy < game.CellSize; dy++ {
				y := cellY*game.CellSize + dy
				b := d.tmp[bitmapOffset(cellX*game.CellSize, y)]
				for dx := 0; dx < game.CellSize; dx++ {
					c := paper
					if b&(0x80>>uint(dx)) != 0 {
						c = ink
					}
					pix[y][cellX*game.CellSize+dx] = c
				}
			}
		}
	}

	return pix, nil
}

// Decode reads a native screen dump from r and recovers the pixel grid of
// palette indices. It is the exact inverse of Encode.
func Decode(r io.Reader) (game.PixelGrid, error) {
	d := decoder{r: r}
	return d.decode()
}

// DecodeConfig returns the color model and dimensions of a screen dump
// without decoding the pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	d := decoder{r: r}
	if err := d.read(); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: quant.Palette,
		Width:      game.ScreenWidth,
		Height:     game.ScreenHeight,
	}, nil
}
