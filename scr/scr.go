/*
Package scr implements the hardware screen-memory format: a 6912 byte dump
of 6144 bitmap bytes followed by 768 attribute bytes.

The display is 256 by 192 pixels in 8x8 attribute cells. Each cell carries
one attribute byte (FLASH bit 7, BRIGHT bit 6, PAPER bits 5-3, INK bits 2-0)
and eight bitmap bytes; a bitmap bit is set iff that pixel shows the cell's
ink color. Bitmap bytes are not stored linearly: the byte for pixel row y,
column x lives at offset ((y&0xC0)<<5) | ((y&0x07)<<8) | ((y&0x38)<<2) | x/8
with bit 7 leftmost.

Encoding requires every cell to hold at most two distinct palette colors;
Decode is the exact inverse for any screen satisfying that invariant.
*/
package scr

import (
	"fmt"

	"github.com/spectrebit/tapemaker/game"
)

const (
	// Size is the total byte length of a screen dump.
	Size = BitmapSize + AttributeSize

	// BitmapSize is the pixel bitmap portion.
	BitmapSize = 6144

	// AttributeSize is the attribute portion, one byte per 8x8 cell.
	AttributeSize = 768
)

const (
	attrFlash  = 0x80
	attrBright = 0x40
)

// ConstraintError reports a cell that still holds more than two distinct
// colors at encode time.
type ConstraintError struct {
	CellX, CellY int
	Colors       int
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("scr: cell (%d,%d) has %d colors, limit is 2", e.CellX, e.CellY, e.Colors)
}

// BrightnessError reports a cell mixing normal and bright colors at encode
// time. BRIGHT is cell-wide, so encoding such a cell would shift one color
// into the other brightness class.
type BrightnessError struct {
	CellX, CellY int
}

func (e *BrightnessError) Error() string {
	return fmt.Sprintf("scr: cell (%d,%d) mixes normal and bright colors", e.CellX, e.CellY)
}

// mixedBrightness reports whether two palette indices sit in different
// brightness classes. Black and bright black belong to both.
func mixedBrightness(a, b uint8) bool {
	return a&7 != 0 && b&7 != 0 && (a^b)&8 != 0
}

// bitmapOffset returns the byte offset of pixel row y, column x within the
// bitmap portion.
func bitmapOffset(x, y int) int {
	return (y&0xC0)<<5 | (y&0x07)<<8 | (y&0x38)<<2 | x>>3
}

// attrOffset returns the byte offset of the cell attribute within the
// attribute portion.
func attrOffset(cellX, cellY int) int {
	return cellY*game.TileColumns + cellX
}

// attribute packs ink and paper palette indices into one attribute byte.
// BRIGHT is set when either color is from the bright half of the palette;
// bright black is indistinguishable from black on this hardware.
func attribute(ink, paper uint8) byte {
	a := byte(paper&7)<<3 | byte(ink&7)
	if ink >= 8 || paper >= 8 {
		a |= attrBright
	}
	return a
}

// attributeColors recovers the ink and paper palette indices from an
// attribute byte. Black stays black regardless of BRIGHT.
func attributeColors(a byte) (ink, paper uint8) {
	ink = uint8(a & 7)
	paper = uint8(a >> 3 & 7)
	if a&attrBright != 0 {
		if ink != 0 {
			ink += 8
		}
		if paper != 0 {
			paper += 8
		}
	}
	return ink, paper
}
