package quant

import "github.com/spectrebit/tapemaker/game"

// cellCount tracks one color's frequency within a cell, in first-seen
// order so tie-breaking is deterministic.
type cellCount struct {
	color uint8
	count int
}

func countCell(pix game.PixelGrid, cellX, cellY int) []cellCount {
	var counts []cellCount
	for y := cellY * game.CellSize; y < (cellY+1)*game.CellSize; y++ {
	pixels:
		for x := cellX * game.CellSize; x < (cellX+1)*game.CellSize; x++ {
			c := pix[y][x]
			for i := range counts {
				if counts[i].color == c {
					counts[i].count++
					continue pixels
				}
			}
			counts = append(counts, cellCount{color: c, count: 1})
		}
	}
	return counts
}

// top returns the index of the most frequent entry, skipping any index in
// taken. Ties keep the earlier-seen color.
func top(counts []cellCount, taken int) int {
	best := -1
	for i := range counts {
		if i == taken {
			continue
		}
		if best < 0 || counts[i].count > counts[best].count {
			best = i
		}
	}
	return best
}

func remapCell(pix game.PixelGrid, cellX, cellY int, keep [2]uint8, fallback uint8) {
	for y := cellY * game.CellSize; y < (cellY+1)*game.CellSize; y++ {
		for x := cellX * game.CellSize; x < (cellX+1)*game.CellSize; x++ {
			if c := pix[y][x]; c != keep[0] && c != keep[1] {
				pix[y][x] = fallback
			}
		}
	}
}

func clone(pix game.PixelGrid) game.PixelGrid {
	out := make(game.PixelGrid, len(pix))
	for y := range pix {
		out[y] = append([]uint8(nil), pix[y]...)
	}
	return out
}

// normalizeBrightness forces every cell into one brightness class. BRIGHT
// is cell-wide on the hardware, so a cell cannot mix a normal color with a
// bright one: strays flip to their twin in the class of the cell's most
// frequent non-black color (ties keep the first seen). Black belongs to
// both classes and is left alone.
func normalizeBrightness(pix game.PixelGrid) {
	for cellY := 0; cellY*game.CellSize < pix.Height(); cellY++ {
		for cellX := 0; cellX*game.CellSize < pix.Width(); cellX++ {
			counts := countCell(pix, cellX, cellY)

			lead := -1
			for i := range counts {
				if counts[i].color&7 == 0 {
					continue
				}
				if lead < 0 || counts[i].count > counts[lead].count {
					lead = i
				}
			}
			if lead < 0 {
				continue
			}
			class := counts[lead].color & 8

			for y := cellY * game.CellSize; y < (cellY+1)*game.CellSize; y++ {
				for x := cellX * game.CellSize; x < (cellX+1)*game.CellSize; x++ {
					if c := pix[y][x]; c&7 != 0 && c&8 != class {
						pix[y][x] = c ^ 8
					}
				}
			}
		}
	}
}

// ReduceCells returns a copy of pix where every 8x8 cell holds at most two
// colors of one brightness class: the cell's two most frequent survive
// (ties keep the first seen), every other pixel is remapped to the single
// most frequent survivor, and brightness strays flip class.
func ReduceCells(pix game.PixelGrid) game.PixelGrid {
	out := clone(pix)
	for cellY := 0; cellY*game.CellSize < out.Height(); cellY++ {
		for cellX := 0; cellX*game.CellSize < out.Width(); cellX++ {
			counts := countCell(out, cellX, cellY)
			if len(counts) <= 2 {
				continue
			}
			first := top(counts, -1)
			second := top(counts, first)
			keep := [2]uint8{counts[first].color, counts[second].color}
			remapCell(out, cellX, cellY, keep, keep[0])
		}
	}
	normalizeBrightness(out)
	return out
}

// ClampCells returns a copy of pix where every cell is forced to its first
// two observed colors, remapping the rest to the first, with brightness
// strays flipped class afterwards. This is the silent approximation the
// batch flow export applies in place of a hard stop; it is deliberately
// cruder than ReduceCells.
func ClampCells(pix game.PixelGrid) game.PixelGrid {
	out := clone(pix)
	for cellY := 0; cellY*game.CellSize < out.Height(); cellY++ {
		for cellX := 0; cellX*game.CellSize < out.Width(); cellX++ {
			counts := countCell(out, cellX, cellY)
			if len(counts) <= 2 {
				continue
			}
			keep := [2]uint8{counts[0].color, counts[1].color}
			remapCell(out, cellX, cellY, keep, keep[0])
		}
	}
	normalizeBrightness(out)
	return out
}
