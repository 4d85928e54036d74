package quant

import "github.com/spectrebit/tapemaker/game"

// MonoMode selects how a cell's two colors are split into paper and ink for
// monochrome output.
type MonoMode int

const (
	// ByLuminance makes the lighter color paper (darker with Invert).
	ByLuminance MonoMode = iota
	// ByArea makes the color covering more pixels paper (fewer with
	// Invert).
	ByArea
)

// MonoPolicy configures the monochrome reduction pass.
type MonoPolicy struct {
	Mode   MonoMode
	Invert bool

	// Neighbor reuses the left or above cell's paper color when it also
	// occurs in the current cell, falling back to Mode otherwise. It
	// avoids paper/ink flips across cell boundaries in flat areas.
	Neighbor bool
}

const (
	monoPaper = 0 // black
	monoInk   = 7 // white
)

// pickPaper applies the primary policy to a cell's color counts and returns
// the index into counts of the paper color.
func (p MonoPolicy) pickPaper(counts []cellCount) int {
	if len(counts) == 1 {
		return 0
	}

	var a, b int
	switch p.Mode {
	case ByArea:
		a, b = counts[0].count, counts[1].count
	default:
		a, b = luminance(counts[0].color), luminance(counts[1].color)
	}

	winner := 0
	if b > a {
		winner = 1
	}
	if p.Invert {
		winner = 1 - winner
	}
	return winner
}

// Mono reduces an already cell-reduced grid to black paper and white ink.
// The returned grid holds only palette indices 0 and 7.
func Mono(pix game.PixelGrid, policy MonoPolicy) game.PixelGrid {
	cellsX := pix.Width() / game.CellSize
	cellsY := pix.Height() / game.CellSize

	out := clone(pix)
	papers := make([][]uint8, cellsY)
	for i := range papers {
		papers[i] = make([]uint8, cellsX)
	}

	for cellY := 0; cellY < cellsY; cellY++ {
		for cellX := 0; cellX < cellsX; cellX++ {
			counts := countCell(pix, cellX, cellY)

			paper := counts[pickCellPaper(policy, counts, papers, cellX, cellY)].color
			papers[cellY][cellX] = paper

			for y := cellY * game.CellSize; y < (cellY+1)*game.CellSize; y++ {
				for x := cellX * game.CellSize; x < (cellX+1)*game.CellSize; x++ {
					if pix[y][x] == paper {
						out[y][x] = monoPaper
					} else {
						out[y][x] = monoInk
					}
				}
			}
		}
	}
	return out
}

// pickCellPaper resolves the paper pick for one cell, consulting
// neighbours first when the policy asks for it.
func pickCellPaper(policy MonoPolicy, counts []cellCount, papers [][]uint8, cellX, cellY int) int {
	if policy.Neighbor && len(counts) > 1 {
		for _, n := range [][2]int{{cellX - 1, cellY}, {cellX, cellY - 1}} {
			if n[0] < 0 || n[1] < 0 {
				continue
			}
			neighbour := papers[n[1]][n[0]]
			for i := range counts {
				if counts[i].color == neighbour {
					return i
				}
			}
		}
	}
	return policy.pickPaper(counts)
}
