package tapemaker

import (
	"bytes"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spectrebit/tapemaker/bank"
	"github.com/spectrebit/tapemaker/game"
	"github.com/spectrebit/tapemaker/quant"
	"github.com/spectrebit/tapemaker/scr"
	"github.com/spectrebit/tapemaker/tap"
	"github.com/spectrebit/tapemaker/z80"
)

// Origin is the load address of the engine code; the data banks and the
// background bitmap follow it contiguously.
const Origin = 0x8000

var (
	errNoPixelData   = errors.New("tapemaker: screen has no pixel data")
	errImageTooLarge = errors.New("tapemaker: image does not fit in memory")
)

// banks holds one export's packed tables.
type banks struct {
	sprites []byte
	blocks  []byte
	objects []byte
	screens []byte
	flow    []byte
	levels  []byte
}

func packBanks(p *game.Project, ix *game.Index) banks {
	return banks{
		sprites: bank.PackSprites(p.Sprites),
		blocks:  bank.PackBlocks(p.Blocks, ix),
		objects: bank.PackObjects(p.Objects, ix),
		screens: bank.PackScreens(p.Screens, p.Objects, ix),
		flow:    bank.PackFlow(p.Flow, ix),
		levels:  bank.PackLevels(p.Levels, ix),
	}
}

// loadingScreen picks the project's first raw bitmap screen, or a blank
// grid when there is none.
func loadingScreen(p *game.Project) game.PixelGrid {
	for i := range p.Screens {
		if p.Screens[i].IsBitmap() {
			return p.Screens[i].Pixels
		}
	}
	blank := make(game.PixelGrid, game.ScreenHeight)
	for y := range blank {
		blank[y] = make([]uint8, game.ScreenWidth)
	}
	return blank
}

// artifact is one export's assembled output before tape framing.
type artifact struct {
	code    []byte // engine, banks and background bitmap, loaded at Origin
	screen  []byte // native loading screen
	listing []string
}

// assemble runs the full pipeline up to tape framing: pack banks, encode
// the loading screen, emit the engine, decide the memory layout and patch
// every recorded fixup against it.
//
// This is the batch flow-export path: cells still holding more than two
// colors are silently approximated with their first two observed colors
// rather than stopping the export.
func (e *Exporter) assemble(p *game.Project) (*artifact, error) {
	ix := game.BuildIndex(p)
	b := packBanks(p, ix)

	var screen bytes.Buffer
	if err := scr.Encode(&screen, quant.ClampCells(loadingScreen(p))); err != nil {
		return nil, err
	}

	asm := z80.EmitEngine(Origin, z80.DefaultConfig())

	total := Origin + asm.Len() + len(b.sprites) + len(b.blocks) +
		len(b.objects) + len(b.screens) + len(b.flow) + len(b.levels) +
		screen.Len()
	if total > 0x10000 {
		return nil, fmt.Errorf("%w: %d bytes past the address space",
			errImageTooLarge, total-0x10000)
	}

	spriteAddr := Origin + uint16(asm.Len())
	blockAddr := spriteAddr + uint16(len(b.sprites))
	objectAddr := blockAddr + uint16(len(b.blocks))
	screenAddr := objectAddr + uint16(len(b.objects))
	bitmapAddr := screenAddr + uint16(len(b.screens)+len(b.flow)+len(b.levels))

	if err := asm.Resolve(map[string]uint16{
		z80.SymSprites: spriteAddr,
		// The pixel pointer table is the second of the sprite bank's
		// three parallel tables.
		z80.SymSpriteTable: spriteAddr + 1 + 2*uint16(len(p.Sprites)),
		z80.SymBlocks:      blockAddr,
		z80.SymObjects:     objectAddr,
		z80.SymScreens:     screenAddr,
		z80.SymBitmap:      bitmapAddr,
	}); err != nil {
		return nil, err
	}

	for _, miss := range ix.Misses() {
		e.logger.Warn("dangling reference, substituting index 0",
			zap.String("ref", miss),
			zap.String("project", p.Name))
	}

	var code []byte
	code = append(code, asm.Bytes()...)
	code = append(code, b.sprites...)
	code = append(code, b.blocks...)
	code = append(code, b.objects...)
	code = append(code, b.screens...)
	code = append(code, b.flow...)
	code = append(code, b.levels...)
	code = append(code, screen.Bytes()...)

	return &artifact{
		code:    code,
		screen:  screen.Bytes(),
		listing: asm.Listing(),
	}, nil
}

// ExportTape runs the batch flow export and frames the result as a bootable
// tape image: BASIC loader, loading screen, then the combined engine and
// bank image.
func (e *Exporter) ExportTape(p *game.Project) ([]byte, error) {
	a, err := e.assemble(p)
	if err != nil {
		return nil, err
	}

	loader := tap.Loader(Origin-1, Origin)

	var out bytes.Buffer
	if err := tap.WriteHeader(&out, tap.Header{
		Type:   tap.TypeProgram,
		Name:   p.Name,
		Length: uint16(len(loader)),
		Param1: tap.AutostartLine,
		Param2: uint16(len(loader)),
	}); err != nil {
		return nil, err
	}
	if err := tap.WriteData(&out, loader); err != nil {
		return nil, err
	}

	if err := tap.WriteHeader(&out, tap.Header{
		Type:   tap.TypeCode,
		Name:   "screen",
		Length: uint16(len(a.screen)),
		Param1: 0x4000,
		Param2: 0x8000,
	}); err != nil {
		return nil, err
	}
	if err := tap.WriteData(&out, a.screen); err != nil {
		return nil, err
	}

	if err := tap.WriteHeader(&out, tap.Header{
		Type:   tap.TypeCode,
		Name:   p.Name,
		Length: uint16(len(a.code)),
		Param1: Origin,
		Param2: 0x8000,
	}); err != nil {
		return nil, err
	}
	if err := tap.WriteData(&out, a.code); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// ExportScreen is the interactive single-screen export. Unlike the batch
// path it hard-stops on a constraint violation: a cell with more than two
// colors or a screen without pixel data is reported to the caller instead
// of being approximated.
func (e *Exporter) ExportScreen(s *game.Screen) ([]byte, error) {
	if !s.IsBitmap() {
		return nil, errNoPixelData
	}

	var out bytes.Buffer
	if err := scr.Encode(&out, s.Pixels); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// ExportBanks returns the raw concatenated bank image without engine code
// or tape framing, in bank layout order.
func (e *Exporter) ExportBanks(p *game.Project) []byte {
	ix := game.BuildIndex(p)
	b := packBanks(p, ix)

	var out []byte
	out = append(out, b.sprites...)
	out = append(out, b.blocks...)
	out = append(out, b.objects...)
	out = append(out, b.screens...)
	out = append(out, b.flow...)
	out = append(out, b.levels...)
	return out
}

// Listing returns the mnemonic assembly listing mirroring the engine bytes
// of an export of p.
func (e *Exporter) Listing(p *game.Project) ([]string, error) {
	a, err := e.assemble(p)
	if err != nil {
		return nil, err
	}
	return a.listing, nil
}
