package z80

// External symbols the orchestrator binds once the memory layout is known.
// The engine reaches into the banks only through these.
const (
	SymSprites     = "bank.sprites"
	SymSpriteTable = "bank.spritePixelTable"
	SymBlocks      = "bank.blocks"
	SymObjects     = "bank.objects"
	SymScreens     = "bank.screens"
	SymBitmap      = "bank.bitmap"
)

// Display memory of the target hardware.
const (
	bitmapBase  = 0x4000
	bitmapBytes = 6144
	attrBase    = 0x5800
	attrBytes   = 768
	screenBytes = bitmapBytes + attrBytes

	borderPort = 0xfe
)

// Input is one logical input's keyboard source: the port to read and the
// active-low bit within it.
type Input struct {
	Port uint16
	Mask byte
}

// Config parameterises the emitted runtime.
type Config struct {
	// Inputs are the three logical controls: left, right, jump.
	Inputs [3]Input

	// JumpArc is the table of signed per-frame vertical offsets, ascent
	// then descent. Once the table is exhausted Gravity applies each
	// frame.
	JumpArc []int8

	Gravity int8

	// DebugBorder emits a border-color change on each control-flow
	// branch of the frame loop, an on-screen trace of which path ran.
	DebugBorder bool
}

// DefaultConfig is the stock control scheme: O/P for left/right, SPACE to
// jump, a symmetric 16-frame jump arc and 2 pixels of gravity. The border
// trace is on, matching the generated runtime's visible debug signal.
func DefaultConfig() Config {
	return Config{
		Inputs: [3]Input{
			{Port: 0xdffe, Mask: 0x02}, // O
			{Port: 0xdffe, Mask: 0x01}, // P
			{Port: 0x7ffe, Mask: 0x01}, // SPACE
		},
		JumpArc:     []int8{-4, -4, -3, -3, -2, -2, -1, -1, 1, 1, 2, 2, 3, 3, 4, 4},
		Gravity:     2,
		DebugBorder: true,
	}
}

type engine struct {
	asm *Assembler
	cfg Config
}

// EmitEngine assembles the runtime from the given origin. Bank references
// stay as fixups until the caller resolves them against the final layout.
func EmitEngine(origin uint16, cfg Config) *Assembler {
	e := engine{asm: New(origin), cfg: cfg}

	e.entry()
	e.clearScreen()
	e.blitBackground()
	e.renderTiles()
	e.drawTile()
	e.screenBase()
	e.frameLoop()
	e.pollInput()
	e.moveHorizontal()
	e.applyJump()
	e.collideFloor()
	e.data()

	return e.asm
}

// border emits the debug border-color side effect for one branch.
func (e *engine) border(color byte) {
	if !e.cfg.DebugBorder {
		return
	}
	e.asm.LdAImm(color)
	e.asm.OutImmA(borderPort)
}

func (e *engine) entry() {
	a := e.asm
	a.Di()
	a.LdSP(Abs(0xfff0))
	a.Call(Sym("clearScreen"))
	a.Call(Sym("blitBackground"))
	a.Call(Sym("renderTiles"))
	a.Ei()
	a.Jp(Sym("frameLoop"))
}

func (e *engine) clearScreen() {
	a := e.asm
	a.Label("clearScreen")
	a.LdHL(Abs(bitmapBase))
	a.LdDE(Abs(bitmapBase + 1))
	a.LdBC(Abs(bitmapBytes - 1))
	a.LdHLPImm(0x00)
	a.Ldir()
	a.LdHL(Abs(attrBase))
	a.LdDE(Abs(attrBase + 1))
	a.LdBC(Abs(attrBytes - 1))
	a.LdHLPImm(0x38) // black ink on white paper
	a.Ldir()
	a.Ret()
}

func (e *engine) blitBackground() {
	a := e.asm
	a.Label("blitBackground")
	a.LdHL(Sym(SymBitmap))
	a.LdDE(Abs(bitmapBase))
	a.LdBC(Abs(screenBytes))
	a.Ldir()
	a.Ret()
}

// renderTiles walks the current screen's flat 32x24 tile array and draws
// each cell through the block and sprite banks.
func (e *engine) renderTiles() {
	a := e.asm
	a.Label("renderTiles")
	a.Call(Sym("screenBase"))
	a.XorA()
	a.LdMemA(Sym("cellY"))
	a.Label("renderRow")
	a.XorA()
	a.LdMemA(Sym("cellX"))
	a.Label("renderCol")
	a.LdAHLP()
	a.PushHL()
	a.Call(Sym("drawTile"))
	a.PopHL()
	a.IncHL()
	a.LdAMem(Sym("cellX"))
	a.IncA()
	a.LdMemA(Sym("cellX"))
	a.CpImm(32)
	a.JrC("renderCol")
	a.LdAMem(Sym("cellY"))
	a.IncA()
	a.LdMemA(Sym("cellY"))
	a.CpImm(24)
	a.JrC("renderRow")
	a.Ret()
}

// drawTile draws block index A at (cellX, cellY): block record gives the
// sprite index, the sprite pixel table gives the bank-relative pixel
// offset, then eight bitmap rows are copied 256 bytes apart.
func (e *engine) drawTile() {
	a := e.asm
	a.Label("drawTile")
	a.LdCA()

	// Destination bitmap address: 0x40xx with the third-of-screen bits
	// from cellY's high bits and the row-within-third bits shifted into
	// the low byte.
	a.LdAMem(Sym("cellY"))
	a.AndImm(0x18)
	a.OrImm(0x40)
	a.LdDA()
	a.LdAMem(Sym("cellY"))
	a.AndImm(0x07)
	a.AddAA()
	a.AddAA()
	a.AddAA()
	a.AddAA()
	a.AddAA()
	a.LdEA()
	a.LdAMem(Sym("cellX"))
	a.OrE()
	a.LdEA()

	// Block record: sprite index is its first byte.
	a.LdLC()
	a.LdHImm(0x00)
	a.AddHLHL()
	a.PushDE()
	a.LdDE(Sym(SymBlocks).Plus(1))
	a.AddHLDE()
	a.LdEHLP()
	a.IncHL()
	a.LdDHLP()
	a.LdHL(Sym(SymBlocks))
	a.AddHLDE()
	a.LdAHLP()
	a.PopDE()

	// Sprite pixel rows, bank-relative.
	a.LdLA()
	a.LdHImm(0x00)
	a.AddHLHL()
	a.PushDE()
	a.LdDE(Sym(SymSpriteTable))
	a.AddHLDE()
	a.LdEHLP()
	a.IncHL()
	a.LdDHLP()
	a.LdHL(Sym(SymSprites))
	a.AddHLDE()
	a.PopDE()

	a.LdBImm(8)
	a.Label("drawTileRow")
	a.LdAHLP()
	a.LdDEPA()
	a.IncHL()
	a.IncD()
	a.Djnz("drawTileRow")
	a.Ret()
}

// screenBase leaves HL pointing at the current screen's tile array.
func (e *engine) screenBase() {
	a := e.asm
	a.Label("screenBase")
	a.LdAMem(Sym("curScreen"))
	a.AddAA()
	a.LdEA()
	a.LdDImm(0x00)
	a.LdHL(Sym(SymScreens).Plus(1))
	a.AddHLDE()
	a.LdEHLP()
	a.IncHL()
	a.LdDHLP()
	a.LdHL(Sym(SymScreens))
	a.AddHLDE()
	a.Ret()
}

func (e *engine) frameLoop() {
	a := e.asm
	a.Label("frameLoop")
	a.Halt()
	e.border(1)
	a.Call(Sym("pollInput"))
	a.Call(Sym("moveHorizontal"))
	a.Call(Sym("applyJump"))
	a.Call(Sym("collideFloor"))
	a.Jp(Sym("frameLoop"))
}

// pollInput reads the three logical inputs through the port+bit table into
// the inputState bitset (bit 0 left, bit 1 right, bit 2 jump). Keyboard
// lines read active low.
func (e *engine) pollInput() {
	a := e.asm
	a.Label("pollInput")
	a.XorA()
	a.LdMemA(Sym("inputState"))
	a.LdHL(Sym("inputTable"))
	a.LdEImm(0x01)
	a.LdBImm(3)
	a.Label("pollNext")
	a.LdCHLP()
	a.IncHL()
	a.LdAHLP()
	a.IncHL()
	a.PushBC()
	a.LdBA()
	a.InAC()
	a.PopBC()
	a.AndHLP()
	a.JrNZ("pollSkip")
	a.LdAMem(Sym("inputState"))
	a.OrE()
	a.LdMemA(Sym("inputState"))
	a.Label("pollSkip")
	a.IncHL()
	a.SlaE()
	a.Djnz("pollNext")
	a.Ret()
}

// moveHorizontal updates the idle/left/right velocity state and the player
// x position. Positions are 8-bit so movement wraps at the screen edges.
func (e *engine) moveHorizontal() {
	a := e.asm
	a.Label("moveHorizontal")
	a.LdAMem(Sym("inputState"))
	a.AndImm(0x01)
	a.JrZ("moveTryRight")
	e.border(2)
	a.LdAImm(1)
	a.LdMemA(Sym("hvel"))
	a.LdAMem(Sym("playerX"))
	a.DecA()
	a.LdMemA(Sym("playerX"))
	a.Ret()
	a.Label("moveTryRight")
	a.LdAMem(Sym("inputState"))
	a.AndImm(0x02)
	a.JrZ("moveIdle")
	e.border(3)
	a.LdAImm(2)
	a.LdMemA(Sym("hvel"))
	a.LdAMem(Sym("playerX"))
	a.IncA()
	a.LdMemA(Sym("playerX"))
	a.Ret()
	a.Label("moveIdle")
	a.XorA()
	a.LdMemA(Sym("hvel"))
	a.Ret()
}

// applyJump starts a jump when grounded, then advances the table-driven
// arc frame by frame, falling back to constant gravity once the table is
// exhausted.
func (e *engine) applyJump() {
	a := e.asm
	a.Label("applyJump")
	a.LdAMem(Sym("grounded"))
	a.AndA()
	a.JrZ("jumpAir")
	a.LdAMem(Sym("inputState"))
	a.AndImm(0x04)
	a.RetZ()
	a.XorA()
	a.LdMemA(Sym("jumpFrame"))
	a.LdMemA(Sym("grounded"))
	a.Ret()
	a.Label("jumpAir")
	a.LdHL(Sym("jumpTable"))
	a.LdAMem(Sym("jumpFrame"))
	a.CpHLP()
	a.JrNC("jumpGravity")
	a.IncHL()
	a.LdEA()
	a.LdDImm(0x00)
	a.AddHLDE()
	a.LdAMem(Sym("playerY"))
	a.AddAHLP()
	a.LdMemA(Sym("playerY"))
	a.LdAMem(Sym("jumpFrame"))
	a.IncA()
	a.LdMemA(Sym("jumpFrame"))
	a.Ret()
	a.Label("jumpGravity")
	e.border(4)
	a.LdAMem(Sym("playerY"))
	a.AddAImm(byte(e.cfg.Gravity))
	a.LdMemA(Sym("playerY"))
	a.Ret()
}

// collideFloor looks up the tile-grid cell beneath the player's feet and
// lands on solid or conveyor blocks, applying a conveyor's packed
// push-speed and direction on landing.
func (e *engine) collideFloor() {
	a := e.asm
	a.Label("collideFloor")
	a.LdAMem(Sym("playerY"))
	a.AddAImm(16)
	a.Rrca()
	a.Rrca()
	a.Rrca()
	a.AndImm(0x1f)
	a.LdLA()
	a.LdHImm(0x00)
	a.AddHLHL()
	a.AddHLHL()
	a.AddHLHL()
	a.AddHLHL()
	a.AddHLHL()
	a.LdAMem(Sym("playerX"))
	a.Rrca()
	a.Rrca()
	a.Rrca()
	a.AndImm(0x1f)
	a.LdEA()
	a.LdDImm(0x00)
	a.AddHLDE()
	a.ExDEHL()
	// screenBase clobbers DE, which holds the cell offset.
	a.PushDE()
	a.Call(Sym("screenBase"))
	a.PopDE()
	a.AddHLDE()
	a.LdAHLP()

	// Tile to block record to type code.
	a.LdLA()
	a.LdHImm(0x00)
	a.AddHLHL()
	a.LdDE(Sym(SymBlocks).Plus(1))
	a.AddHLDE()
	a.LdEHLP()
	a.IncHL()
	a.LdDHLP()
	a.LdHL(Sym(SymBlocks))
	a.AddHLDE()
	a.IncHL()
	a.LdAHLP()
	a.CpImm(1) // solid
	a.JrZ("land")
	a.CpImm(2) // conveyor
	a.JrZ("landConveyor")
	a.XorA()
	a.LdMemA(Sym("grounded"))
	a.Ret()

	a.Label("land")
	e.border(5)
	a.LdAImm(1)
	a.LdMemA(Sym("grounded"))
	a.Ret()

	// Conveyor records carry [speed, direction] right after the flag
	// byte; speed is quarter-pixel fixed point.
	a.Label("landConveyor")
	e.border(6)
	a.LdAImm(1)
	a.LdMemA(Sym("grounded"))
	a.IncHL()
	a.IncHL()
	a.LdCHLP()
	a.SrlC()
	a.SrlC()
	a.IncHL()
	a.LdAHLP()
	a.AndA()
	a.LdAMem(Sym("playerX"))
	a.JrZ("pushLeft")
	a.AddAC()
	a.Jr("pushStore")
	a.Label("pushLeft")
	a.SubC()
	a.Label("pushStore")
	a.LdMemA(Sym("playerX"))
	a.Ret()
}

// data emits the input table, the jump arc and the engine variables.
func (e *engine) data() {
	a := e.asm

	a.Label("inputTable")
	for _, in := range e.cfg.Inputs {
		a.DefBytes(byte(in.Port), byte(in.Port>>8), in.Mask)
	}

	a.Label("jumpTable")
	a.DefByte(byte(len(e.cfg.JumpArc)))
	for _, dy := range e.cfg.JumpArc {
		a.DefByte(byte(dy))
	}

	for _, v := range []struct {
		name    string
		initial byte
	}{
		{"playerX", 128},
		{"playerY", 96},
		{"hvel", 0},
		{"grounded", 0},
		{"jumpFrame", 0},
		{"inputState", 0},
		{"curScreen", 0},
		{"cellX", 0},
		{"cellY", 0},
	} {
		a.Label(v.name)
		a.DefByte(v.initial)
	}
}
