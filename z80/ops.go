package z80

import "fmt"

// The instruction surface is deliberately only as wide as the emitted
// runtime needs; this is not a general-purpose assembler.

func (a *Assembler) Di()   { a.emit("di", 0xf3) }
func (a *Assembler) Ei()   { a.emit("ei", 0xfb) }
func (a *Assembler) Halt() { a.emit("halt", 0x76) }
func (a *Assembler) Ret()  { a.emit("ret", 0xc9) }
func (a *Assembler) RetZ() { a.emit("ret z", 0xc8) }
func (a *Assembler) RetNZ() {
	a.emit("ret nz", 0xc0)
}

func (a *Assembler) LdAImm(n byte) { a.emit(fmt.Sprintf("ld a,0x%02x", n), 0x3e, n) }
func (a *Assembler) LdBImm(n byte) { a.emit(fmt.Sprintf("ld b,0x%02x", n), 0x06, n) }
func (a *Assembler) LdCImm(n byte) { a.emit(fmt.Sprintf("ld c,0x%02x", n), 0x0e, n) }
func (a *Assembler) LdDImm(n byte) { a.emit(fmt.Sprintf("ld d,0x%02x", n), 0x16, n) }
func (a *Assembler) LdEImm(n byte) { a.emit(fmt.Sprintf("ld e,0x%02x", n), 0x1e, n) }
func (a *Assembler) LdHImm(n byte) { a.emit(fmt.Sprintf("ld h,0x%02x", n), 0x26, n) }

func (a *Assembler) LdBC(op Operand) { a.emitAddr("ld bc,"+op.String(), op, 0x01) }
func (a *Assembler) LdDE(op Operand) { a.emitAddr("ld de,"+op.String(), op, 0x11) }
func (a *Assembler) LdHL(op Operand) { a.emitAddr("ld hl,"+op.String(), op, 0x21) }
func (a *Assembler) LdSP(op Operand) { a.emitAddr("ld sp,"+op.String(), op, 0x31) }

func (a *Assembler) LdAMem(op Operand) { a.emitAddr("ld a,("+op.String()+")", op, 0x3a) }
func (a *Assembler) LdMemA(op Operand) { a.emitAddr("ld ("+op.String()+"),a", op, 0x32) }

func (a *Assembler) LdAB()  { a.emit("ld a,b", 0x78) }
func (a *Assembler) LdAC()  { a.emit("ld a,c", 0x79) }
func (a *Assembler) LdBA()  { a.emit("ld b,a", 0x47) }
func (a *Assembler) LdCA()  { a.emit("ld c,a", 0x4f) }
func (a *Assembler) LdDA()  { a.emit("ld d,a", 0x57) }
func (a *Assembler) LdEA()  { a.emit("ld e,a", 0x5f) }
func (a *Assembler) LdLA()  { a.emit("ld l,a", 0x6f) }
func (a *Assembler) LdLC()  { a.emit("ld l,c", 0x69) }
func (a *Assembler) LdAHLP() { a.emit("ld a,(hl)", 0x7e) }
func (a *Assembler) LdCHLP() { a.emit("ld c,(hl)", 0x4e) }
func (a *Assembler) LdDHLP() { a.emit("ld d,(hl)", 0x56) }
func (a *Assembler) LdEHLP() { a.emit("ld e,(hl)", 0x5e) }
func (a *Assembler) LdHLPImm(n byte) {
	a.emit(fmt.Sprintf("ld (hl),0x%02x", n), 0x36, n)
}
func (a *Assembler) LdDEPA() { a.emit("ld (de),a", 0x12) }

func (a *Assembler) AddAA()         { a.emit("add a,a", 0x87) }
func (a *Assembler) AddAC()         { a.emit("add a,c", 0x81) }
func (a *Assembler) AddAHLP()       { a.emit("add a,(hl)", 0x86) }
func (a *Assembler) AddAImm(n byte) { a.emit(fmt.Sprintf("add a,0x%02x", n), 0xc6, n) }
func (a *Assembler) SubC()          { a.emit("sub c", 0x91) }
func (a *Assembler) AddHLDE()       { a.emit("add hl,de", 0x19) }
func (a *Assembler) AddHLHL()       { a.emit("add hl,hl", 0x29) }

func (a *Assembler) IncA()  { a.emit("inc a", 0x3c) }
func (a *Assembler) DecA()  { a.emit("dec a", 0x3d) }
func (a *Assembler) IncD()  { a.emit("inc d", 0x14) }
func (a *Assembler) IncDE() { a.emit("inc de", 0x13) }
func (a *Assembler) IncHL() { a.emit("inc hl", 0x23) }

func (a *Assembler) XorA()          { a.emit("xor a", 0xaf) }
func (a *Assembler) AndA()          { a.emit("and a", 0xa7) }
func (a *Assembler) AndHLP()        { a.emit("and (hl)", 0xa6) }
func (a *Assembler) AndImm(n byte)  { a.emit(fmt.Sprintf("and 0x%02x", n), 0xe6, n) }
func (a *Assembler) OrE()           { a.emit("or e", 0xb3) }
func (a *Assembler) OrImm(n byte)   { a.emit(fmt.Sprintf("or 0x%02x", n), 0xf6, n) }
func (a *Assembler) CpImm(n byte)   { a.emit(fmt.Sprintf("cp 0x%02x", n), 0xfe, n) }
func (a *Assembler) CpHLP()         { a.emit("cp (hl)", 0xbe) }
func (a *Assembler) Rrca()          { a.emit("rrca", 0x0f) }
func (a *Assembler) SlaE()          { a.emit("sla e", 0xcb, 0x23) }
func (a *Assembler) SrlC()          { a.emit("srl c", 0xcb, 0x39) }

func (a *Assembler) ExDEHL() { a.emit("ex de,hl", 0xeb) }
func (a *Assembler) Ldir()   { a.emit("ldir", 0xed, 0xb0) }

func (a *Assembler) PushBC() { a.emit("push bc", 0xc5) }
func (a *Assembler) PopBC()  { a.emit("pop bc", 0xc1) }
func (a *Assembler) PushDE() { a.emit("push de", 0xd5) }
func (a *Assembler) PopDE()  { a.emit("pop de", 0xd1) }
func (a *Assembler) PushHL() { a.emit("push hl", 0xe5) }
func (a *Assembler) PopHL()  { a.emit("pop hl", 0xe1) }

func (a *Assembler) InAC()           { a.emit("in a,(c)", 0xed, 0x78) }
func (a *Assembler) OutImmA(port byte) {
	a.emit(fmt.Sprintf("out (0x%02x),a", port), 0xd3, port)
}

func (a *Assembler) Jp(op Operand)     { a.emitAddr("jp "+op.String(), op, 0xc3) }
func (a *Assembler) Call(op Operand)   { a.emitAddr("call "+op.String(), op, 0xcd) }
func (a *Assembler) Jr(label string)   { a.emitRel("jr "+label, label, 0x18) }
func (a *Assembler) JrZ(label string)  { a.emitRel("jr z,"+label, label, 0x28) }
func (a *Assembler) JrNZ(label string) { a.emitRel("jr nz,"+label, label, 0x20) }
func (a *Assembler) JrC(label string)  { a.emitRel("jr c,"+label, label, 0x38) }
func (a *Assembler) JrNC(label string) { a.emitRel("jr nc,"+label, label, 0x30) }
func (a *Assembler) Djnz(label string) { a.emitRel("djnz "+label, label, 0x10) }

// DefByte emits one byte of data.
func (a *Assembler) DefByte(b byte) {
	a.emit(fmt.Sprintf("defb 0x%02x", b), b)
}

// DefBytes emits raw data bytes.
func (a *Assembler) DefBytes(b ...byte) {
	text := "defb"
	for _, v := range b {
		text += fmt.Sprintf(" 0x%02x", v)
	}
	a.emit(text, b...)
}
