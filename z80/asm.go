/*
Package z80 emits the relocatable machine code for the generated in-game
runtime.

Emission is two-pass. The Assembler writes instruction bytes immediately,
leaving zero placeholders wherever a 16-bit address (or 8-bit relative
displacement) depends on a label or on a data bank whose final address is
not yet known, and records a fixup for each placeholder. Once the full
memory layout is decided, Resolve patches every recorded fixup exactly once
against the final symbol table. Identical emission plus identical symbol
values therefore produces byte-identical output.
*/
package z80

import (
	"errors"
	"fmt"
)

// Operand is a 16-bit instruction operand: either a literal address or a
// symbol (plus optional displacement) resolved at patch time.
type Operand struct {
	sym string
	val uint16
}

// Abs returns a literal operand.
func Abs(v uint16) Operand {
	return Operand{val: v}
}

// Sym returns an operand naming a label or an external symbol.
func Sym(name string) Operand {
	return Operand{sym: name}
}

// Plus displaces the operand by n bytes.
func (o Operand) Plus(n uint16) Operand {
	o.val += n
	return o
}

func (o Operand) String() string {
	switch {
	case o.sym == "":
		return fmt.Sprintf("0x%04x", o.val)
	case o.val != 0:
		return fmt.Sprintf("%s+%d", o.sym, o.val)
	}
	return o.sym
}

// Fixup records one placeholder awaiting a real address: the buffer offset
// of the placeholder bytes and the operand to resolve. Relative fixups are
// one byte, patched with the displacement from the following instruction.
type Fixup struct {
	Offset   int
	Operand  Operand
	Relative bool
}

var (
	errResolved = errors.New("z80: fixups already resolved")
	errRange    = errors.New("z80: relative jump out of range")
)

// Assembler accumulates instruction bytes and fixups from a fixed origin.
type Assembler struct {
	origin   uint16
	buf      []byte
	labels   map[string]int
	fixups   []Fixup
	listing  []string
	resolved bool
}

// New returns an assembler emitting from the given origin address.
func New(origin uint16) *Assembler {
	return &Assembler{
		origin: origin,
		labels: make(map[string]int),
	}
}

// Origin returns the emission origin.
func (a *Assembler) Origin() uint16 {
	return a.origin
}

// Len returns the number of bytes emitted so far.
func (a *Assembler) Len() int {
	return len(a.buf)
}

// Bytes returns the emitted code. Before Resolve it still contains
// placeholder zeros.
func (a *Assembler) Bytes() []byte {
	return a.buf
}

// Fixups returns the recorded fixups.
func (a *Assembler) Fixups() []Fixup {
	return a.fixups
}

// Listing returns one mnemonic line per emitted instruction, mirroring the
// byte stream.
func (a *Assembler) Listing() []string {
	return a.listing
}

// Label defines name at the current position.
func (a *Assembler) Label(name string) {
	a.labels[name] = len(a.buf)
	a.listing = append(a.listing, name+":")
}

// LabelAddr returns the resolved address of an already-defined label.
func (a *Assembler) LabelAddr(name string) (uint16, bool) {
	off, ok := a.labels[name]
	return a.origin + uint16(off), ok
}

func (a *Assembler) emit(text string, code ...byte) {
	a.listing = append(a.listing, fmt.Sprintf("\t%-24s; %04x", text, a.origin+uint16(len(a.buf))))
	a.buf = append(a.buf, code...)
}

// emitAddr emits opcode bytes followed by a 16-bit little-endian operand,
// recording a fixup when the operand is symbolic.
func (a *Assembler) emitAddr(text string, op Operand, code ...byte) {
	a.emit(text, code...)
	if op.sym != "" {
		a.fixups = append(a.fixups, Fixup{Offset: len(a.buf), Operand: op})
		a.buf = append(a.buf, 0, 0)
		return
	}
	a.buf = append(a.buf, byte(op.val), byte(op.val>>8))
}

// emitRel emits opcode bytes followed by an 8-bit displacement placeholder
// fixed up against the target label.
func (a *Assembler) emitRel(text, label string, code ...byte) {
	a.emit(text, code...)
	a.fixups = append(a.fixups, Fixup{Offset: len(a.buf), Operand: Sym(label), Relative: true})
	a.buf = append(a.buf, 0)
}

// Resolve patches every recorded fixup against internal labels and the
// provided external symbol table. It may run only once; every fixup is
// patched exactly once or the whole resolve fails.
func (a *Assembler) Resolve(symbols map[string]uint16) error {
	if a.resolved {
		return errResolved
	}

	for _, f := range a.fixups {
		var target uint16
		if off, ok := a.labels[f.Operand.sym]; ok {
			target = a.origin + uint16(off)
		} else if v, ok := symbols[f.Operand.sym]; ok {
			target = v
		} else {
			return fmt.Errorf("z80: undefined symbol %q", f.Operand.sym)
		}
		target += f.Operand.val

		if f.Relative {
			disp := int(target) - int(a.origin) - (f.Offset + 1)
			if disp < -128 || disp > 127 {
				return fmt.Errorf("%w: %s", errRange, f.Operand.sym)
			}
			a.buf[f.Offset] = byte(int8(disp))
			continue
		}
		a.buf[f.Offset] = byte(target)
		a.buf[f.Offset+1] = byte(target >> 8)
	}

	a.resolved = true
	return nil
}
