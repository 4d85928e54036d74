package tap

import "strconv"

// BASIC keyword tokens used by the bootstrap loader. These byte values are
// the platform tokenizer's and must not change.
const (
	tokScreen    byte = 0xaa
	tokCode      byte = 0xaf
	tokUsr       byte = 0xc0
	tokLoad      byte = 0xef
	tokRandomize byte = 0xf9
	tokClear     byte = 0xfd

	numberMarker byte = 0x0e
	enter        byte = 0x0d
	quote        byte = '"'
)

// Number encodes an integer constant the way the tokenizer stores it: the
// ASCII digit run followed by the 6-byte encoded form (marker then the
// small-integer representation).
func Number(n uint16) []byte {
	b := []byte(strconv.Itoa(int(n)))
	return append(b, numberMarker, 0x00, 0x00, byte(n), byte(n>>8), 0x00)
}

// Program accumulates tokenized BASIC lines.
type Program struct {
	buf []byte
}

// Line appends one numbered line. The line number is big-endian, the length
// prefix is backpatched once the body and terminator are in place.
func (p *Program) Line(number uint16, body ...[]byte) {
	p.buf = append(p.buf, byte(number>>8), byte(number))

	lengthAt := len(p.buf)
	p.buf = append(p.buf, 0, 0)

	start := len(p.buf)
	for _, b := range body {
		p.buf = append(p.buf, b...)
	}
	p.buf = append(p.buf, enter)

	length := len(p.buf) - start
	p.buf[lengthAt] = byte(length)
	p.buf[lengthAt+1] = byte(length >> 8)
}

// Bytes returns the tokenized program.
func (p *Program) Bytes() []byte {
	return p.buf
}

// Loader builds the bootstrap BASIC program:
//
//	10 CLEAR clear
//	20 LOAD "" SCREEN$
//	30 LOAD "" CODE
//	40 RANDOMIZE USR start
func Loader(clear, start uint16) []byte {
	var p Program
	p.Line(10, []byte{tokClear}, Number(clear))
	p.Line(20, []byte{tokLoad, quote, quote, tokScreen})
	p.Line(30, []byte{tokLoad, quote, quote, tokCode})
	p.Line(40, []byte{tokRandomize, tokUsr}, Number(start))
	return p.Bytes()
}

// AutostartLine is the line the loader starts from.
const AutostartLine = 10
