/*
Package bank packs project entities into the binary tables the generated
runtime walks at run time.

Every bank shares the same layout: a record count, a pointer table of 16-bit
little-endian offsets (the sprite bank carries three parallel tables), then
variable-length records. A record starts with a fixed prefix followed by one
bitflag byte; only the optional fields whose bit is set are present, in bit
order, with no per-field length. Encoder and decoder are driven by the same
ordered field lists so they cannot drift apart.

Packing is pure and deterministic: identical input and the same Index
produce byte-identical output on every call, which the orchestrator relies
on when sizing the memory layout before the final pass.
*/
package bank

import "math"

// FixedScale is the default fixed-point scale: quarter-unit resolution.
const FixedScale = 4

// Writer is an append-only byte buffer with the primitive encoders the
// packers are built from. The zero value is ready to use.
type Writer struct {
	buf []byte
}

// WriteByte appends a single byte.
func (w *Writer) WriteByte(b byte) {
	w.buf = append(w.buf, b)
}

// WriteSignedByte appends v as two's-complement.
func (w *Writer) WriteSignedByte(v int8) {
	w.buf = append(w.buf, byte(v))
}

// WriteWord appends a little-endian 16-bit value.
func (w *Writer) WriteWord(v uint16) {
	w.buf = append(w.buf, byte(v), byte(v>>8))
}

// WriteBytes appends b verbatim.
func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteFixed appends v in signed fixed-point at the default scale,
// saturating silently at the signed-byte range.
func (w *Writer) WriteFixed(v float64) {
	w.WriteSignedByte(Fixed(v))
}

// Fixed converts v to signed fixed-point: round(v*FixedScale) clamped to
// the int8 range. Out-of-range values saturate; this never errors.
func Fixed(v float64) int8 {
	n := math.Round(v * FixedScale)
	switch {
	case n > math.MaxInt8:
		return math.MaxInt8
	case n < math.MinInt8:
		return math.MinInt8
	}
	return int8(n)
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// SetByte overwrites an already-written byte. Used by the packers to
// backpatch counts and pointer tables once record sizes are known.
func (w *Writer) SetByte(off int, b byte) {
	w.buf[off] = b
}

// SetWord overwrites an already-written little-endian word.
func (w *Writer) SetWord(off int, v uint16) {
	w.buf[off] = byte(v)
	w.buf[off+1] = byte(v >> 8)
}

// Bytes returns the packed buffer. The slice aliases the writer's storage;
// callers treat it as read-only.
func (w *Writer) Bytes() []byte {
	return w.buf
}
