package bank

import "errors"

var errShortBank = errors.New("bank: truncated bank data")

// Reader walks packed bank bytes. Because records carry no per-field
// lengths, callers must consume fields in exactly the order the writer
// emitted them, driven by the same field lists.
type Reader struct {
	buf []byte
	off int
	err error
}

// NewReader returns a reader positioned at the start of b.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Seek repositions the reader at an absolute offset.
func (r *Reader) Seek(off int) {
	if off < 0 || off > len(r.buf) {
		r.err = errShortBank
		return
	}
	r.off = off
}

// ReadByte consumes one byte, returning 0 once the reader has erred.
func (r *Reader) ReadByte() byte {
	if r.err != nil {
		return 0
	}
	if r.off >= len(r.buf) {
		r.err = errShortBank
		return 0
	}
	b := r.buf[r.off]
	r.off++
	return b
}

// ReadSignedByte consumes one byte as two's-complement.
func (r *Reader) ReadSignedByte() int8 {
	return int8(r.ReadByte())
}

// ReadWord consumes a little-endian 16-bit value.
func (r *Reader) ReadWord() uint16 {
	lo := r.ReadByte()
	hi := r.ReadByte()
	return uint16(lo) | uint16(hi)<<8
}

// ReadFixed consumes a fixed-point byte and restores the real value.
func (r *Reader) ReadFixed() float64 {
	return float64(r.ReadSignedByte()) / FixedScale
}

// ReadBytes consumes exactly n bytes.
func (r *Reader) ReadBytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.off+n > len(r.buf) {
		r.err = errShortBank
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

// Err returns the first error encountered, if any.
func (r *Reader) Err() error {
	return r.err
}
