/*
Package tap frames data into the cassette-tape container format: each block
is a 2-byte little-endian length, a flag byte, the payload, and a trailing
checksum that XORs the flag and every payload byte to zero.

A header block (flag 0x00) announces the block that follows it: a 17 byte
payload of type, 10-byte space-padded filename, declared length and two
type-specific parameters (autostart line and program length for BASIC, load
address for CODE).
*/
package tap

import (
	"encoding/binary"
	"errors"
	"io"
)

const (
	// FlagHeader marks a header block.
	FlagHeader byte = 0x00

	// FlagData marks a raw data block.
	FlagData byte = 0xff
)

// Header block types.
const (
	TypeProgram byte = 0
	TypeCode    byte = 3
)

const (
	filenameLen = 10
	headerLen   = 17
)

var errTooLong = errors.New("tap: block payload too long")

// checksum XORs the flag and payload; appending the result makes the whole
// framed block XOR to zero.
func checksum(flag byte, payload []byte) byte {
	c := flag
	for _, b := range payload {
		c ^= b
	}
	return c
}

// WriteBlock frames one tape block. The length field counts the flag, the
// payload and the checksum byte.
func WriteBlock(w io.Writer, flag byte, payload []byte) error {
	if len(payload)+2 > 0xffff {
		return errTooLong
	}

	var length [2]byte
	binary.LittleEndian.PutUint16(length[:], uint16(len(payload)+2))

	for _, b := range [][]byte{length[:], {flag}, payload, {checksum(flag, payload)}} {
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// Header describes the block that follows it on tape.
type Header struct {
	Type   byte
	Name   string
	Length uint16

	// Param1 is the autostart line number for BASIC, the load address
	// for CODE. Param2 is the BASIC program length, 0x8000 for CODE.
	Param1 uint16
	Param2 uint16
}

// MarshalBinary encodes the 17 byte header payload.
func (h Header) MarshalBinary() ([]byte, error) {
	b := make([]byte, headerLen)
	b[0] = h.Type
	for i := 0; i < filenameLen; i++ {
		b[1+i] = ' '
	}
	copy(b[1:1+filenameLen], h.Name)
	binary.LittleEndian.PutUint16(b[11:], h.Length)
	binary.LittleEndian.PutUint16(b[13:], h.Param1)
	binary.LittleEndian.PutUint16(b[15:], h.Param2)
	return b, nil
}

// WriteHeader frames h as a header block.
func WriteHeader(w io.Writer, h Header) error {
	b, err := h.MarshalBinary()
	if err != nil {
		return err
	}
	return WriteBlock(w, FlagHeader, b)
}

// WriteData frames payload as a data block.
func WriteData(w io.Writer, payload []byte) error {
	return WriteBlock(w, FlagData, payload)
}
