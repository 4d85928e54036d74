package tap

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteBlockFraming(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03}

	var out bytes.Buffer
	require.NoError(t, WriteBlock(&out, FlagData, payload))
	b := out.Bytes()

	// Length counts flag, payload and checksum.
	length := binary.LittleEndian.Uint16(b[:2])
	require.Equal(t, uint16(len(payload)+2), length)
	require.Len(t, b, int(length)+2)

	assert.Equal(t, FlagData, b[2])
	assert.Equal(t, payload, b[3:3+len(payload)])

	// Flag, payload and checksum XOR to zero.
	var x byte
	for _, v := range b[2:] {
		x ^= v
	}
	assert.Equal(t, byte(0), x)
}

func TestChecksum(t *testing.T) {
	assert.Equal(t, byte(0xff), checksum(FlagData, nil))
	assert.Equal(t, byte(0xff^0x55^0xaa), checksum(FlagData, []byte{0x55, 0xaa}))
}

func TestHeaderMarshal(t *testing.T) {
	h := Header{
		Type:   TypeCode,
		Name:   "screen",
		Length: 6912,
		Param1: 0x4000,
		Param2: 0x8000,
	}

	b, err := h.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, 17)

	assert.Equal(t, TypeCode, b[0])
	assert.Equal(t, []byte("screen    "), b[1:11]) // space padded to 10
	assert.Equal(t, uint16(6912), binary.LittleEndian.Uint16(b[11:]))
	assert.Equal(t, uint16(0x4000), binary.LittleEndian.Uint16(b[13:]))
	assert.Equal(t, uint16(0x8000), binary.LittleEndian.Uint16(b[15:]))
}

func TestHeaderNameTruncated(t *testing.T) {
	h := Header{Type: TypeProgram, Name: "averylonggamename"}
	b, err := h.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte("averylongg"), b[1:11])
}

func TestNumberEncoding(t *testing.T) {
	// ASCII digits then the 6-byte encoded form.
	assert.Equal(t,
		[]byte{'3', '2', '7', '6', '8', 0x0e, 0x00, 0x00, 0x00, 0x80, 0x00},
		Number(32768))
	assert.Equal(t,
		[]byte{'1', '0', 0x0e, 0x00, 0x00, 0x0a, 0x00, 0x00},
		Number(10))
}

func TestProgramLineBackpatch(t *testing.T) {
	var p Program
	p.Line(10, []byte{tokClear}, Number(32767))
	b := p.Bytes()

	// Big-endian line number.
	assert.Equal(t, []byte{0x00, 0x0a}, b[:2])

	// Little-endian length covers body plus the ENTER terminator.
	length := int(b[2]) | int(b[3])<<8
	assert.Equal(t, len(b)-4, length)
	assert.Equal(t, enter, b[len(b)-1])
}

func TestLoaderTokens(t *testing.T) {
	b := Loader(0x7fff, 0x8000)

	// Four lines, numbered 10 through 40.
	var lines []uint16
	for off := 0; off < len(b); {
		num := uint16(b[off])<<8 | uint16(b[off+1])
		length := int(b[off+2]) | int(b[off+3])<<8
		lines = append(lines, num)
		off += 4 + length
	}
	require.Equal(t, []uint16{10, 20, 30, 40}, lines)

	// Line 10 begins with the CLEAR token, line 40 with RANDOMIZE USR.
	assert.Equal(t, tokClear, b[4])
	assert.Contains(t, string(b), string([]byte{tokLoad, quote, quote, tokScreen}))
	assert.Contains(t, string(b), string([]byte{tokLoad, quote, quote, tokCode}))
	assert.Contains(t, string(b), string([]byte{tokRandomize, tokUsr}))
}
