package z80

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitAbsoluteOperand(t *testing.T) {
	a := New(0x8000)
	a.LdHL(Abs(0x1234))

	assert.Equal(t, []byte{0x21, 0x34, 0x12}, a.Bytes())
	assert.Empty(t, a.Fixups())
}

func TestSymbolicOperandPlaceholder(t *testing.T) {
	a := New(0x8000)
	a.LdHL(Sym("table"))

	require.Equal(t, []byte{0x21, 0x00, 0x00}, a.Bytes())
	require.Len(t, a.Fixups(), 1)
	assert.Equal(t, 1, a.Fixups()[0].Offset)
}

func TestResolveExternalSymbol(t *testing.T) {
	a := New(0x8000)
	a.LdHL(Sym("bank").Plus(3))

	require.NoError(t, a.Resolve(map[string]uint16{"bank": 0x9000}))
	assert.Equal(t, []byte{0x21, 0x03, 0x90}, a.Bytes())
}

func TestResolveInternalLabel(t *testing.T) {
	a := New(0x8000)
	a.Jp(Sym("spin"))
	a.Label("spin")
	a.Jp(Sym("spin"))

	require.NoError(t, a.Resolve(nil))
	assert.Equal(t, []byte{0xc3, 0x03, 0x80, 0xc3, 0x03, 0x80}, a.Bytes())
}

func TestResolveRelative(t *testing.T) {
	a := New(0x8000)
	a.Label("loop")
	a.XorA()
	a.Djnz("loop")

	require.NoError(t, a.Resolve(nil))
	// Displacement from the byte after the instruction back to loop.
	assert.Equal(t, []byte{0xaf, 0x10, 0xfd}, a.Bytes())
}

func TestResolveForwardRelative(t *testing.T) {
	a := New(0x8000)
	a.JrZ("done")
	a.XorA()
	a.Label("done")
	a.Ret()

	require.NoError(t, a.Resolve(nil))
	assert.Equal(t, []byte{0x28, 0x01, 0xaf, 0xc9}, a.Bytes())
}

func TestResolveUnknownSymbol(t *testing.T) {
	a := New(0x8000)
	a.Jp(Sym("nowhere"))

	assert.Error(t, a.Resolve(nil))
}

func TestResolveRelativeOutOfRange(t *testing.T) {
	a := New(0x8000)
	a.Jr("far")
	for i := 0; i < 200; i++ {
		a.XorA()
	}
	a.Label("far")

	assert.ErrorIs(t, a.Resolve(nil), errRange)
}

func TestResolveRunsOnce(t *testing.T) {
	a := New(0x8000)
	a.Jp(Sym("spin"))
	a.Label("spin")

	require.NoError(t, a.Resolve(nil))
	assert.ErrorIs(t, a.Resolve(nil), errResolved)
}

func TestListingMirrorsBytes(t *testing.T) {
	a := New(0x8000)
	a.LdAImm(0x07)
	a.OutImmA(0xfe)
	a.Label("spin")
	a.Jp(Sym("spin"))

	listing := a.Listing()
	require.Len(t, listing, 4)
	assert.Contains(t, listing[0], "ld a,0x07")
	assert.Contains(t, listing[1], "out (0xfe),a")
	assert.Equal(t, "spin:", listing[2])
	assert.Contains(t, listing[3], "jp spin")
}
