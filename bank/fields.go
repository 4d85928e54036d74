package bank

import (
	"math"

	"github.com/spectrebit/tapemaker/game"
)

// fieldCodec describes one optional record field: the flag bit that marks
// it present, the property key it comes from, and both directions of its
// encoding. Each entity type declares a single ordered list, and the
// encoder and decoder walk that same list so the on-wire order can never
// diverge between the two.
type fieldCodec struct {
	bit    uint
	key    string
	encode func(w *Writer, p game.Properties)
	decode func(r *Reader) any
}

// flagByte computes the presence bitmask for p over the field list.
func flagByte(fields []fieldCodec, p game.Properties) byte {
	var flags byte
	for _, f := range fields {
		if _, ok := p[f.key]; ok {
			flags |= 1 << f.bit
		}
	}
	return flags
}

// deltaFlagByte computes the bitmask of fields present in overrides and
// different from the referenced defaults. Drives the placed-object delta
// encoding.
func deltaFlagByte(fields []fieldCodec, overrides, defaults game.Properties) byte {
	var flags byte
	for _, f := range fields {
		if _, ok := overrides[f.key]; !ok {
			continue
		}
		if overrides.Equal(defaults, f.key) {
			continue
		}
		flags |= 1 << f.bit
	}
	return flags
}

// encodeFields writes the flag byte then, in bit order, the payload of
// every set field.
func encodeFields(w *Writer, fields []fieldCodec, flags byte, p game.Properties) {
	w.WriteByte(flags)
	for _, f := range fields {
		if flags&(1<<f.bit) != 0 {
			f.encode(w, p)
		}
	}
}

// decodeFields reads the flag byte then, walking bits low to high, the
// payload of every set field into a fresh property bag.
func decodeFields(r *Reader, fields []fieldCodec) (byte, game.Properties) {
	flags := r.ReadByte()
	p := make(game.Properties)
	for _, f := range fields {
		if flags&(1<<f.bit) != 0 {
			p[f.key] = f.decode(r)
		}
	}
	return flags, p
}

// fixedField stores a numeric property in signed fixed-point.
func fixedField(bit uint, key string) fieldCodec {
	return fieldCodec{
		bit: bit,
		key: key,
		encode: func(w *Writer, p game.Properties) {
			n, _ := p.Number(key)
			w.WriteFixed(n)
		},
		decode: func(r *Reader) any {
			return r.ReadFixed()
		},
	}
}

// byteField stores a numeric property as a rounded unsigned byte.
func byteField(bit uint, key string) fieldCodec {
	return fieldCodec{
		bit: bit,
		key: key,
		encode: func(w *Writer, p game.Properties) {
			n, _ := p.Number(key)
			w.WriteByte(byte(clampByte(math.Round(n))))
		},
		decode: func(r *Reader) any {
			return float64(r.ReadByte())
		},
	}
}

// enumField stores a string property through a tag-to-code map and back.
func enumField(bit uint, key string, code func(string) byte, tags []string) fieldCodec {
	return fieldCodec{
		bit: bit,
		key: key,
		encode: func(w *Writer, p game.Properties) {
			s, _ := p.String(key)
			w.WriteByte(code(s))
		},
		decode: func(r *Reader) any {
			c := int(r.ReadByte())
			if c >= len(tags) {
				c = 0
			}
			return tags[c]
		},
	}
}

func clampByte(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return v
}

var directionTags = []string{"left", "right", "up", "down"}
var axisTags = []string{"horizontal", "vertical"}
