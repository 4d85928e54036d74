package bank

import "github.com/spectrebit/tapemaker/game"

// Block records, in flag-bit order. The conveyor pair sits in the low bits
// so the common record shapes stay short.
var blockFields = []fieldCodec{
	fixedField(0, "speed"),
	enumField(1, "direction", DirectionCode, directionTags),
	byteField(2, "crumbleTime"),
	byteField(3, "respawnTime"),
	fixedField(4, "friction"),
	fixedField(5, "climbSpeed"),
}

// PackBlocks packs the block bank: a count byte, a pointer table of 16-bit
// offsets from the bank start, then one record per block. A record is
// [sprite index, type code, flag byte, payload...].
func PackBlocks(blocks []game.Block, ix *game.Index) []byte {
	w := &Writer{}
	w.WriteByte(byte(len(blocks)))

	table := w.Len()
	for range blocks {
		w.WriteWord(0)
	}

	for i, b := range blocks {
		w.SetWord(table+i*2, uint16(w.Len()))
		w.WriteByte(byte(ix.Sprite(b.SpriteID)))
		w.WriteByte(BlockTypeCode(b.Type))
		encodeFields(w, blockFields, flagByte(blockFields, b.Props), b.Props)
	}

	return w.Bytes()
}

// BlockRecord is one decoded block bank entry.
type BlockRecord struct {
	SpriteIndex int
	Type        string
	Flags       byte
	Props       game.Properties
}

var blockTypeTags = []string{"decoration", "solid", "conveyor", "crumble", "ladder", "spike"}

// ParseBlocks re-parses a packed block bank record by record, each record
// driven by its own flag byte.
func ParseBlocks(b []byte) ([]BlockRecord, error) {
	r := NewReader(b)
	n := int(r.ReadByte())

	offsets := make([]int, n)
	for i := range offsets {
		offsets[i] = int(r.ReadWord())
	}

	records := make([]BlockRecord, 0, n)
	for _, off := range offsets {
		r.Seek(off)
		rec := BlockRecord{SpriteIndex: int(r.ReadByte())}
		if t := int(r.ReadByte()); t < len(blockTypeTags) {
			rec.Type = blockTypeTags[t]
		}
		rec.Flags, rec.Props = decodeFields(r, blockFields)
		records = append(records, rec)
	}

	return records, r.Err()
}
