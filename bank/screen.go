package bank

import (
	"math"

	"github.com/spectrebit/tapemaker/game"
)

// PackScreens packs the screen bank: a count byte, a pointer table, then
// one record per screen. A record is the flat row-major 32x24 tile index
// array followed by a placed-object count and entries. Each entry stores
// the object index, a tile-quantized position, and a delta-encoded property
// set holding only the values that differ from the referenced object's
// defaults.
//
// Raw bitmap screens occupy a slot with an all-zero tile grid so screen
// indices stay aligned with the flow table; their pixels travel separately
// as the loading screen.
func PackScreens(screens []game.Screen, objects []game.GameObject, ix *game.Index) []byte {
	w := &Writer{}
	w.WriteByte(byte(len(screens)))

	table := w.Len()
	for range screens {
		w.WriteWord(0)
	}

	for i, s := range screens {
		w.SetWord(table+i*2, uint16(w.Len()))

		grid := make([]byte, game.TileColumns*game.TileRows)
		if !s.IsBitmap() {
			for y, row := range s.Tiles {
				for x, id := range row {
					grid[y*game.TileColumns+x] = byte(ix.Block(id))
				}
			}
		}
		w.WriteBytes(grid)

		w.WriteByte(byte(len(s.Objects)))
		for _, po := range s.Objects {
			oi := ix.Object(po.ObjectID)
			var defaults game.Properties
			if oi < len(objects) {
				defaults = objects[oi].Props
			}

			w.WriteByte(byte(oi))
			w.WriteByte(byte(math.Round(po.X / game.CellSize)))
			w.WriteByte(byte(math.Round(po.Y / game.CellSize)))
			flags := deltaFlagByte(objectFields, po.Overrides, defaults)
			encodeFields(w, objectFields, flags, po.Overrides)
		}
	}

	return w.Bytes()
}

// PlacedRecord is one decoded placed-object entry.
type PlacedRecord struct {
	ObjectIndex  int
	TileX, TileY int
	Flags        byte
	Overrides    game.Properties
}

// ScreenRecord is one decoded screen bank entry.
type ScreenRecord struct {
	Tiles   []byte
	Objects []PlacedRecord
}

// ParseScreens re-parses a packed screen bank.
func ParseScreens(b []byte) ([]ScreenRecord, error) {
	r := NewReader(b)
	n := int(r.ReadByte())

	offsets := make([]int, n)
	for i := range offsets {
		offsets[i] = int(r.ReadWord())
	}

	records := make([]ScreenRecord, 0, n)
	for _, off := range offsets {
		r.Seek(off)
		rec := ScreenRecord{Tiles: r.ReadBytes(game.TileColumns * game.TileRows)}
		count := int(r.ReadByte())
		for i := 0; i < count; i++ {
			po := PlacedRecord{
				ObjectIndex: int(r.ReadByte()),
				TileX:       int(r.ReadByte()),
				TileY:       int(r.ReadByte()),
			}
			po.Flags, po.Overrides = decodeFields(r, objectFields)
			rec.Objects = append(rec.Objects, po)
		}
		records = append(records, rec)
	}

	return records, r.Err()
}

const (
	flowKindScreen byte = iota
	flowKindLevel
)

const (
	flowAutoShow byte = 1 << iota
	flowHasKey
)

// PackFlow packs the game flow table: a count byte then one entry per flow
// step. An entry is [kind, target index, flag byte] with the access key
// byte following only when its flag bit is set.
func PackFlow(flow []game.FlowEntry, ix *game.Index) []byte {
	w := &Writer{}
	w.WriteByte(byte(len(flow)))

	for _, f := range flow {
		switch f.Kind {
		case "level":
			w.WriteByte(flowKindLevel)
			w.WriteByte(byte(ix.Level(f.TargetID)))
		default:
			w.WriteByte(flowKindScreen)
			w.WriteByte(byte(ix.Screen(f.TargetID)))
		}

		var flags byte
		if f.AutoShow {
			flags |= flowAutoShow
		}
		if f.AccessKey != 0 {
			flags |= flowHasKey
		}
		w.WriteByte(flags)
		if flags&flowHasKey != 0 {
			w.WriteByte(f.AccessKey)
		}
	}

	return w.Bytes()
}

// FlowRecord is one decoded flow table entry.
type FlowRecord struct {
	Kind        string
	TargetIndex int
	AutoShow    bool
	AccessKey   uint8
}

// ParseFlow re-parses a packed flow table.
func ParseFlow(b []byte) ([]FlowRecord, error) {
	r := NewReader(b)
	n := int(r.ReadByte())

	records := make([]FlowRecord, 0, n)
	for i := 0; i < n; i++ {
		rec := FlowRecord{Kind: "screen"}
		if r.ReadByte() == flowKindLevel {
			rec.Kind = "level"
		}
		rec.TargetIndex = int(r.ReadByte())
		flags := r.ReadByte()
		rec.AutoShow = flags&flowAutoShow != 0
		if flags&flowHasKey != 0 {
			rec.AccessKey = r.ReadByte()
		}
		records = append(records, rec)
	}

	return records, r.Err()
}
