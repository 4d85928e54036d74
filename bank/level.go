package bank

import "github.com/spectrebit/tapemaker/game"

// PackLevels packs the level bank: a count byte, then one record per level
// holding a screen count and the screen indices in play order. Flow entries
// of the level kind index into this table.
func PackLevels(levels []game.Level, ix *game.Index) []byte {
	w := &Writer{}
	w.WriteByte(byte(len(levels)))

	for _, l := range levels {
		w.WriteByte(byte(len(l.ScreenIDs)))
		for _, id := range l.ScreenIDs {
			w.WriteByte(byte(ix.Screen(id)))
		}
	}

	return w.Bytes()
}

// LevelRecord is one decoded level bank entry.
type LevelRecord struct {
	ScreenIndices []int
}

// ParseLevels re-parses a packed level bank.
func ParseLevels(b []byte) ([]LevelRecord, error) {
	r := NewReader(b)
	n := int(r.ReadByte())

	records := make([]LevelRecord, 0, n)
	for i := 0; i < n; i++ {
		count := int(r.ReadByte())
		rec := LevelRecord{ScreenIndices: make([]int, 0, count)}
		for j := 0; j < count; j++ {
			rec.ScreenIndices = append(rec.ScreenIndices, int(r.ReadByte()))
		}
		records = append(records, rec)
	}

	return records, r.Err()
}
