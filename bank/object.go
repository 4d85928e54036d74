package bank

import "github.com/spectrebit/tapemaker/game"

// Object records, in flag-bit order.
var objectFields = []fieldCodec{
	fixedField(0, "speed"),
	byteField(1, "damage"),
	byteField(2, "health"),
	fixedField(3, "projectileSpeed"),
	byteField(4, "projectileDamage"),
	byteField(5, "fireRate"),
	byteField(6, "target"),
	enumField(7, "axis", AxisCode, axisTags),
}

const (
	dirMaskLeft = 1 << iota
	dirMaskRight
	dirMaskUp
	dirMaskDown
)

// PackObjects packs the object bank: a count byte, a pointer table, then
// one record per object. A record is [sprite index, type code, flag byte,
// payload..., direction mask, directional sprite indices...]; the direction
// mask selects which of the four directional sprites follow, low bit first.
func PackObjects(objects []game.GameObject, ix *game.Index) []byte {
	w := &Writer{}
	w.WriteByte(byte(len(objects)))

	table := w.Len()
	for range objects {
		w.WriteWord(0)
	}

	for i, o := range objects {
		w.SetWord(table+i*2, uint16(w.Len()))
		w.WriteByte(byte(ix.Sprite(o.SpriteID)))
		w.WriteByte(ObjectTypeCode(o.Type))
		encodeFields(w, objectFields, flagByte(objectFields, o.Props), o.Props)

		var mask byte
		ids := make([]string, 0, 4)
		for _, d := range []struct {
			bit byte
			id  string
		}{
			{dirMaskLeft, o.DirSprites.Left},
			{dirMaskRight, o.DirSprites.Right},
			{dirMaskUp, o.DirSprites.Up},
			{dirMaskDown, o.DirSprites.Down},
		} {
			if d.id != "" {
				mask |= d.bit
				ids = append(ids, d.id)
			}
		}
		w.WriteByte(mask)
		for _, id := range ids {
			w.WriteByte(byte(ix.Sprite(id)))
		}
	}

	return w.Bytes()
}

// ObjectRecord is one decoded object bank entry.
type ObjectRecord struct {
	SpriteIndex int
	Type        string
	Flags       byte
	Props       game.Properties
	DirSprites  map[string]int
}

var objectTypeTags = []string{"", "player", "enemy", "projectile", "pickup", "door", "platform", "exit"}

// ParseObjects re-parses a packed object bank.
func ParseObjects(b []byte) ([]ObjectRecord, error) {
	r := NewReader(b)
	n := int(r.ReadByte())

	offsets := make([]int, n)
	for i := range offsets {
		offsets[i] = int(r.ReadWord())
	}

	records := make([]ObjectRecord, 0, n)
	for _, off := range offsets {
		r.Seek(off)
		rec := ObjectRecord{SpriteIndex: int(r.ReadByte())}
		if t := int(r.ReadByte()); t < len(objectTypeTags) {
			rec.Type = objectTypeTags[t]
		}
		rec.Flags, rec.Props = decodeFields(r, objectFields)

		mask := r.ReadByte()
		rec.DirSprites = make(map[string]int)
		for i, name := range directionTags {
			if mask&(1<<uint(i)) != 0 {
				rec.DirSprites[name] = int(r.ReadByte())
			}
		}
		records = append(records, rec)
	}

	return records, r.Err()
}
