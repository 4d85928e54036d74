package bank

import "github.com/spectrebit/tapemaker/game"

// PackSpritePixels packs one frame as a monochrome bitmap, 8 pixels per
// byte, rows top to bottom with bit 7 leftmost. A bit is set iff the source
// palette index is non-zero. Output length is height * ceil(width/8).
func PackSpritePixels(frame game.PixelGrid) []byte {
	width, height := frame.Width(), frame.Height()
	stride := (width + 7) / 8

	out := make([]byte, height*stride)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if frame[y][x] != 0 {
				out[y*stride+x/8] |= 0x80 >> uint(x%8)
			}
		}
	}
	return out
}

// PackSprites packs the sprite bank. The header is a count byte followed by
// three parallel pointer tables, one entry per sprite, locating each
// sprite's metadata, pixel data and collision box sections. Metadata is
// [width, height, frame count]; pixel data is every frame's packed bitmap
// back to back; the collision section is exactly one box per sprite (not
// per frame) as four edge insets.
func PackSprites(sprites []game.Sprite) []byte {
	w := &Writer{}
	w.WriteByte(byte(len(sprites)))

	meta := w.Len()
	for range sprites {
		w.WriteWord(0)
	}
	pixels := w.Len()
	for range sprites {
		w.WriteWord(0)
	}
	collision := w.Len()
	for range sprites {
		w.WriteWord(0)
	}

	for i, s := range sprites {
		var width, height int
		if len(s.Frames) > 0 {
			width, height = s.Frames[0].Width(), s.Frames[0].Height()
		}

		w.SetWord(meta+i*2, uint16(w.Len()))
		w.WriteByte(byte(width))
		w.WriteByte(byte(height))
		w.WriteByte(byte(len(s.Frames)))

		w.SetWord(pixels+i*2, uint16(w.Len()))
		for _, f := range s.Frames {
			w.WriteBytes(PackSpritePixels(f))
		}

		w.SetWord(collision+i*2, uint16(w.Len()))
		w.WriteByte(byte(s.Collision.Left))
		w.WriteByte(byte(s.Collision.Top))
		w.WriteByte(byte(s.Collision.Right))
		w.WriteByte(byte(s.Collision.Bottom))
	}

	return w.Bytes()
}

// SpriteRecord is one decoded sprite bank entry.
type SpriteRecord struct {
	Width, Height int
	Frames        [][]byte
	Collision     game.Box
}

// ParseSprites re-parses a packed sprite bank.
func ParseSprites(b []byte) ([]SpriteRecord, error) {
	r := NewReader(b)
	n := int(r.ReadByte())

	meta := make([]int, n)
	pixels := make([]int, n)
	collision := make([]int, n)
	for i := range meta {
		meta[i] = int(r.ReadWord())
	}
	for i := range pixels {
		pixels[i] = int(r.ReadWord())
	}
	for i := range collision {
		collision[i] = int(r.ReadWord())
	}

	records := make([]SpriteRecord, 0, n)
	for i := 0; i < n; i++ {
		r.Seek(meta[i])
		rec := SpriteRecord{
			Width:  int(r.ReadByte()),
			Height: int(r.ReadByte()),
		}
		frames := int(r.ReadByte())

		r.Seek(pixels[i])
		stride := (rec.Width + 7) / 8
		for f := 0; f < frames; f++ {
			rec.Frames = append(rec.Frames, r.ReadBytes(rec.Height*stride))
		}

		r.Seek(collision[i])
		rec.Collision = game.Box{
			Left:   int(r.ReadByte()),
			Top:    int(r.ReadByte()),
			Right:  int(r.ReadByte()),
			Bottom: int(r.ReadByte()),
		}
		records = append(records, rec)
	}

	return records, r.Err()
}
