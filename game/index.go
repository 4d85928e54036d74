package game

import "fmt"

// Index maps entity ids to their bank indices for one export run. It is
// built once per export and threaded through every packer so all banks
// agree on the same numbering; it is never reused across runs.
//
// A dangling reference resolves to index 0 and is recorded as a miss rather
// than aborting the export; the editors are expected to prevent dangling
// ids, so a miss is reported once, after packing.
type Index struct {
	sprites map[string]int
	blocks  map[string]int
	objects map[string]int
	screens map[string]int
	levels  map[string]int

	misses []string
}

// BuildIndex derives the id to index mapping from declaration order.
func BuildIndex(p *Project) *Index {
	ix := &Index{
		sprites: make(map[string]int, len(p.Sprites)),
		blocks:  make(map[string]int, len(p.Blocks)),
		objects: make(map[string]int, len(p.Objects)),
		screens: make(map[string]int, len(p.Screens)),
		levels:  make(map[string]int, len(p.Levels)),
	}
	for i, s := range p.Sprites {
		ix.sprites[s.ID] = i
	}
	for i, b := range p.Blocks {
		ix.blocks[b.ID] = i
	}
	for i, o := range p.Objects {
		ix.objects[o.ID] = i
	}
	for i, s := range p.Screens {
		ix.screens[s.ID] = i
	}
	for i, l := range p.Levels {
		ix.levels[l.ID] = i
	}
	return ix
}

func (ix *Index) lookup(m map[string]int, kind, id string) int {
	if i, ok := m[id]; ok {
		return i
	}
	ix.misses = append(ix.misses, fmt.Sprintf("%s %q", kind, id))
	return 0
}

// Sprite resolves a sprite id, substituting 0 when dangling.
func (ix *Index) Sprite(id string) int { return ix.lookup(ix.sprites, "sprite", id) }

// Block resolves a block id, substituting 0 when dangling.
func (ix *Index) Block(id string) int { return ix.lookup(ix.blocks, "block", id) }

// Object resolves a game-object id, substituting 0 when dangling.
func (ix *Index) Object(id string) int { return ix.lookup(ix.objects, "object", id) }

// Screen resolves a screen id, substituting 0 when dangling.
func (ix *Index) Screen(id string) int { return ix.lookup(ix.screens, "screen", id) }

// Level resolves a level id, substituting 0 when dangling.
func (ix *Index) Level(id string) int { return ix.lookup(ix.levels, "level", id) }

// Misses lists every dangling reference resolved so far, in lookup order.
func (ix *Index) Misses() []string { return ix.misses }
