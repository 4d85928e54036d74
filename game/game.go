/*
Package game defines the in-memory project model handed to the export
pipeline by the editors: sprites, blocks, game objects, screens, levels and
the game flow ordering.

The pipeline assumes editors hand it structurally valid objects; the only
checks performed here are the ones the binary formats need (id resolution,
grid dimensions). References are by string id and are resolved once per
export into small-integer bank indices via Index.
*/
package game

// Display geometry of the target hardware.
const (
	ScreenWidth  = 256
	ScreenHeight = 192
	TileColumns  = 32
	TileRows     = 24
	CellSize     = 8
)

// PixelGrid is a row-major grid of hardware palette indices (0-15). Sprites
// use arbitrary dimensions; full screens are exactly 256 by 192.
type PixelGrid [][]uint8

// Width returns the pixel width of the grid, zero when empty.
func (g PixelGrid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the pixel height of the grid.
func (g PixelGrid) Height() int {
	return len(g)
}

// Box is a collision box expressed as insets from each sprite edge.
type Box struct {
	Left   int `yaml:"left"`
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
}

// Sprite is a multi-frame image. Every frame shares the sprite's dimensions
// and there is exactly one collision box per sprite, not per frame.
type Sprite struct {
	ID        string
	Frames    []PixelGrid
	Collision Box
}

// Properties is the free-form property bag attached to blocks, objects and
// placed-object instances. Values are numbers (float64) or strings.
type Properties map[string]any

// Number returns the named property as a float64 if present.
func (p Properties) Number(key string) (float64, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case uint8:
		return float64(n), true
	}
	return 0, false
}

// String returns the named property as a string if present.
func (p Properties) String(key string) (string, bool) {
	v, ok := p[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Equal reports whether the named property holds the same value in both
// bags. Used by the placed-object delta encoding.
func (p Properties) Equal(other Properties, key string) bool {
	if n, ok := p.Number(key); ok {
		m, mok := other.Number(key)
		return mok && n == m
	}
	if s, ok := p.String(key); ok {
		t, tok := other.String(key)
		return tok && s == t
	}
	_, inP := p[key]
	_, inOther := other[key]
	return inP == inOther
}

// Block is a tile-sized building element placed on screen grids. Type tags
// are free strings ("solid", "conveyor", ...) mapped to small integers at
// pack time.
type Block struct {
	ID       string
	Type     string
	SpriteID string
	Props    Properties
}

// DirectionalSprites optionally overrides the primary sprite per movement
// direction. Empty fields mean the primary sprite is used.
type DirectionalSprites struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
}

// GameObject is an actor: player, enemy, pickup, door, moving platform.
type GameObject struct {
	ID         string
	Type       string
	SpriteID   string
	DirSprites DirectionalSprites
	Props      Properties
}

// PlacedObject is an object instance positioned on a screen. Positions are
// in pixels and quantized to the tile grid at pack time. Overrides holds
// per-instance property values; only the ones differing from the referenced
// object's defaults are encoded.
type PlacedObject struct {
	ObjectID  string
	X, Y      float64
	Overrides Properties
}

// Screen is either a 32x24 grid of block references or, for title and
// loading screens, a raw 256x192 pixel grid. Exactly one of Tiles or Pixels
// is populated.
type Screen struct {
	ID      string
	Tiles   [][]string // TileRows rows of TileColumns block ids
	Pixels  PixelGrid
	Objects []PlacedObject
}

// IsBitmap reports whether the screen is a raw pixel screen rather than a
// tile grid.
func (s *Screen) IsBitmap() bool {
	return len(s.Pixels) > 0
}

// Level groups screens in play order.
type Level struct {
	ID        string
	ScreenIDs []string
}

// FlowEntry orders screens and levels in the exported game, with the
// presentation flags the runtime menu honours.
type FlowEntry struct {
	Kind      string // "screen" or "level"
	TargetID  string
	AutoShow  bool
	AccessKey uint8
}

// Project is the complete editor state the exporter consumes.
type Project struct {
	Name    string
	Sprites []Sprite
	Blocks  []Block
	Objects []GameObject
	Screens []Screen
	Levels  []Level
	Flow    []FlowEntry
}
