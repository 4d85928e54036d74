/*
Package project loads game projects from YAML files.

The editors normally hand the exporter in-memory objects; the file form
exists for the command line tool. Pixel data is written as rows of hex
digits, one character per pixel palette index.
*/
package project

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spectrebit/tapemaker/game"
)

type file struct {
	Name    string       `yaml:"name"`
	Sprites []spriteYAML `yaml:"sprites"`
	Blocks  []blockYAML  `yaml:"blocks"`
	Objects []objectYAML `yaml:"objects"`
	Screens []screenYAML `yaml:"screens"`
	Levels  []levelYAML  `yaml:"levels"`
	Flow    []flowYAML   `yaml:"flow"`
}

type spriteYAML struct {
	ID        string     `yaml:"id"`
	Frames    [][]string `yaml:"frames"`
	Collision game.Box   `yaml:"collision"`
}

type blockYAML struct {
	ID     string          `yaml:"id"`
	Type   string          `yaml:"type"`
	Sprite string          `yaml:"sprite"`
	Props  game.Properties `yaml:"props"`
}

type objectYAML struct {
	ID         string                  `yaml:"id"`
	Type       string                  `yaml:"type"`
	Sprite     string                  `yaml:"sprite"`
	DirSprites game.DirectionalSprites `yaml:"dir_sprites"`
	Props      game.Properties         `yaml:"props"`
}

type placedYAML struct {
	Object    string          `yaml:"object"`
	X         float64         `yaml:"x"`
	Y         float64         `yaml:"y"`
	Overrides game.Properties `yaml:"overrides"`
}

type screenYAML struct {
	ID      string       `yaml:"id"`
	Tiles   [][]string   `yaml:"tiles"`
	Pixels  []string     `yaml:"pixels"`
	Objects []placedYAML `yaml:"objects"`
}

type levelYAML struct {
	ID      string   `yaml:"id"`
	Screens []string `yaml:"screens"`
}

type flowYAML struct {
	Kind      string `yaml:"kind"`
	Target    string `yaml:"target"`
	AutoShow  bool   `yaml:"auto_show"`
	AccessKey uint8  `yaml:"access_key"`
}

func parsePixelRows(rows []string) (game.PixelGrid, error) {
	pix := make(game.PixelGrid, len(rows))
	for y, row := range rows {
		pix[y] = make([]uint8, len(row))
		for x, c := range []byte(row) {
			var v uint8
			switch {
			case c >= '0' && c <= '9':
				v = c - '0'
			case c >= 'a' && c <= 'f':
				v = c - 'a' + 10
			default:
				return nil, fmt.Errorf("project: bad pixel digit %q in row %d", c, y)
			}
			pix[y][x] = v
		}
	}
	return pix, nil
}

// Load reads a YAML project from r.
func Load(r io.Reader) (*game.Project, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, err
	}

	p := &game.Project{Name: f.Name}

	for _, s := range f.Sprites {
		sprite := game.Sprite{ID: s.ID, Collision: s.Collision}
		for _, frame := range s.Frames {
			pix, err := parsePixelRows(frame)
			if err != nil {
				return nil, err
			}
			sprite.Frames = append(sprite.Frames, pix)
		}
		p.Sprites = append(p.Sprites, sprite)
	}

	for _, b := range f.Blocks {
		p.Blocks = append(p.Blocks, game.Block{
			ID:       b.ID,
			Type:     b.Type,
			SpriteID: b.Sprite,
			Props:    b.Props,
		})
	}

	for _, o := range f.Objects {
		p.Objects = append(p.Objects, game.GameObject{
			ID:         o.ID,
			Type:       o.Type,
			SpriteID:   o.Sprite,
			DirSprites: o.DirSprites,
			Props:      o.Props,
		})
	}

	for _, s := range f.Screens {
		screen := game.Screen{ID: s.ID, Tiles: s.Tiles}
		if len(s.Pixels) > 0 {
			pix, err := parsePixelRows(s.Pixels)
			if err != nil {
				return nil, err
			}
			screen.Pixels = pix
		}
		for _, po := range s.Objects {
			screen.Objects = append(screen.Objects, game.PlacedObject{
				ObjectID:  po.Object,
				X:         po.X,
				Y:         po.Y,
				Overrides: po.Overrides,
			})
		}
		p.Screens = append(p.Screens, screen)
	}

	for _, l := range f.Levels {
		p.Levels = append(p.Levels, game.Level{ID: l.ID, ScreenIDs: l.Screens})
	}

	for _, fl := range f.Flow {
		p.Flow = append(p.Flow, game.FlowEntry{
			Kind:      fl.Kind,
			TargetID:  fl.Target,
			AutoShow:  fl.AutoShow,
			AccessKey: fl.AccessKey,
		})
	}

	return p, nil
}

// LoadFile reads a YAML project from disk.
func LoadFile(path string) (*game.Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}
