package project

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spectrebit/tapemaker/game"
)

const sampleYAML = `
name: caves
sprites:
  - id: hero
    collision: {left: 1, top: 0, right: 1, bottom: 0}
    frames:
      - ["0f", "f0"]
      - ["f0", "0f"]
blocks:
  - id: floor
    type: solid
    sprite: hero
  - id: belt
    type: conveyor
    sprite: hero
    props: {speed: 2.5, direction: right}
objects:
  - id: player
    type: player
    sprite: hero
    dir_sprites: {left: hero, right: hero}
    props: {speed: 1}
screens:
  - id: start
    tiles:
      - [floor, belt]
    objects:
      - object: player
        x: 64
        y: 128.5
        overrides: {speed: 3}
  - id: title
    pixels: ["07", "70"]
levels:
  - id: one
    screens: [start]
flow:
  - kind: screen
    target: title
    auto_show: true
  - kind: level
    target: one
    access_key: 49
`

func TestLoad(t *testing.T) {
	p, err := Load(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "caves", p.Name)

	require.Len(t, p.Sprites, 1)
	assert.Equal(t, "hero", p.Sprites[0].ID)
	assert.Equal(t, game.Box{Left: 1, Right: 1}, p.Sprites[0].Collision)
	require.Len(t, p.Sprites[0].Frames, 2)
	assert.Equal(t, game.PixelGrid{{0, 15}, {15, 0}}, p.Sprites[0].Frames[0])

	require.Len(t, p.Blocks, 2)
	assert.Equal(t, "conveyor", p.Blocks[1].Type)
	speed, ok := p.Blocks[1].Props.Number("speed")
	assert.True(t, ok)
	assert.Equal(t, 2.5, speed)

	require.Len(t, p.Objects, 1)
	assert.Equal(t, "hero", p.Objects[0].DirSprites.Right)

	require.Len(t, p.Screens, 2)
	assert.Equal(t, [][]string{{"floor", "belt"}}, p.Screens[0].Tiles)
	require.Len(t, p.Screens[0].Objects, 1)
	assert.Equal(t, "player", p.Screens[0].Objects[0].ObjectID)
	assert.Equal(t, 128.5, p.Screens[0].Objects[0].Y)
	over, ok := p.Screens[0].Objects[0].Overrides.Number("speed")
	assert.True(t, ok)
	assert.Equal(t, 3.0, over)

	assert.True(t, p.Screens[1].IsBitmap())
	assert.Equal(t, game.PixelGrid{{0, 7}, {7, 0}}, p.Screens[1].Pixels)

	require.Len(t, p.Levels, 1)
	assert.Equal(t, []string{"start"}, p.Levels[0].ScreenIDs)

	require.Len(t, p.Flow, 2)
	assert.True(t, p.Flow[0].AutoShow)
	assert.Equal(t, "one", p.Flow[1].TargetID)
	assert.Equal(t, uint8(49), p.Flow[1].AccessKey)
}

func TestLoadBadPixelDigit(t *testing.T) {
	_, err := Load(strings.NewReader(`
screens:
  - id: title
    pixels: ["0g"]
`))
	assert.ErrorContains(t, err, "bad pixel digit")
}

func TestLoadBadYAML(t *testing.T) {
	_, err := Load(strings.NewReader("sprites: [::"))
	assert.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/nope.yaml")
	assert.Error(t, err)
}
