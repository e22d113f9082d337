package tilekit

import "fmt"

// SpriteID identifies a sprite by its position in a SpriteTable.
type SpriteID int

// SpriteDef declares one sprite: the asset name and the anchor offset used
// when the sprite is positioned relative to a world coordinate.
type SpriteDef struct {
	Name    string `yaml:"name"`
	CenterX int    `yaml:"center_x"`
	CenterY int    `yaml:"center_y"`
}

// Filename returns the asset file name for the sprite, "<name>.png".
func (d SpriteDef) Filename() string {
	return d.Name + ".png"
}

// SpriteTable is the ordered list of declared sprites. A sprite's SpriteID is
// its index in the table.
type SpriteTable []SpriteDef

// Built-in sprite ids, indices into DefaultSprites.
const (
	SpriteHero SpriteID = iota
	SpriteHero2
	SpriteHero3
	SpriteHero4
	SpriteShadow
	SpriteCrystal
	SpriteBorderA
	SpriteBorderB
	SpriteBorderA2
	SpriteBorderB2
	SpriteTile
	SpriteTileA
	SpriteTileB
	SpriteWall
	SpriteWallSwitchA
	SpriteWallSwitchA2
	SpriteWallSwitchB
	SpriteWallSwitchB2
	SpriteSkeleton
	SpriteHeart
	SpriteHeartEmpty
	SpriteGate
	SpriteGateClosed
	SpriteDialog
	SpriteAnkh
	SpriteHourglass
)

// DefaultSprites is the game's built-in sprite declaration table.
var DefaultSprites = SpriteTable{
	SpriteHero:         {"hero", 0, 40},
	SpriteHero2:        {"hero2", 0, 40},
	SpriteHero3:        {"hero3", 0, 40},
	SpriteHero4:        {"hero4", 0, 40},
	SpriteShadow:       {"shadow", 0, 20},
	SpriteCrystal:      {"crystal", 0, 80},
	SpriteBorderA:      {"border_A", 0, 0},
	SpriteBorderB:      {"border_B", 0, 0},
	SpriteBorderA2:     {"border_A2", 0, 0},
	SpriteBorderB2:     {"border_B2", 0, 0},
	SpriteTile:         {"tile", 0, 0},
	SpriteTileA:        {"tile_A", 0, 0},
	SpriteTileB:        {"tile_B", 0, 0},
	SpriteWall:         {"wall", 0, 0},
	SpriteWallSwitchA:  {"wall_switch_A", 0, 0},
	SpriteWallSwitchA2: {"wall_switch_A_2", 0, 0},
	SpriteWallSwitchB:  {"wall_switch_B", 0, 0},
	SpriteWallSwitchB2: {"wall_switch_B_2", 0, 0},
	SpriteSkeleton:     {"skeleton", 0, 40},
	SpriteHeart:        {"heart", 0, 0},
	SpriteHeartEmpty:   {"heart_empty", 0, 0},
	SpriteGate:         {"gate", 85, 0},
	SpriteGateClosed:   {"gate_closed", 85, 0},
	SpriteDialog:       {"dialog", 0, 0},
	SpriteAnkh:         {"ankh", 0, 30},
	SpriteHourglass:    {"hourglass", 0, 0},
}

// Len returns the number of declared sprites.
func (t SpriteTable) Len() int {
	return len(t)
}

// Valid reports whether id indexes t.
func (t SpriteTable) Valid(id SpriteID) bool {
	return id >= 0 && int(id) < len(t)
}

// Lookup returns the id of the sprite with the given name.
func (t SpriteTable) Lookup(name string) (SpriteID, bool) {
	for i, d := range t {
		if d.Name == name {
			return SpriteID(i), true
		}
	}
	return -1, false
}

// LookupFile returns the id of the sprite whose asset file name is filename.
func (t SpriteTable) LookupFile(filename string) (SpriteID, bool) {
	for i, d := range t {
		if d.Filename() == filename {
			return SpriteID(i), true
		}
	}
	return -1, false
}

// Validate rejects empty and duplicate sprite names.
func (t SpriteTable) Validate() error {
	seen := make(map[string]int, len(t))
	for i, d := range t {
		if d.Name == "" {
			return fmt.Errorf("tilekit: sprite %d has no name", i)
		}
		if j, dup := seen[d.Name]; dup {
			return fmt.Errorf("tilekit: sprite name %q declared at %d and %d", d.Name, j, i)
		}
		seen[d.Name] = i
	}
	return nil
}
