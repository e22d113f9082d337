package tilekit

import (
	"math"

	"github.com/phanxgames/tilekit/tilemap"
)

// EmptyTile is the tile value that draws nothing.
const EmptyTile = 0

// NewPalette returns a palette mapping tile value i+1 to ids[i]. Tile value
// 0 stays empty.
func NewPalette(ids ...SpriteID) []SpriteID {
	p := make([]SpriteID, len(ids)+1)
	p[EmptyTile] = -1
	copy(p[1:], ids)
	return p
}

// MapRenderer draws the layers of a tile map through a Registry. Tile values
// index Palette; zero, negative and out-of-palette values are skipped.
type MapRenderer struct {
	Registry *Registry
	Map      *tilemap.Map
	Palette  []SpriteID

	// MarginTiles adds extra rows and columns around the visible range.
	// The range already reaches far enough for every palette sprite's size
	// and center, so this is normally 0.
	MarginTiles int

	// Options are passed to every tile draw. Nil draws opaque.
	Options *DrawOptions
}

// NewMapRenderer returns a renderer for m with the given palette.
func NewMapRenderer(reg *Registry, m *tilemap.Map, palette []SpriteID) *MapRenderer {
	return &MapRenderer{
		Registry: reg,
		Map:      m,
		Palette:  palette,
	}
}

// SpriteFor returns the sprite for tile value v.
func (mr *MapRenderer) SpriteFor(v int16) (SpriteID, bool) {
	if v <= EmptyTile || int(v) >= len(mr.Palette) {
		return -1, false
	}
	id := mr.Palette[v]
	return id, mr.Registry.Table().Valid(id)
}

// reach returns the furthest any loaded palette sprite extends past its tile
// on each side.
func (mr *MapRenderer) reach() (left, top, right, bottom float64) {
	for _, id := range mr.Palette {
		l, t, r, b := mr.Registry.overhang(id)
		left, top = max(left, l), max(top, t)
		right, bottom = max(right, r), max(bottom, b)
	}
	return left, top, right, bottom
}

// VisibleRange returns the half-open tile range [col0, col1) x [row0, row1)
// whose sprites can reach a viewW x viewH screen, widened by MarginTiles and
// clamped to the map. A tile whose sprite is drawn far to the left of it
// counts as visible while the sprite is, even if the tile itself is off
// screen to the right.
func (mr *MapRenderer) VisibleRange(cam Camera, viewW, viewH float64) (col0, row0, col1, row1 int) {
	tw := float64(mr.Registry.TileWidth)
	th := float64(mr.Registry.TileHeight)
	if tw <= 0 || th <= 0 || mr.Map == nil {
		return 0, 0, 0, 0
	}
	view := cam.VisibleWorld(viewW, viewH)
	left, top, right, bottom := mr.reach()

	col0 = int(math.Floor((view.X-right)/tw)) - mr.MarginTiles
	row0 = int(math.Floor((view.Y-bottom)/th)) - mr.MarginTiles
	col1 = int(math.Ceil((view.Right()+left)/tw)) + mr.MarginTiles
	row1 = int(math.Ceil((view.Bottom()+top)/th)) + mr.MarginTiles

	col0 = max(col0, 0)
	row0 = max(row0, 0)
	col1 = min(col1, int(mr.Map.Width))
	row1 = min(row1, int(mr.Map.Height))
	if col1 < col0 {
		col1 = col0
	}
	if row1 < row0 {
		row1 = row0
	}
	return col0, row0, col1, row1
}

// Draw draws every visible tile, layer by layer and row by row from the top,
// so lower rows overlap the rows above them. Tiles whose sprite misses the
// screen are skipped. It returns the number of tiles drawn.
func (mr *MapRenderer) Draw(dst Target, cam Camera, viewW, viewH float64) int {
	if mr.Map == nil {
		return 0
	}
	col0, row0, col1, row1 := mr.VisibleRange(cam, viewW, viewH)
	view := cam.VisibleWorld(viewW, viewH)
	drawn := 0
	for layer := 0; layer < int(mr.Map.Layers); layer++ {
		for row := row0; row < row1; row++ {
			for col := col0; col < col1; col++ {
				v := mr.Map.Tiles[mr.Map.Index(col, row, layer)]
				id, ok := mr.SpriteFor(v)
				if !ok || mr.Registry.Image(id) == nil {
					continue
				}
				x, y := mr.Registry.TileToWorld(float64(col), float64(row))
				if !mr.Registry.SpriteBounds(id, x, y).Intersects(view) {
					continue
				}
				mr.Registry.DrawSprite(dst, id, x, y, cam, mr.Options)
				drawn++
			}
		}
	}
	return drawn
}
