package tilemap

import "github.com/pkg/errors"

// MaxTiles caps width*height*layers for maps created or decoded by this
// package. A header that declares more tiles is rejected as invalid.
const MaxTiles = 1 << 26

// Map is a layered grid of int16 tile values.
//
// len(Tiles) == Width*Height*Layers at all times. Tiles are stored row-major
// within a layer, layer after layer.
type Map struct {
	Width  int32
	Height int32
	Layers int32
	Tiles  []int16
}

// New allocates a zeroed map with the given dimensions.
func New(width, height, layers int32) (*Map, error) {
	n, err := tileCount(width, height, layers)
	if err != nil {
		return nil, err
	}
	return &Map{
		Width:  width,
		Height: height,
		Layers: layers,
		Tiles:  make([]int16, n),
	}, nil
}

// tileCount validates dimensions and returns width*height*layers.
func tileCount(width, height, layers int32) (int, error) {
	if width < 0 || height < 0 || layers < 0 {
		return 0, errors.Wrapf(ErrInvalidHeader, "negative dimensions %dx%dx%d", width, height, layers)
	}
	n := int64(width) * int64(height) * int64(layers)
	if n > MaxTiles {
		return 0, errors.Wrapf(ErrInvalidHeader, "%dx%dx%d is %d tiles, limit %d", width, height, layers, n, MaxTiles)
	}
	return int(n), nil
}

// Empty reports whether the map holds no tiles.
func (m *Map) Empty() bool {
	return len(m.Tiles) == 0
}

// InBounds reports whether (x, y, layer) addresses a tile of m.
func (m *Map) InBounds(x, y, layer int) bool {
	return x >= 0 && x < int(m.Width) &&
		y >= 0 && y < int(m.Height) &&
		layer >= 0 && layer < int(m.Layers)
}

// Index returns the offset of (x, y, layer) in Tiles. It does not check bounds.
func (m *Map) Index(x, y, layer int) int {
	return (layer*int(m.Height)+y)*int(m.Width) + x
}

// At returns the tile at (x, y, layer). ok is false when the position lies
// outside the map.
func (m *Map) At(x, y, layer int) (v int16, ok bool) {
	if !m.InBounds(x, y, layer) {
		return 0, false
	}
	return m.Tiles[m.Index(x, y, layer)], true
}

// Set stores v at (x, y, layer) and reports whether the position was in bounds.
func (m *Map) Set(x, y, layer int, v int16) bool {
	if !m.InBounds(x, y, layer) {
		return false
	}
	m.Tiles[m.Index(x, y, layer)] = v
	return true
}

// Layer returns the tiles of one layer as a sub-slice of Tiles, or nil when
// layer is out of range. Writes through the slice modify the map.
func (m *Map) Layer(layer int) []int16 {
	if layer < 0 || layer >= int(m.Layers) {
		return nil
	}
	size := int(m.Width) * int(m.Height)
	return m.Tiles[layer*size : (layer+1)*size : (layer+1)*size]
}

// Fill sets every tile of a layer to v. It reports false for an unknown layer.
func (m *Map) Fill(layer int, v int16) bool {
	tiles := m.Layer(layer)
	if tiles == nil {
		return false
	}
	for i := range tiles {
		tiles[i] = v
	}
	return true
}

// Clone returns a deep copy of m.
func (m *Map) Clone() *Map {
	c := *m
	c.Tiles = append([]int16(nil), m.Tiles...)
	return &c
}

// Resize changes the map dimensions in place. Tiles inside both the old and
// the new bounds keep their value; new tiles are zero.
func (m *Map) Resize(width, height, layers int32) error {
	n, err := tileCount(width, height, layers)
	if err != nil {
		return err
	}
	tiles := make([]int16, n)
	cw := min(width, m.Width)
	ch := min(height, m.Height)
	cl := min(layers, m.Layers)
	for l := int32(0); l < cl; l++ {
		for y := int32(0); y < ch; y++ {
			src := m.Index(0, int(y), int(l))
			dst := (int(l)*int(height) + int(y)) * int(width)
			copy(tiles[dst:dst+int(cw)], m.Tiles[src:src+int(cw)])
		}
	}
	m.Width, m.Height, m.Layers = width, height, layers
	m.Tiles = tiles
	return nil
}

// Release drops the tile buffer and zeroes the dimensions. A released map
// behaves like an empty one.
func (m *Map) Release() {
	m.Width, m.Height, m.Layers = 0, 0, 0
	m.Tiles = nil
}
