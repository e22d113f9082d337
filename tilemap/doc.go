// Package tilemap reads and writes the flat binary tile-map format.
//
// A map file is three little-endian int32 values (width, height, layer count)
// followed by width*height*layers little-endian int16 tile values. Tiles are
// stored row-major within a layer, layer after layer. There is no magic
// number and no version field.
//
//	m, err := tilemap.Load("levels/01.map")
//	if errors.Is(err, tilemap.ErrNotFound) {
//		m, _ = tilemap.New(32, 24, 2)
//	}
//	m.Set(3, 4, 0, 7)
//	err = tilemap.Save("levels/01.map", m)
package tilemap
