package tilekit

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
)

// pngBytes encodes a solid w x h PNG.
func pngBytes(t testing.TB, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 200, 100, 50, 255
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// testTable is a small sprite table used across tests.
var testTable = SpriteTable{
	{"tile", 0, 0},
	{"hero", 0, 40},
	{"gate", 85, 0},
	{"dialog", 0, 0},
}

const (
	testTile SpriteID = iota
	testHero
	testGate
	testDialog
)

// testFS returns asset files for testTable: a 40x40 tile, a 40x80 hero,
// a 200x60 gate and a 100x100 dialog.
func testFS(t testing.TB) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		"tile.png":   {Data: pngBytes(t, 40, 40)},
		"hero.png":   {Data: pngBytes(t, 40, 80)},
		"gate.png":   {Data: pngBytes(t, 200, 60)},
		"dialog.png": {Data: pngBytes(t, 100, 100)},
	}
}

// loadedRegistry returns a registry over fsys with 40x40 tiles, loaded.
func loadedRegistry(t testing.TB, fsys fstest.MapFS) *Registry {
	t.Helper()
	r, err := NewRegistry(testTable, fsys, 40, 40)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if err := r.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return r
}

// drawCall is one recorded DrawImage call, with the destination reduced to
// the screen rectangle the source covers.
type drawCall struct {
	img   *ebiten.Image
	src   image.Rectangle
	dst   image.Rectangle
	alpha float32
	blend ebiten.Blend
}

// recorder is a Target that records draw calls instead of rendering.
type recorder struct {
	calls []drawCall
}

func (r *recorder) DrawImage(img *ebiten.Image, op *ebiten.DrawImageOptions) {
	b := img.Bounds()
	x0, y0 := op.GeoM.Apply(0, 0)
	x1, y1 := op.GeoM.Apply(float64(b.Dx()), float64(b.Dy()))
	r.calls = append(r.calls, drawCall{
		img: img,
		src: b,
		dst: image.Rectangle{
			Min: image.Pt(int(math.Round(x0)), int(math.Round(y0))),
			Max: image.Pt(int(math.Round(x1)), int(math.Round(y1))),
		},
		alpha: op.ColorScale.A(),
		blend: op.Blend,
	})
}
