package tilekit

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestSpriteRect_AnchorsOnTileBase(t *testing.T) {
	reg := loadedRegistry(t, testFS(t))
	cam := Camera{Scale: 2, OffsetX: 10, OffsetY: 20}

	// hero is 40x80 with center (0, 40); tile is 40x40.
	// x: (100 - 0 - (40-40)/2)*2 + 10 = 210
	// y: (200 - 40 - 80 + 40)*2 + 20 = 260
	got := reg.SpriteRect(testHero, 100, 200, cam)
	want := rectXYWH(210, 260, 80, 160)
	if got != want {
		t.Errorf("SpriteRect(hero) = %v, want %v", got, want)
	}
}

func TestSpriteRect_CentersWideSprite(t *testing.T) {
	reg := loadedRegistry(t, testFS(t))

	// gate is 200x60 with center (85, 0).
	// x: 0 - 85 - (200-40)/2 = -165
	// y: 0 - 0 - 60 + 40 = -20
	got := reg.SpriteRect(testGate, 0, 0, IdentityCamera)
	want := rectXYWH(-165, -20, 200, 60)
	if got != want {
		t.Errorf("SpriteRect(gate) = %v, want %v", got, want)
	}
}

func TestSpriteRect_TruncatesTowardZero(t *testing.T) {
	reg := loadedRegistry(t, testFS(t))
	cam := Camera{Scale: 1.5, OffsetX: 0.7, OffsetY: -0.7}

	// x: 10.3*1.5 + 0.7 = 16.15 -> 16
	// y: (0 - 0 - 40 + 40)*1.5 - 0.7 = -0.7 -> 0
	got := reg.SpriteRect(testTile, 10.3, 0, cam)
	want := rectXYWH(16, 0, 60, 60)
	if got != want {
		t.Errorf("SpriteRect = %v, want %v", got, want)
	}
}

func TestSpriteRect_UnknownSprite(t *testing.T) {
	reg := loadedRegistry(t, testFS(t))
	if got := reg.SpriteRect(99, 0, 0, IdentityCamera); got != (image.Rectangle{}) {
		t.Errorf("SpriteRect(99) = %v, want empty", got)
	}
}

func TestDrawSprite_RecordsRect(t *testing.T) {
	reg := loadedRegistry(t, testFS(t))
	cam := Camera{Scale: 2, OffsetX: 10, OffsetY: 20}
	var rec recorder
	reg.DrawSprite(&rec, testHero, 100, 200, cam, nil)

	if len(rec.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(rec.calls))
	}
	c := rec.calls[0]
	if c.dst != reg.SpriteRect(testHero, 100, 200, cam) {
		t.Errorf("dst = %v, want %v", c.dst, reg.SpriteRect(testHero, 100, 200, cam))
	}
	if c.src != image.Rect(0, 0, 40, 80) {
		t.Errorf("src = %v, want full sprite", c.src)
	}
	if c.alpha != 1 {
		t.Errorf("alpha = %v, want 1", c.alpha)
	}
}

func TestDrawSpriteAtTile_MatchesDrawSprite(t *testing.T) {
	reg := loadedRegistry(t, testFS(t))
	cam := Camera{Scale: 1.25, OffsetX: -33.5, OffsetY: 12.25}
	points := [][2]float64{{0, 0}, {3, 4}, {-2, 7}, {2.5, -1.75}, {100, 100}}

	for _, p := range points {
		var atTile, direct recorder
		reg.DrawSpriteAtTile(&atTile, testHero, p[0], p[1], cam, nil)
		reg.DrawSprite(&direct, testHero, p[0]*40, p[1]*40, cam, nil)
		if len(atTile.calls) != 1 || len(direct.calls) != 1 {
			t.Fatalf("(%v,%v): calls = %d/%d, want 1/1", p[0], p[1], len(atTile.calls), len(direct.calls))
		}
		if atTile.calls[0].dst != direct.calls[0].dst {
			t.Errorf("(%v,%v): at-tile dst %v != direct dst %v", p[0], p[1], atTile.calls[0].dst, direct.calls[0].dst)
		}
	}
}

func TestDrawSpriteAtTileWithAlpha_DoesNotPersist(t *testing.T) {
	reg := loadedRegistry(t, testFS(t))
	var rec recorder

	reg.DrawSpriteAtTileWithAlpha(&rec, testHero, 1, 1, IdentityCamera, 0.5)
	reg.DrawSpriteAtTile(&rec, testHero, 1, 1, IdentityCamera, nil)
	reg.DrawSprite(&rec, testHero, 40, 40, IdentityCamera, nil)

	if len(rec.calls) != 3 {
		t.Fatalf("calls = %d, want 3", len(rec.calls))
	}
	if rec.calls[0].alpha != 0.5 {
		t.Errorf("alpha draw = %v, want 0.5", rec.calls[0].alpha)
	}
	for i := 1; i < 3; i++ {
		if rec.calls[i].alpha != 1 {
			t.Errorf("call %d alpha = %v, want 1", i, rec.calls[i].alpha)
		}
	}
}

func TestDrawOptions_AlphaClamped(t *testing.T) {
	tests := []struct {
		alpha float64
		want  float32
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{3, 1},
	}
	for _, tt := range tests {
		op := drawImageOptions(WithAlpha(tt.alpha))
		if got := op.ColorScale.A(); got != tt.want {
			t.Errorf("alpha %v -> %v, want %v", tt.alpha, got, tt.want)
		}
	}
}

func TestDrawOptions_ZeroValueIsOpaque(t *testing.T) {
	reg := loadedRegistry(t, testFS(t))
	var rec recorder

	reg.DrawSprite(&rec, testTile, 0, 0, IdentityCamera, &DrawOptions{})
	reg.DrawSprite(&rec, testTile, 0, 0, IdentityCamera, &DrawOptions{Blend: BlendAdd})
	reg.DrawSprite(&rec, testTile, 0, 0, IdentityCamera, Opaque())
	reg.DrawSprite(&rec, testTile, 0, 0, IdentityCamera, &DrawOptions{Transparency: 0.75})

	want := []float32{1, 1, 1, 0.25}
	if len(rec.calls) != len(want) {
		t.Fatalf("calls = %d, want %d", len(rec.calls), len(want))
	}
	for i, c := range rec.calls {
		if c.alpha != want[i] {
			t.Errorf("call %d alpha = %v, want %v", i, c.alpha, want[i])
		}
	}
	if rec.calls[1].blend != ebiten.BlendLighter {
		t.Errorf("call 1 blend = %v, want BlendLighter", rec.calls[1].blend)
	}
}

func TestDrawOptions_Alpha(t *testing.T) {
	tests := []struct {
		opts *DrawOptions
		want float64
	}{
		{nil, 1},
		{&DrawOptions{}, 1},
		{&DrawOptions{Transparency: 0.5}, 0.5},
		{&DrawOptions{Transparency: 1}, 0},
		{&DrawOptions{Transparency: -4}, 1},
		{WithAlpha(0.25), 0.25},
	}
	for _, tt := range tests {
		if got := tt.opts.Alpha(); got != tt.want {
			t.Errorf("%+v.Alpha() = %v, want %v", tt.opts, got, tt.want)
		}
	}
}

func TestDrawOptions_BlendAndFilter(t *testing.T) {
	op := drawImageOptions(&DrawOptions{Blend: BlendAdd, Filter: ebiten.FilterLinear})
	if op.Blend != ebiten.BlendLighter {
		t.Errorf("Blend = %v, want BlendLighter", op.Blend)
	}
	if op.Filter != ebiten.FilterLinear {
		t.Errorf("Filter = %v, want FilterLinear", op.Filter)
	}
	if def := drawImageOptions(nil); def.Blend != ebiten.BlendSourceOver {
		t.Errorf("default Blend = %v, want BlendSourceOver", def.Blend)
	}
}

func TestDrawSprite_UnloadedDrawsNothing(t *testing.T) {
	fsys := testFS(t)
	delete(fsys, "hero.png")
	reg, _ := NewRegistry(testTable, fsys, 40, 40)
	_ = reg.Load()

	var rec recorder
	reg.DrawSprite(&rec, testHero, 0, 0, IdentityCamera, nil)
	reg.DrawSpriteAtTile(&rec, testHero, 1, 1, IdentityCamera, nil)
	reg.DrawSpriteClipped(&rec, testHero, 0, 0, IdentityCamera, nil)
	reg.DrawSpriteRect(&rec, testHero, 0, 0, 10, 10, nil)
	reg.DrawSprite(&rec, 42, 0, 0, IdentityCamera, nil)
	if len(rec.calls) != 0 {
		t.Errorf("calls = %d, want 0", len(rec.calls))
	}
}

func TestDrawSpriteRect_IgnoresCamera(t *testing.T) {
	reg := loadedRegistry(t, testFS(t))
	var rec recorder
	reg.DrawSpriteRect(&rec, testGate, 10.9, 20.2, 110.5, 70.8, nil)

	if len(rec.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(rec.calls))
	}
	// (10, 20) with size (int(99.6), int(50.6)) = (99, 50)
	want := rectXYWH(10, 20, 99, 50)
	if rec.calls[0].dst != want {
		t.Errorf("dst = %v, want %v", rec.calls[0].dst, want)
	}
	if rec.calls[0].src != image.Rect(0, 0, 200, 60) {
		t.Errorf("src = %v, want whole sprite", rec.calls[0].src)
	}
}

func TestDrawSpriteRect_EmptyRect(t *testing.T) {
	reg := loadedRegistry(t, testFS(t))
	var rec recorder
	reg.DrawSpriteRect(&rec, testGate, 50, 50, 40, 60, nil)
	if len(rec.calls) != 0 {
		t.Errorf("calls = %d, want 0 for inverted rect", len(rec.calls))
	}
}

func TestDrawSpriteClipped_TopLeftTile(t *testing.T) {
	reg := loadedRegistry(t, testFS(t))
	cam := Camera{Scale: 2, OffsetX: 5, OffsetY: 7}
	var rec recorder
	reg.DrawSpriteClipped(&rec, testHero, 30, 40, cam, nil)

	if len(rec.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(rec.calls))
	}
	c := rec.calls[0]
	if c.src != image.Rect(0, 0, 40, 40) {
		t.Errorf("src = %v, want (0,0)-(40,40)", c.src)
	}
	if want := rectXYWH(65, 87, 80, 80); c.dst != want {
		t.Errorf("dst = %v, want %v", c.dst, want)
	}
	src, dst := reg.ClippedRects(30, 40, cam)
	if src != c.src || dst != c.dst {
		t.Errorf("ClippedRects = %v %v, want %v %v", src, dst, c.src, c.dst)
	}
}

func TestDrawSpriteClipped_SpriteSmallerThanTile(t *testing.T) {
	fsys := testFS(t)
	fsys["tile.png"].Data = pngBytes(t, 20, 10)
	reg := loadedRegistry(t, fsys)
	var rec recorder
	reg.DrawSpriteClipped(&rec, testTile, 0, 0, Camera{Scale: 2}, nil)

	if len(rec.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(rec.calls))
	}
	c := rec.calls[0]
	if c.src != image.Rect(0, 0, 20, 10) {
		t.Errorf("src = %v, want clipped to image", c.src)
	}
	if want := rectXYWH(0, 0, 40, 20); c.dst != want {
		t.Errorf("dst = %v, want %v", c.dst, want)
	}
}

func TestTileToWorld(t *testing.T) {
	reg := loadedRegistry(t, testFS(t))
	x, y := reg.TileToWorld(3, -2.5)
	if x != 120 || y != -100 {
		t.Errorf("TileToWorld(3,-2.5) = (%v,%v), want (120,-100)", x, y)
	}
}

func BenchmarkDrawSpriteAtTile(b *testing.B) {
	reg := loadedRegistry(b, testFS(b))
	var rec recorder
	cam := Camera{Scale: 2}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec.calls = rec.calls[:0]
		reg.DrawSpriteAtTile(&rec, testHero, 5, 5, cam, nil)
	}
}
