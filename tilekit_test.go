package tilekit

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestRect_ContainsMapPoints(t *testing.T) {
	// A 10x8 map of 40px tiles.
	bounds := Rect{Width: 400, Height: 320}
	tests := []struct {
		x, y float64
		want bool
	}{
		{0, 0, true},
		{399.5, 319.5, true},
		{200, 160, true},
		{400, 100, false},
		{100, 320, false},
		{-0.5, 10, false},
		{10, -0.5, false},
	}
	for _, tt := range tests {
		if got := bounds.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRect_ContainsAgreesWithTileAt(t *testing.T) {
	bounds := Rect{Width: 400, Height: 320}
	cam := Camera{Scale: 2, OffsetX: -100, OffsetY: 30}
	for sy := -40.0; sy < 700; sy += 7 {
		for sx := -40.0; sx < 900; sx += 7 {
			x, y := cam.ScreenToWorld(sx, sy)
			col, row := cam.TileAt(sx, sy, 40, 40)
			onMap := col >= 0 && col < 10 && row >= 0 && row < 8
			if bounds.Contains(x, y) != onMap {
				t.Fatalf("screen (%v,%v): Contains = %v but tile (%d,%d)", sx, sy, !onMap, col, row)
			}
		}
	}
}

func TestRect_IntersectsView(t *testing.T) {
	view := Rect{X: 100, Y: 50, Width: 80, Height: 60}
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", Rect{X: 120, Y: 60, Width: 10, Height: 10}, true},
		{"covers view", Rect{X: 0, Y: 0, Width: 400, Height: 400}, true},
		{"overlaps left edge", Rect{X: 60, Y: 60, Width: 41, Height: 10}, true},
		{"touches left edge", Rect{X: 60, Y: 60, Width: 40, Height: 10}, false},
		{"touches bottom edge", Rect{X: 120, Y: 110, Width: 10, Height: 10}, false},
		{"above", Rect{X: 120, Y: 0, Width: 10, Height: 20}, false},
		{"empty inside", Rect{X: 120, Y: 60}, false},
	}
	for _, tt := range tests {
		if got := tt.r.Intersects(view); got != tt.want {
			t.Errorf("%s: Intersects = %v, want %v", tt.name, got, tt.want)
		}
		if got := view.Intersects(tt.r); got != tt.want {
			t.Errorf("%s: reversed Intersects = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestBlendMode_EbitenBlend(t *testing.T) {
	tests := []struct {
		mode BlendMode
		want ebiten.Blend
	}{
		{BlendNormal, ebiten.BlendSourceOver},
		{BlendAdd, ebiten.BlendLighter},
		{BlendNone, ebiten.BlendCopy},
		{BlendMode(200), ebiten.BlendSourceOver},
	}
	for _, tt := range tests {
		if got := tt.mode.EbitenBlend(); got != tt.want {
			t.Errorf("BlendMode(%d).EbitenBlend() = %v, want %v", tt.mode, got, tt.want)
		}
	}

	multiply, screen := BlendMultiply.EbitenBlend(), BlendScreen.EbitenBlend()
	if multiply.BlendFactorSourceRGB != ebiten.BlendFactorDestinationColor {
		t.Errorf("multiply source factor = %v, want destination color", multiply.BlendFactorSourceRGB)
	}
	if screen.BlendFactorDestinationRGB != ebiten.BlendFactorOneMinusSourceColor {
		t.Errorf("screen destination factor = %v, want one minus source color", screen.BlendFactorDestinationRGB)
	}
}

func TestDebugMode(t *testing.T) {
	defer SetDebugMode(DebugMode())
	SetDebugMode(true)
	if !DebugMode() {
		t.Error("DebugMode = false after SetDebugMode(true)")
	}
	SetDebugMode(false)
	if DebugMode() {
		t.Error("DebugMode = true after SetDebugMode(false)")
	}
}
