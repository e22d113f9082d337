package tilekit

import "github.com/hajimehoshi/ebiten/v2"

// Rect is a rectangle in world or screen pixels, Y pointing down. It spans
// [X, X+Width) horizontally and [Y, Y+Height) vertically.
type Rect struct {
	X, Y, Width, Height float64
}

// Right returns the exclusive right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Empty reports whether r covers no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether the point (x, y) falls in r. The right and bottom
// edges are outside, so a point on the boundary between two adjacent tiles
// belongs to exactly one of them.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects reports whether r and o share any area. Rectangles that only
// touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// BlendMode selects how a sprite is composited onto the target.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // alpha-blended over the target
	BlendAdd                       // lightens; used for glows
	BlendMultiply                  // darkens; used for shade overlays
	BlendScreen                    // inverse of multiply
	BlendNone                      // overwrites the target
)

var ebitenBlends = [...]ebiten.Blend{
	BlendNormal: ebiten.BlendSourceOver,
	BlendAdd:    ebiten.BlendLighter,
	BlendMultiply: {
		BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
		BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
		BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
		BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
		BlendOperationRGB:           ebiten.BlendOperationAdd,
		BlendOperationAlpha:         ebiten.BlendOperationAdd,
	},
	BlendScreen: {
		BlendFactorSourceRGB:        ebiten.BlendFactorOne,
		BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
		BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
		BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
		BlendOperationRGB:           ebiten.BlendOperationAdd,
		BlendOperationAlpha:         ebiten.BlendOperationAdd,
	},
	BlendNone: ebiten.BlendCopy,
}

// EbitenBlend returns the ebiten blend for b. Unknown modes blend normally.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	if int(b) >= len(ebitenBlends) {
		return ebiten.BlendSourceOver
	}
	return ebitenBlends[b]
}
