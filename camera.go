package tilekit

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Camera maps world pixel coordinates to screen pixel coordinates:
// screen = world*Scale + Offset. There is no rotation.
type Camera struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// IdentityCamera draws world coordinates 1:1 onto the screen.
var IdentityCamera = Camera{Scale: 1}

// WorldToScreen converts a world position to screen coordinates.
func (c Camera) WorldToScreen(x, y float64) (sx, sy float64) {
	return x*c.Scale + c.OffsetX, y*c.Scale + c.OffsetY
}

// ScreenToWorld converts screen coordinates to a world position. A zero
// Scale maps every screen point to the world origin.
func (c Camera) ScreenToWorld(sx, sy float64) (x, y float64) {
	if c.Scale == 0 {
		return 0, 0
	}
	return (sx - c.OffsetX) / c.Scale, (sy - c.OffsetY) / c.Scale
}

// TileAt returns the tile under the given screen point.
func (c Camera) TileAt(sx, sy float64, tileW, tileH int) (col, row int) {
	x, y := c.ScreenToWorld(sx, sy)
	return int(math.Floor(x / float64(tileW))), int(math.Floor(y / float64(tileH)))
}

// VisibleWorld returns the world-space rectangle shown in a viewW x viewH
// screen.
func (c Camera) VisibleWorld(viewW, viewH float64) Rect {
	x0, y0 := c.ScreenToWorld(0, 0)
	x1, y1 := c.ScreenToWorld(viewW, viewH)
	return Rect{X: math.Min(x0, x1), Y: math.Min(y0, y1), Width: math.Abs(x1 - x0), Height: math.Abs(y1 - y0)}
}

// scrollAnim holds active scroll-to tweens for the camera center.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// CameraRig drives a Camera over time: it centers on world positions,
// animates scrolls with gween tweens and optionally clamps the view to
// world bounds.
type CameraRig struct {
	// Camera is the current camera value passed to draw calls.
	Camera Camera
	// ViewWidth and ViewHeight are the screen size in pixels.
	ViewWidth  float64
	ViewHeight float64

	// BoundsEnabled clamps the camera so the visible area stays within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds Rect

	scroll *scrollAnim
}

// NewCameraRig returns a rig with the given scale and screen size, centered
// on the world origin.
func NewCameraRig(scale, viewW, viewH float64) *CameraRig {
	r := &CameraRig{
		Camera:     Camera{Scale: scale},
		ViewWidth:  viewW,
		ViewHeight: viewH,
	}
	r.CenterOn(0, 0)
	return r
}

// Center returns the world position at the middle of the screen.
func (r *CameraRig) Center() (x, y float64) {
	return r.Camera.ScreenToWorld(r.ViewWidth/2, r.ViewHeight/2)
}

// CenterOn moves the camera so world position (x, y) is at the middle of the
// screen. Any running scroll is cancelled.
func (r *CameraRig) CenterOn(x, y float64) {
	r.scroll = nil
	r.setCenter(x, y)
}

func (r *CameraRig) setCenter(x, y float64) {
	r.Camera.OffsetX = r.ViewWidth/2 - x*r.Camera.Scale
	r.Camera.OffsetY = r.ViewHeight/2 - y*r.Camera.Scale
	if r.BoundsEnabled {
		r.clampToBounds()
	}
}

// ScrollTo animates the camera center to world position (x, y) over duration
// seconds.
func (r *CameraRig) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	cx, cy := r.Center()
	r.scroll = &scrollAnim{
		tweenX: gween.New(float32(cx), float32(x), duration, easeFn),
		tweenY: gween.New(float32(cy), float32(y), duration, easeFn),
	}
}

// ScrollToTile scrolls to the center of the given tile.
func (r *CameraRig) ScrollToTile(tileX, tileY int, tileW, tileH float64, duration float32, easeFn ease.TweenFunc) {
	worldX := float64(tileX)*tileW + tileW/2
	worldY := float64(tileY)*tileH + tileH/2
	r.ScrollTo(worldX, worldY, duration, easeFn)
}

// Scrolling reports whether a scroll animation is in progress.
func (r *CameraRig) Scrolling() bool {
	return r.scroll != nil
}

// Pan moves the camera by (dx, dy) screen pixels.
func (r *CameraRig) Pan(dx, dy float64) {
	r.Camera.OffsetX -= dx
	r.Camera.OffsetY -= dy
	if r.BoundsEnabled {
		r.clampToBounds()
	}
}

// SetScale changes the zoom while keeping the screen center fixed.
func (r *CameraRig) SetScale(scale float64) {
	if scale <= 0 {
		return
	}
	cx, cy := r.Center()
	r.Camera.Scale = scale
	r.setCenter(cx, cy)
}

// SetBounds enables bounds clamping.
func (r *CameraRig) SetBounds(bounds Rect) {
	r.BoundsEnabled = true
	r.Bounds = bounds
	r.clampToBounds()
}

// ClearBounds disables bounds clamping.
func (r *CameraRig) ClearBounds() {
	r.BoundsEnabled = false
}

// Update advances a running scroll by dt seconds.
func (r *CameraRig) Update(dt float32) {
	if r.scroll == nil {
		return
	}
	cx, cy := r.Center()
	if !r.scroll.doneX {
		val, done := r.scroll.tweenX.Update(dt)
		cx = float64(val)
		r.scroll.doneX = done
	}
	if !r.scroll.doneY {
		val, done := r.scroll.tweenY.Update(dt)
		cy = float64(val)
		r.scroll.doneY = done
	}
	r.setCenter(cx, cy)
	if r.scroll.doneX && r.scroll.doneY {
		r.scroll = nil
	}
}

// clampToBounds restricts the camera so the visible area stays within Bounds.
// If Bounds is smaller than the visible area on an axis, it is centered.
func (r *CameraRig) clampToBounds() {
	s := r.Camera.Scale
	if s <= 0 {
		return
	}
	halfW := r.ViewWidth / (2 * s)
	halfH := r.ViewHeight / (2 * s)

	minX := r.Bounds.X + halfW
	maxX := r.Bounds.Right() - halfW
	minY := r.Bounds.Y + halfH
	maxY := r.Bounds.Bottom() - halfH

	cx, cy := r.Center()
	if minX > maxX {
		cx = r.Bounds.X + r.Bounds.Width/2
	} else {
		cx = math.Max(minX, math.Min(cx, maxX))
	}
	if minY > maxY {
		cy = r.Bounds.Y + r.Bounds.Height/2
	} else {
		cy = math.Max(minY, math.Min(cy, maxY))
	}
	r.Camera.OffsetX = r.ViewWidth/2 - cx*s
	r.Camera.OffsetY = r.ViewHeight/2 - cy*s
}
