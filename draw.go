package tilekit

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Target is anything sprites can be drawn onto. *ebiten.Image satisfies it.
type Target interface {
	DrawImage(img *ebiten.Image, options *ebiten.DrawImageOptions)
}

// DrawOptions are per-call settings for the draw primitives. They are copied
// into a fresh ebiten.DrawImageOptions on every call; no image state is
// modified.
//
// A nil *DrawOptions and the zero DrawOptions both draw fully opaque with
// BlendNormal.
type DrawOptions struct {
	// Transparency fades the sprite out: 0 is opaque, 1 is invisible.
	// Values outside [0, 1] are clamped.
	Transparency float64
	Blend        BlendMode
	Filter       ebiten.Filter
}

// Opaque returns options for a fully opaque, normally blended draw.
func Opaque() *DrawOptions {
	return &DrawOptions{}
}

// WithAlpha returns options for a normally blended draw at the given opacity,
// where 1 is opaque.
func WithAlpha(alpha float64) *DrawOptions {
	return &DrawOptions{Transparency: 1 - alpha}
}

// Alpha returns the opacity these options draw at, in [0, 1].
func (o *DrawOptions) Alpha() float64 {
	if o == nil {
		return 1
	}
	return 1 - max(0, min(o.Transparency, 1))
}

// DrawSprite draws sprite id anchored at world position (x, y). The sprite is
// shifted by its declared center, centered horizontally on a tile, and lifted
// so its bottom edge sits on the bottom of the tile at (x, y).
func (r *Registry) DrawSprite(dst Target, id SpriteID, x, y float64, cam Camera, opts *DrawOptions) {
	img := r.Image(id)
	if img == nil {
		return
	}
	w, h := r.Size(id)
	blit(dst, img, image.Rect(0, 0, w, h), r.SpriteRect(id, x, y, cam), opts)
}

// SpriteRect returns the screen rectangle DrawSprite fills for sprite id at
// world position (x, y). Each component is truncated toward zero.
func (r *Registry) SpriteRect(id SpriteID, x, y float64, cam Camera) image.Rectangle {
	if !r.table.Valid(id) {
		return image.Rectangle{}
	}
	b := r.SpriteBounds(id, x, y)
	sx, sy := cam.WorldToScreen(b.X, b.Y)
	return rectXYWH(int(sx), int(sy), int(b.Width*cam.Scale), int(b.Height*cam.Scale))
}

// SpriteBounds returns the world rectangle sprite id covers when drawn at
// world position (x, y). Unknown and unloaded sprites cover nothing.
func (r *Registry) SpriteBounds(id SpriteID, x, y float64) Rect {
	if !r.table.Valid(id) {
		return Rect{}
	}
	def := r.table[id]
	w, h := r.Size(id)
	return Rect{
		X:      x - float64(def.CenterX) - float64(w-r.TileWidth)*0.5,
		Y:      y - float64(def.CenterY) - float64(h) + float64(r.TileHeight),
		Width:  float64(w),
		Height: float64(h),
	}
}

// overhang returns how far sprite id reaches past the edges of the tile it
// stands on, in world pixels. Edges the sprite does not cross report zero.
func (r *Registry) overhang(id SpriteID) (left, top, right, bottom float64) {
	b := r.SpriteBounds(id, 0, 0)
	if b.Empty() {
		return 0, 0, 0, 0
	}
	left = max(0, -b.X)
	top = max(0, -b.Y)
	right = max(0, b.Right()-float64(r.TileWidth))
	bottom = max(0, b.Bottom()-float64(r.TileHeight))
	return left, top, right, bottom
}

// DrawSpriteRect stretches the whole of sprite id over the screen rectangle
// (x1, y1)-(x2, y2). The camera is not applied.
func (r *Registry) DrawSpriteRect(dst Target, id SpriteID, x1, y1, x2, y2 float64, opts *DrawOptions) {
	img := r.Image(id)
	if img == nil {
		return
	}
	w, h := r.Size(id)
	dr := rectXYWH(int(x1), int(y1), int(x2-x1), int(y2-y1))
	blit(dst, img, image.Rect(0, 0, w, h), dr, opts)
}

// DrawSpriteClipped draws only the top-left tile-sized region of sprite id,
// with its top-left corner at world position (x, y).
func (r *Registry) DrawSpriteClipped(dst Target, id SpriteID, x, y float64, cam Camera, opts *DrawOptions) {
	img := r.Image(id)
	if img == nil {
		return
	}
	src, dr := r.ClippedRects(x, y, cam)
	blit(dst, img, src, dr, opts)
}

// ClippedRects returns the source and screen rectangles DrawSpriteClipped uses
// at world position (x, y).
func (r *Registry) ClippedRects(x, y float64, cam Camera) (src, dst image.Rectangle) {
	src = image.Rect(0, 0, r.TileWidth, r.TileHeight)
	dst = rectXYWH(
		int(x*cam.Scale+cam.OffsetX),
		int(y*cam.Scale+cam.OffsetY),
		int(float64(r.TileWidth)*cam.Scale),
		int(float64(r.TileHeight)*cam.Scale),
	)
	return src, dst
}

// DrawSpriteAtTile draws sprite id standing on tile (tx, ty). It is
// DrawSprite at world position (tx*TileWidth, ty*TileHeight).
func (r *Registry) DrawSpriteAtTile(dst Target, id SpriteID, tx, ty float64, cam Camera, opts *DrawOptions) {
	x, y := r.TileToWorld(tx, ty)
	r.DrawSprite(dst, id, x, y, cam, opts)
}

// DrawSpriteAtTileWithAlpha is DrawSpriteAtTile at the given opacity. The
// opacity applies to this call only.
func (r *Registry) DrawSpriteAtTileWithAlpha(dst Target, id SpriteID, tx, ty float64, cam Camera, alpha float64) {
	r.DrawSpriteAtTile(dst, id, tx, ty, cam, WithAlpha(alpha))
}

// TileToWorld converts tile coordinates to world pixel coordinates.
func (r *Registry) TileToWorld(tx, ty float64) (x, y float64) {
	return tx * float64(r.TileWidth), ty * float64(r.TileHeight)
}

// rectXYWH builds a rectangle from a corner and a size without the
// canonicalization image.Rect applies.
func rectXYWH(x, y, w, h int) image.Rectangle {
	return image.Rectangle{Min: image.Point{x, y}, Max: image.Point{x + w, y + h}}
}

// blit draws the src region of img scaled onto the dst rectangle. Source
// regions reaching past the image are clipped, and the destination shrinks
// with them. It reports whether anything was submitted.
func blit(dst Target, img *ebiten.Image, src, dr image.Rectangle, opts *DrawOptions) bool {
	if img == nil || src.Dx() <= 0 || src.Dy() <= 0 || dr.Dx() <= 0 || dr.Dy() <= 0 {
		return false
	}
	bounds := img.Bounds()
	clipped := src.Add(bounds.Min).Intersect(bounds).Sub(bounds.Min)
	if clipped.Empty() {
		return false
	}
	sx := float64(dr.Dx()) / float64(src.Dx())
	sy := float64(dr.Dy()) / float64(src.Dy())

	op := drawImageOptions(opts)
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(
		float64(dr.Min.X)+float64(clipped.Min.X-src.Min.X)*sx,
		float64(dr.Min.Y)+float64(clipped.Min.Y-src.Min.Y)*sy,
	)
	sub := img.SubImage(clipped.Add(bounds.Min)).(*ebiten.Image)
	dst.DrawImage(sub, op)
	return true
}

// drawImageOptions builds fresh ebiten options from opts.
func drawImageOptions(opts *DrawOptions) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	blend := BlendNormal
	if opts != nil {
		blend = opts.Blend
		op.Filter = opts.Filter
	}
	op.ColorScale.ScaleAlpha(float32(opts.Alpha()))
	op.Blend = blend.EbitenBlend()
	return op
}
