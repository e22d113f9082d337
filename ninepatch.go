package tilekit

import (
	"image"
	"math"
)

// DefaultDialogBorder is the fraction of the dialog sprite's width and height
// used as the nine-patch border.
const DefaultDialogBorder = 0.1

// Patch pairs a source region of a sprite with the screen rectangle it is
// stretched over.
type Patch struct {
	Src image.Rectangle
	Dst image.Rectangle
}

// Nine-patch slot indices, row-major from the top-left corner.
const (
	PatchTopLeft = iota
	PatchTop
	PatchTopRight
	PatchLeft
	PatchCenter
	PatchRight
	PatchBottomLeft
	PatchBottom
	PatchBottomRight
)

// NinePatch slices a sw x sh sprite into a 3x3 grid and lays it out over the
// screen box (x, y, w, h).
//
// The border is border*sw pixels wide on the left and right and border*sh
// pixels tall on the top and bottom of the source. Corners keep that size
// multiplied by scale; edges stretch along their axis and the center stretches
// along both. The nine destination rectangles cover the box exactly. When the
// box is smaller than two corners, the corners shrink to half the box.
func NinePatch(sw, sh int, border, x, y, w, h, scale float64) [9]Patch {
	bx := int(math.Round(border * float64(sw)))
	by := int(math.Round(border * float64(sh)))
	bx = max(0, min(bx, sw/2))
	by = max(0, min(by, sh/2))

	srcX := [4]int{0, bx, sw - bx, sw}
	srcY := [4]int{0, by, sh - by, sh}

	x0, y0 := int(x), int(y)
	x3, y3 := int(x+w), int(y+h)
	cw := min(int(float64(bx)*scale), max(0, x3-x0)/2)
	ch := min(int(float64(by)*scale), max(0, y3-y0)/2)
	dstX := [4]int{x0, x0 + cw, x3 - cw, x3}
	dstY := [4]int{y0, y0 + ch, y3 - ch, y3}

	var out [9]Patch
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] = Patch{
				Src: image.Rect(srcX[col], srcY[row], srcX[col+1], srcY[row+1]),
				Dst: image.Rectangle{
					Min: image.Point{dstX[col], dstY[row]},
					Max: image.Point{dstX[col+1], dstY[row+1]},
				},
			}
		}
	}
	return out
}

// DrawNinePatch draws sprite id as a nine-patch filling the screen box
// (x, y, w, h). Empty patches are skipped.
func (r *Registry) DrawNinePatch(dst Target, id SpriteID, border, x, y, w, h, scale float64, opts *DrawOptions) {
	img := r.Image(id)
	if img == nil {
		return
	}
	sw, sh := r.Size(id)
	for _, p := range NinePatch(sw, sh, border, x, y, w, h, scale) {
		blit(dst, img, p.Src, p.Dst, opts)
	}
}

// DrawDialog draws the registry's dialog sprite as a nine-patch box filling
// the screen box (x, y, w, h). The border is scaled by scale.
func (r *Registry) DrawDialog(dst Target, x, y, w, h, scale float64, opts *DrawOptions) {
	r.DrawNinePatch(dst, r.Dialog, r.DialogBorder, x, y, w, h, scale, opts)
}
