package tilekit

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DebugOverlay draws frame rate, camera state and missing sprites in the
// top-left corner of the screen. The text is refreshed about twice a second.
type DebugOverlay struct {
	img     *ebiten.Image
	elapsed float64
	text    string
}

// NewDebugOverlay creates an overlay with its own 220x64 backing image.
func NewDebugOverlay() *DebugOverlay {
	return &DebugOverlay{img: ebiten.NewImage(220, 64), elapsed: 1}
}

// Update refreshes the overlay text after dt seconds have accumulated.
func (o *DebugOverlay) Update(dt float64, reg *Registry, cam Camera) {
	o.elapsed += dt
	if o.elapsed < 0.5 {
		return
	}
	o.elapsed = 0
	o.text = overlayText(ebiten.ActualFPS(), ebiten.ActualTPS(), reg, cam)

	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)
}

// Draw draws the overlay onto screen.
func (o *DebugOverlay) Draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}

func overlayText(fps, tps float64, reg *Registry, cam Camera) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f  TPS: %.1f\n", fps, tps)
	fmt.Fprintf(&b, "cam: x%.2f (%.0f, %.0f)\n", cam.Scale, cam.OffsetX, cam.OffsetY)
	missing := reg.Missing()
	if len(missing) == 0 {
		b.WriteString("sprites: all loaded")
		return b.String()
	}
	fmt.Fprintf(&b, "sprites: %d missing", len(missing))
	if len(missing) <= 2 {
		for _, id := range missing {
			b.WriteString(" " + reg.Table()[id].Name)
		}
	}
	return b.String()
}
