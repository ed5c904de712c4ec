package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/giftrunner/input"
)

var (
	buttonIdle    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x50}
	buttonPressed = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xa0}
	buttonGlyph   = color.RGBA{R: 0x10, G: 0x18, B: 0x30, A: 0xff}
)

// DrawOverlay draws the touch buttons. Pressed buttons are brighter.
func DrawOverlay(screen *ebiten.Image, buttons []input.Button) {
	for _, b := range buttons {
		fill := buttonIdle
		if b.Pressed {
			fill = buttonPressed
		}
		x, y := float32(b.X), float32(b.Y)
		w, h := float32(b.W), float32(b.H)
		vector.DrawFilledRect(screen, x, y, w, h, fill, true)
		vector.StrokeRect(screen, x, y, w, h, 2, color.White, true)
		drawArrow(screen, b.Name, x+w/2, y+h/2, w/4)
	}
}

func drawArrow(screen *ebiten.Image, name string, cx, cy, r float32) {
	var pts [3][2]float32
	switch name {
	case input.ButtonLeft:
		pts = [3][2]float32{{cx + r, cy - r}, {cx - r, cy}, {cx + r, cy + r}}
	case input.ButtonRight:
		pts = [3][2]float32{{cx - r, cy - r}, {cx + r, cy}, {cx - r, cy + r}}
	case input.ButtonJump:
		pts = [3][2]float32{{cx - r, cy + r}, {cx, cy - r}, {cx + r, cy + r}}
	default:
		return
	}
	vector.StrokeLine(screen, pts[0][0], pts[0][1], pts[1][0], pts[1][1], 6, buttonGlyph, true)
	vector.StrokeLine(screen, pts[1][0], pts[1][1], pts[2][0], pts[2][1], 6, buttonGlyph, true)
}
