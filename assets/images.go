package assets

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/ecs/entity"
	"github.com/milk9111/giftrunner/prefabs"
	"golang.org/x/image/colornames"
)

var (
	skyTop    = color.RGBA{R: 0x1b, G: 0x26, B: 0x4f, A: 0xff}
	skyBottom = color.RGBA{R: 0x4a, G: 0x6f, B: 0xa5, A: 0xff}
	snow      = color.RGBA{R: 0xee, G: 0xf4, B: 0xfb, A: 0xff}
	hill      = color.RGBA{R: 0x2c, G: 0x4a, B: 0x6e, A: 0xff}
	skin      = color.RGBA{R: 0xf1, G: 0xc2, B: 0x9b, A: 0xff}
	coat      = color.RGBA{R: 0xc8, G: 0x2b, B: 0x2b, A: 0xff}
	fur       = color.RGBA{R: 0x7a, G: 0xb5, B: 0x3c, A: 0xff}
	panel     = color.RGBA{R: 0x10, G: 0x18, B: 0x30, A: 0xe0}
)

// Images draws every sprite the game uses, keyed by the common.Image* names.
func Images(s prefabs.Settings) map[string]*ebiten.Image {
	return map[string]*ebiten.Image{
		common.ImageBackground:  Background(s.Screen.Width, s.Screen.Height, s.World.FloorTop),
		common.ImagePlayerSheet: PlayerSheet(s),
		common.ImageEnemy:       Enemy(int(s.Enemies.SpriteWidth), int(s.Enemies.SpriteHeight)),
		common.ImagePresent:     Present(int(s.Collectibles.Size)),
		common.ImageProjectile:  Projectile(12),
		common.ImageBarFrame:    BarFrame(s.ProgressBar),
		common.ImageInstruction: Instructions(),
		common.ImageBannerWon:   Banner("YOU SAVED THE GIFTS!", colornames.Gold),
		common.ImageBannerLost:  Banner("THE GIFTS ARE GONE", colornames.Tomato),
	}
}

// Background is one horizontally tileable screen of night sky, hills and
// the snow the world stands on.
func Background(w, h int, floorTop float64) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	for y := 0; y < h; y++ {
		c := lerpColor(skyTop, skyBottom, float64(y)/float64(h))
		vector.DrawFilledRect(img, 0, float32(y), float32(w), 1, c, false)
	}
	// Stars repeat every quarter screen so the tile edges meet.
	for i := 0; i < 24; i++ {
		x := float32((i*97)%(w/4) + (i%4)*(w/4))
		y := float32((i * 53) % (int(floorTop/2) + 1))
		vector.DrawFilledCircle(img, x, y, 1.5, colornames.White, true)
	}
	// Hills use whole periods across the width.
	for x := 0; x < w; x++ {
		phase := 2 * math.Pi * float64(x) / float64(w)
		top := floorTop - 60 - 30*math.Sin(phase*2) - 15*math.Sin(phase*5)
		vector.DrawFilledRect(img, float32(x), float32(top), 1, float32(floorTop-top), hill, false)
	}
	vector.DrawFilledRect(img, 0, float32(floorTop), float32(w), float32(float64(h)-floorTop), snow, false)
	return img
}

// PlayerSheet lays out one row per animation, frames left to right, with
// the body drawn over the collider box so the sprite lines up with physics.
func PlayerSheet(s prefabs.Settings) *ebiten.Image {
	defs := entity.PlayerAnimations(s)
	w, h := entity.SheetSize(defs)
	img := ebiten.NewImage(w, h)
	col := s.Player.Collider
	for _, def := range defs {
		for f := 0; f < def.FrameCount; f++ {
			ox := float32((def.ColStart + f) * def.FrameW)
			oy := float32(def.Row * def.FrameH)
			phase := 2 * math.Pi * float64(f) / float64(def.FrameCount)
			drawRunner(img, ox, oy, col, def.Name, phase)
		}
	}
	return img
}

func drawRunner(img *ebiten.Image, ox, oy float32, col prefabs.ColliderSpec, anim string, phase float64) {
	x := ox + float32(col.OffsetX)
	y := oy + float32(col.OffsetY)
	bw := float32(col.Width)
	bh := float32(col.Height)
	head := bw * 0.45

	stride := float32(0)
	arm := float32(0)
	switch anim {
	case "run":
		stride = float32(math.Sin(phase)) * 14
		arm = -stride
	case "jump":
		arm = -30
	}

	// Hat, head, coat, legs.
	vector.DrawFilledRect(img, x+bw/2-head, y, head*2, head*0.6, coat, false)
	vector.DrawFilledCircle(img, x+bw/2+head*0.9, y, head*0.25, colornames.White, true)
	vector.DrawFilledCircle(img, x+bw/2, y+head*1.4, head, skin, true)
	coatTop := y + head*2.4
	coatH := bh*0.55 - head*2.4
	vector.DrawFilledRect(img, x, coatTop, bw, coatH, coat, false)
	vector.DrawFilledRect(img, x, coatTop+coatH*0.6, bw, 6, colornames.Black, false)
	legTop := coatTop + coatH
	legH := y + bh - legTop
	vector.DrawFilledRect(img, x+4+stride, legTop, bw/2-6, legH, colornames.Darkslategray, false)
	vector.DrawFilledRect(img, x+bw/2+2-stride, legTop, bw/2-6, legH, colornames.Darkslategray, false)
	vector.StrokeLine(img, x, coatTop+10, x-20, coatTop+40+arm, 8, coat, true)
	vector.StrokeLine(img, x+bw, coatTop+10, x+bw+20, coatTop+40+arm, 8, coat, true)
}

// Enemy is a hunched green thief whose feet touch the bottom edge.
func Enemy(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fw := float32(w)
	fh := float32(h)
	vector.DrawFilledCircle(img, fw/2, fh*0.22, fw*0.22, fur, true)
	vector.DrawFilledCircle(img, fw*0.42, fh*0.2, fw*0.04, colornames.Yellow, true)
	vector.DrawFilledCircle(img, fw*0.58, fh*0.2, fw*0.04, colornames.Yellow, true)
	vector.StrokeLine(img, fw*0.38, fh*0.28, fw*0.62, fh*0.3, 3, colornames.Black, true)
	vector.DrawFilledRect(img, fw*0.28, fh*0.38, fw*0.44, fh*0.4, fur, false)
	vector.DrawFilledRect(img, fw*0.3, fh*0.78, fw*0.14, fh*0.22, colornames.Darkolivegreen, false)
	vector.DrawFilledRect(img, fw*0.56, fh*0.78, fw*0.14, fh*0.22, colornames.Darkolivegreen, false)
	vector.StrokeLine(img, fw*0.28, fh*0.42, fw*0.08, fh*0.6, 10, fur, true)
	vector.StrokeLine(img, fw*0.72, fh*0.42, fw*0.92, fh*0.6, 10, fur, true)
	return img
}

// Present is a wrapped box with a ribbon cross and bow.
func Present(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	s := float32(size)
	vector.DrawFilledRect(img, 0, s*0.2, s, s*0.8, colornames.Crimson, false)
	vector.DrawFilledRect(img, s*0.42, s*0.2, s*0.16, s*0.8, colornames.Gold, false)
	vector.DrawFilledRect(img, 0, s*0.5, s, s*0.12, colornames.Gold, false)
	vector.DrawFilledCircle(img, s*0.38, s*0.14, s*0.12, colornames.Gold, true)
	vector.DrawFilledCircle(img, s*0.62, s*0.14, s*0.12, colornames.Gold, true)
	return img
}

func Projectile(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	r := float32(size) / 2
	vector.DrawFilledCircle(img, r, r, r, snow, true)
	return img
}

// BarFrame outlines the progress bar with a label on its left. The fill
// area starts 3*OffsetX from the left edge, matching the score board sprite
// origin.
func BarFrame(bar prefabs.ProgressBarSpec) *ebiten.Image {
	off := float32(bar.OffsetX)
	w := float32(bar.Width) + 4*off
	h := float32(bar.Height) + 12
	img := ebiten.NewImage(int(math.Ceil(float64(w))), int(math.Ceil(float64(h))))
	vector.DrawFilledRect(img, 0, 0, w, h, panel, false)
	vector.StrokeRect(img, 3*off-2, 4, float32(bar.Width)+4, float32(bar.Height)+4, 2, colornames.White, false)
	drawLabel(img, "GIFTS", float64(off/2), float64(h/2), 1, colornames.White, text.AlignStart)
	return img
}

// Instructions is the title screen help panel.
func Instructions() *ebiten.Image {
	const w, h = 520, 170
	img := ebiten.NewImage(w, h)
	vector.DrawFilledRect(img, 0, 0, w, h, panel, false)
	vector.StrokeRect(img, 1, 1, w-2, h-2, 2, colornames.Gold, false)
	lines := []string{
		"Catch the falling presents.",
		"Jump on a thief to squash it.",
		"Touch one and it steals a present.",
		"Arrows or WASD to move, Up or Space to jump.",
	}
	for i, line := range lines {
		drawLabel(img, line, w/2, 34+float64(i)*34, 1.5, colornames.White, text.AlignCenter)
	}
	return img
}

// Banner is the game over headline.
func Banner(msg string, c color.Color) *ebiten.Image {
	const w, h = 640, 140
	img := ebiten.NewImage(w, h)
	vector.DrawFilledRect(img, 0, 0, w, h, panel, false)
	vector.StrokeRect(img, 2, 2, w-4, h-4, 4, c, false)
	drawLabel(img, msg, w/2, h/2, 3, c, text.AlignCenter)
	return img
}

// drawLabel draws msg vertically centered on y, scaled from the 7x13 face.
func drawLabel(dst *ebiten.Image, msg string, x, y, scale float64, c color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, msg, face, op)
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(common.Lerp(float64(x), float64(y), t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}
