package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
)

var colliderColor = color.RGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}

// RenderSystem draws the world: the tiled background, then sprites by
// layer, then screen space sprites, then progress bar fills.
type RenderSystem struct {
	// Debug outlines physics colliders.
	Debug bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	ecs.ForEach(w, component.BackgroundComponent.Kind(), func(_ ecs.Entity, bg *component.Background) {
		drawTiled(screen, Image(bg.Key), bg.TileOffsetX)
	})

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		si := ecs.Has(w, entities[i], component.ScreenSpaceComponent.Kind())
		sj := ecs.Has(w, entities[j], component.ScreenSpaceComponent.Kind())
		if si != sj {
			return sj
		}
		li := layerOf(w, entities[i])
		lj := layerOf(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok {
			continue
		}
		drawSprite(screen, t, s)
	}

	ecs.ForEach(w, component.ProgressBarComponent.Kind(), func(_ ecs.Entity, bar *component.ProgressBar) {
		fill := float32(bar.Width * math.Max(0, math.Min(1, bar.Displayed)))
		if fill <= 0 {
			return
		}
		vector.DrawFilledRect(screen, float32(bar.X), float32(bar.Y), fill, float32(bar.Height), bar.Color, false)
	})

	if r.Debug {
		ecs.ForEach2(w, component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, t *component.Transform, body *component.PhysicsBody) {
			x := float32(t.X + body.OffsetX - body.Width/2)
			y := float32(t.Y + body.OffsetY - body.Height/2)
			vector.StrokeRect(screen, x, y, float32(body.Width), float32(body.Height), 1, colliderColor, false)
		})
	}
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}

// drawSprite places the sprite origin at the transform, scaling and
// mirroring around that point.
func drawSprite(screen *ebiten.Image, t *component.Transform, s *component.Sprite) {
	if s.Hidden || s.Alpha <= 0 {
		return
	}
	img := Image(s.Key)
	if img == nil {
		return
	}
	if s.UseSource {
		if sub, ok := img.SubImage(s.Source).(*ebiten.Image); ok {
			img = sub
		}
	}

	sx := t.ScaleX
	if sx == 0 {
		sx = 1
	}
	sy := t.ScaleY
	if sy == 0 {
		sy = 1
	}
	if s.FacingLeft {
		sx = -sx
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-s.OriginX, -s.OriginY)
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(t.X, t.Y)
	op.ColorScale.ScaleAlpha(float32(math.Min(1, s.Alpha)))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// drawTiled repeats img across the screen width starting at offset.
func drawTiled(screen, img *ebiten.Image, offset float64) {
	if img == nil {
		return
	}
	tw := float64(img.Bounds().Dx())
	if tw <= 0 {
		return
	}
	x := math.Mod(offset, tw)
	if x > 0 {
		x -= tw
	}
	sw := float64(screen.Bounds().Dx())
	for ; x < sw; x += tw {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, 0)
		screen.DrawImage(img, op)
	}
}
