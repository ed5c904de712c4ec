package system

import (
	"image"

	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
)

// AnimationSystem advances sheet animations and points the sprite at the
// current frame.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}

		if anim.Playing && def.FPS > 0 {
			// Advance frame every N ticks based on FPS and 60 TPS
			ticksPerFrame := int(float64(common.TPS) / def.FPS)
			if ticksPerFrame < 1 {
				ticksPerFrame = 1
			}

			anim.FrameTimer++
			if anim.FrameTimer >= ticksPerFrame {
				anim.FrameTimer = 0
				anim.Frame++
				if anim.Frame >= def.FrameCount {
					if def.Loop {
						anim.Frame = 0
					} else {
						anim.Frame = def.FrameCount - 1
						anim.Playing = false
					}
				}
			}
		}
		if anim.Frame >= def.FrameCount {
			anim.Frame = def.FrameCount - 1
		}

		x := def.ColStart*def.FrameW + anim.Frame*def.FrameW
		y := def.Row * def.FrameH
		sprite.Source = image.Rect(x, y, x+def.FrameW, y+def.FrameH)
		sprite.UseSource = true
	})
}
