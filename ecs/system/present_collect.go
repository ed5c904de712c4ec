package system

import (
	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
)

// PresentCollectSystem hands active presents overlapping the player's
// collider back to the pool and scores them.
type PresentCollectSystem struct{}

func NewPresentCollectSystem() *PresentCollectSystem {
	return &PresentCollectSystem{}
}

func (p *PresentCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, ok := playerEntity(w)
	if !ok {
		return
	}
	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	body, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
	if !ok {
		return
	}
	px, py, pw, ph := colliderRect(pt, body)

	ecs.ForEach2(w, component.PresentComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, present *component.Present, t *component.Transform) {
		if !present.Active {
			return
		}
		x := t.X - present.Width/2
		y := t.Y - present.Height/2
		if !common.Intersects(px, py, pw, ph, x, y, present.Width, present.Height) {
			return
		}
		releasePresent(w, e, present)
		PlaySound(w, common.SoundCollect)
		AdjustScore(w, 1)
	})
}

// releasePresent stops the slot's motion and hides it until the spawner
// reuses it.
func releasePresent(w *ecs.World, e ecs.Entity, present *component.Present) {
	present.Task.Cancel()
	present.Task = nil
	present.Active = false
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Hidden = true
	}
}
