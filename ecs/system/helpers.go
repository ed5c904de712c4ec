package system

import (
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
)

// colliderRect returns the top-left anchored collider of a body centered on
// its transform.
func colliderRect(t *component.Transform, body *component.PhysicsBody) (x, y, w, h float64) {
	cx := t.X + body.OffsetX
	cy := t.Y + body.OffsetY
	return cx - body.Width/2, cy - body.Height/2, body.Width, body.Height
}

func playerEntity(w *ecs.World) (ecs.Entity, bool) {
	return ecs.First(w, component.PlayerTagComponent.Kind())
}

func playerGrounded(w *ecs.World, player ecs.Entity) bool {
	pc, ok := ecs.Get(w, player, component.PlayerCollisionComponent.Kind())
	return ok && pc.Grounded
}

func direction(from, to float64) float64 {
	if to > from {
		return 1
	}
	return -1
}
