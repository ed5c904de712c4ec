package system

import (
	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
)

// MotionSystem integrates velocity for entities outside the physics space,
// such as enemies in steal flight and stolen presents. Gravity does not
// apply to them.
type MotionSystem struct{}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (m *MotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := common.FrameDuration.Seconds()
	ecs.ForEach2(w, component.VelocityComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, v *component.Velocity, t *component.Transform) {
		if ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			return
		}
		t.X += v.X * dt
		t.Y += v.Y * dt
	})
}
