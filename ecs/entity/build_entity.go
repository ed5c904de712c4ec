package entity

import (
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
)

// SetEntityTransform moves e, keeping its scale.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

// destroyOnError tears down a half-built entity so a failed builder leaves
// nothing behind.
func destroyOnError(w *ecs.World, e ecs.Entity, err error) (ecs.Entity, error) {
	ecs.DestroyEntity(w, e)
	return 0, err
}
