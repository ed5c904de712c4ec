package entity

import (
	"fmt"

	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
	"github.com/milk9111/giftrunner/prefabs"
)

// NewEnemy spawns a walker at (x, spawn_y) with a collider reduced from its
// sprite and sitting at the sprite's feet.
func NewEnemy(w *ecs.World, s prefabs.Settings, x float64) (ecs.Entity, error) {
	cw, ch := s.Enemies.ColliderSize()
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.EnemyComponent.Kind(), &component.Enemy{Speed: s.Enemies.Speed}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("enemy: add enemy component: %w", err))
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		X:      x,
		Y:      s.Enemies.SpawnY,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("enemy: add transform: %w", err))
	}
	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("enemy: add velocity: %w", err))
	}
	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:      cw,
		Height:     ch,
		Mass:       1,
		Elasticity: s.Enemies.Bounce,
	}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("enemy: add physics body: %w", err))
	}
	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
		Key:     common.ImageEnemy,
		OriginX: s.Enemies.SpriteWidth / 2,
		OriginY: s.Enemies.SpriteHeight - ch/2,
		Alpha:   1,
	}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("enemy: add sprite: %w", err))
	}
	if err := ecs.Add(w, entity, component.ScrollableComponent.Kind(), &component.Scrollable{}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("enemy: add scrollable: %w", err))
	}
	if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layerWorld}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("enemy: add render layer: %w", err))
	}
	return entity, nil
}
