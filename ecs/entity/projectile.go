package entity

import (
	"fmt"

	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
	"github.com/milk9111/giftrunner/prefabs"
)

const projectileSize = 12

// NewProjectilePool creates the inactive projectile slots.
func NewProjectilePool(w *ecs.World, s prefabs.Settings) ([]ecs.Entity, error) {
	slots := make([]ecs.Entity, 0, s.Projectiles.PoolSize)
	for i := 0; i < s.Projectiles.PoolSize; i++ {
		entity := ecs.CreateEntity(w)
		if err := ecs.Add(w, entity, component.ProjectileComponent.Kind(), &component.Projectile{
			Slot:   i,
			Width:  projectileSize,
			Height: projectileSize,
		}); err != nil {
			_, err = destroyOnError(w, entity, fmt.Errorf("projectile %d: add projectile: %w", i, err))
			return slots, err
		}
		if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
			_, err = destroyOnError(w, entity, fmt.Errorf("projectile %d: add transform: %w", i, err))
			return slots, err
		}
		if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
			Key:     common.ImageProjectile,
			OriginX: projectileSize / 2,
			OriginY: projectileSize / 2,
			Alpha:   1,
			Hidden:  true,
		}); err != nil {
			_, err = destroyOnError(w, entity, fmt.Errorf("projectile %d: add sprite: %w", i, err))
			return slots, err
		}
		if err := ecs.Add(w, entity, component.ScrollableComponent.Kind(), &component.Scrollable{}); err != nil {
			_, err = destroyOnError(w, entity, fmt.Errorf("projectile %d: add scrollable: %w", i, err))
			return slots, err
		}
		slots = append(slots, entity)
	}
	return slots, nil
}
