package entity

import (
	"fmt"

	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
	"github.com/milk9111/giftrunner/prefabs"
)

// NewPresentPool creates pool_size hidden, inactive present slots. The pool
// never grows afterwards.
func NewPresentPool(w *ecs.World, s prefabs.Settings) ([]ecs.Entity, error) {
	size := s.Collectibles.Size
	slots := make([]ecs.Entity, 0, s.Collectibles.PoolSize)
	for i := 0; i < s.Collectibles.PoolSize; i++ {
		entity := ecs.CreateEntity(w)
		if err := ecs.Add(w, entity, component.PresentComponent.Kind(), &component.Present{
			Slot:   i,
			Width:  size,
			Height: size,
		}); err != nil {
			_, err = destroyOnError(w, entity, fmt.Errorf("present %d: add present: %w", i, err))
			return slots, err
		}
		if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
			Y:      s.Collectibles.StartY,
			ScaleX: 1,
			ScaleY: 1,
		}); err != nil {
			_, err = destroyOnError(w, entity, fmt.Errorf("present %d: add transform: %w", i, err))
			return slots, err
		}
		if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
			Key:     common.ImagePresent,
			OriginX: size / 2,
			OriginY: size / 2,
			Alpha:   1,
			Hidden:  true,
		}); err != nil {
			_, err = destroyOnError(w, entity, fmt.Errorf("present %d: add sprite: %w", i, err))
			return slots, err
		}
		if err := ecs.Add(w, entity, component.ScrollableComponent.Kind(), &component.Scrollable{}); err != nil {
			_, err = destroyOnError(w, entity, fmt.Errorf("present %d: add scrollable: %w", i, err))
			return slots, err
		}
		if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layerWorld}); err != nil {
			_, err = destroyOnError(w, entity, fmt.Errorf("present %d: add render layer: %w", i, err))
			return slots, err
		}
		slots = append(slots, entity)
	}
	return slots, nil
}

// NewStolenPresent spawns the present carried off by an enemy. It flies with
// the given velocity, ignores gravity and expires after flight_ms.
func NewStolenPresent(w *ecs.World, s prefabs.Settings, x, y, vx, vy float64) (ecs.Entity, error) {
	size := s.Collectibles.Size
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.StolenPresentComponent.Kind(), &component.StolenPresent{}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("stolen present: add tag: %w", err))
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		X:      x,
		Y:      y,
		ScaleX: s.Steal.Scale,
		ScaleY: s.Steal.Scale,
	}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("stolen present: add transform: %w", err))
	}
	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), &component.Velocity{X: vx, Y: vy}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("stolen present: add velocity: %w", err))
	}
	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
		Key:     common.ImagePresent,
		OriginX: size / 2,
		OriginY: size / 2,
		Alpha:   1,
	}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("stolen present: add sprite: %w", err))
	}
	if err := ecs.Add(w, entity, component.TTLComponent.Kind(), &component.TTL{
		Frames: common.Frames(prefabs.Millis(s.Steal.FlightMS)),
	}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("stolen present: add ttl: %w", err))
	}
	if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layerEffects}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("stolen present: add render layer: %w", err))
	}
	return entity, nil
}
