package entity

import (
	"fmt"

	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
	"github.com/milk9111/giftrunner/prefabs"
	"github.com/milk9111/giftrunner/tween"
)

// NewBackground builds the tiled backdrop.
func NewBackground(w *ecs.World) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.BackgroundComponent.Kind(), &component.Background{Key: common.ImageBackground}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("background: add background: %w", err))
	}
	if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layerBackground}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("background: add render layer: %w", err))
	}
	return entity, nil
}

// NewGround builds the invisible static floor every body lands on and the
// screen-sized bounds around it.
func NewGround(w *ecs.World, s prefabs.Settings) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.GroundComponent.Kind(), &component.Ground{
		Top:        s.World.FloorTop,
		Width:      float64(s.Screen.Width),
		Elasticity: 1,
	}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("ground: add ground: %w", err))
	}
	return entity, nil
}

// Level holds the entities of one round.
type Level struct {
	Player      ecs.Entity
	Score       ecs.Entity
	Presents    []ecs.Entity
	Projectiles []ecs.Entity
}

// BuildLevel populates w with everything a round starts with.
func BuildLevel(w *ecs.World, s prefabs.Settings, sched *tween.Scheduler) (*Level, error) {
	if _, err := NewBackground(w); err != nil {
		return nil, err
	}
	if _, err := NewGround(w, s); err != nil {
		return nil, err
	}
	player, err := NewPlayer(w, s, sched)
	if err != nil {
		return nil, err
	}
	score, err := NewScoreBoard(w, s)
	if err != nil {
		return nil, err
	}
	presents, err := NewPresentPool(w, s)
	if err != nil {
		return nil, err
	}
	projectiles, err := NewProjectilePool(w, s)
	if err != nil {
		return nil, err
	}
	return &Level{
		Player:      player,
		Score:       score,
		Presents:    presents,
		Projectiles: projectiles,
	}, nil
}
