package entity

import (
	"fmt"

	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
	"github.com/milk9111/giftrunner/prefabs"
)

// NewScoreBoard builds the score singleton together with its progress bar.
func NewScoreBoard(w *ecs.World, s prefabs.Settings) (ecs.Entity, error) {
	bar := s.ProgressBar
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.ScoreComponent.Kind(), &component.Score{
		Needed: s.Collectibles.TotalNeeded,
	}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("score: add score: %w", err))
	}
	if err := ecs.Add(w, entity, component.ProgressBarComponent.Kind(), &component.ProgressBar{
		X:      bar.X(s.Screen.Width),
		Y:      bar.Y,
		Width:  bar.Width,
		Height: bar.Height,
		Color:  bar.Color.RGBA,
	}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("score: add progress bar: %w", err))
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		X:      float64(s.Screen.Width) / 2,
		Y:      bar.Y + bar.Height/2,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("score: add transform: %w", err))
	}
	// The frame image is centered on the bar, widened for the label on its left.
	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
		Key:     common.ImageBarFrame,
		OriginX: bar.Width/2 + bar.OffsetX*2,
		OriginY: bar.Height/2 + 6,
		Alpha:   1,
	}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("score: add sprite: %w", err))
	}
	if err := ecs.Add(w, entity, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("score: add screen space: %w", err))
	}
	return entity, nil
}
