package entity

import (
	"fmt"

	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
	"github.com/milk9111/giftrunner/prefabs"
	"github.com/milk9111/giftrunner/tween"
	"github.com/tanema/gween/ease"
)

const (
	layerBackground = iota
	layerWorld
	layerPlayer
	layerEffects
)

// NewPlayer builds the controllable runner standing on the floor at start_x.
func NewPlayer(w *ecs.World, s prefabs.Settings, sched *tween.Scheduler) (ecs.Entity, error) {
	entity, err := NewIdlePlayer(w, s, sched)
	if err != nil {
		return 0, err
	}

	col := s.Player.Collider
	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("player: add player tag: %w", err))
	}
	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:    s.Player.Speed,
		JumpVelocity: s.Player.JumpVelocity,
		StompBounce:  s.Player.StompBounce,
		StompMaxY:    s.Player.StompMaxY,
		DownBoost:    s.Player.DownBoost,
	}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("player: add player: %w", err))
	}
	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("player: add input: %w", err))
	}
	if err := ecs.Add(w, entity, component.PlayerStateMachineComponent.Kind(), &component.PlayerStateMachine{}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("player: add state machine: %w", err))
	}
	if err := ecs.Add(w, entity, component.PlayerCollisionComponent.Kind(), &component.PlayerCollision{}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("player: add collision: %w", err))
	}
	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("player: add velocity: %w", err))
	}
	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:      col.Width,
		Height:     col.Height,
		Mass:       1,
		Elasticity: s.Player.Bounce,
	}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("player: add physics body: %w", err))
	}
	return entity, nil
}

// NewIdlePlayer builds the decorative, physics-free runner shown on the title
// screen. NewPlayer extends it with control and physics.
func NewIdlePlayer(w *ecs.World, s prefabs.Settings, sched *tween.Scheduler) (ecs.Entity, error) {
	col := s.Player.Collider
	entity := ecs.CreateEntity(w)

	transform := &component.Transform{
		X:      s.Player.StartX,
		Y:      s.World.FloorTop - col.Height/2,
		ScaleX: 1,
		ScaleY: 1,
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), transform); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("player: add transform: %w", err))
	}
	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
		Key:     common.ImagePlayerSheet,
		OriginX: col.OffsetX + col.Width/2,
		OriginY: col.OffsetY + col.Height/2,
		Alpha:   1,
	}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("player: add sprite: %w", err))
	}
	if err := ecs.Add(w, entity, component.AnimationComponent.Kind(), &component.Animation{
		Defs:    PlayerAnimations(s),
		Current: "idle",
		Playing: true,
	}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("player: add animation: %w", err))
	}
	if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layerPlayer}); err != nil {
		return destroyOnError(w, entity, fmt.Errorf("player: add render layer: %w", err))
	}

	peak := s.Player.BreathingScale
	task := sched.Tween(tween.Config{
		Duration: prefabs.Millis(s.Player.BreathingMS),
		Ease:     ease.InOutSine,
		Yoyo:     true,
		Repeat:   tween.Forever,
		OnUpdate: func(v float64) {
			t, ok := ecs.Get(w, entity, component.TransformComponent.Kind())
			if !ok {
				return
			}
			t.ScaleX = common.Lerp(1, peak, v)
			t.ScaleY = t.ScaleX
		},
	})
	if err := ecs.Add(w, entity, component.BreathingComponent.Kind(), &component.Breathing{Task: task}); err != nil {
		task.Cancel()
		return destroyOnError(w, entity, fmt.Errorf("player: add breathing: %w", err))
	}
	return entity, nil
}
