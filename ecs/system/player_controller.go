package system

import (
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
)

// PlayerControllerSystem turns Input into velocity and drives the player
// state machine.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := w.Query(
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.PlayerStateMachineComponent.Kind(),
	)
	for _, e := range entities {
		player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
		if !ok {
			continue
		}
		input, ok := ecs.Get(w, e, component.InputComponent.Kind())
		if !ok {
			continue
		}
		vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
		if !ok {
			continue
		}
		fsm, ok := ecs.Get(w, e, component.PlayerStateMachineComponent.Kind())
		if !ok {
			continue
		}

		ctx := p.buildContext(w, e, player, input, vel, fsm)

		switch {
		case input.MoveX < 0:
			vel.X = -player.MoveSpeed
			ctx.FacingLeft(true)
		case input.MoveX > 0:
			vel.X = player.MoveSpeed
			ctx.FacingLeft(false)
		case ctx.IsGrounded():
			vel.X = 0
		}

		if fsm.State == nil {
			fsm.State = playerStateIdle
			fsm.State.Enter(ctx)
		}
		fsm.State.HandleInput(ctx)
		if fsm.Pending != nil && fsm.Pending != fsm.State {
			fsm.State.Exit(ctx)
			fsm.State = fsm.Pending
			fsm.State.Enter(ctx)
		}
		fsm.Pending = nil
		fsm.State.Update(ctx)
	}
}

func (p *PlayerControllerSystem) buildContext(w *ecs.World, e ecs.Entity, player *component.Player, input *component.Input, vel *component.Velocity, fsm *component.PlayerStateMachine) *component.PlayerStateContext {
	return &component.PlayerStateContext{
		Input:  input,
		Player: player,
		GetVelocity: func() (float64, float64) {
			return vel.X, vel.Y
		},
		SetVelocity: func(x, y float64) {
			vel.X = x
			vel.Y = y
		},
		IsGrounded: func() bool {
			return playerGrounded(w, e)
		},
		ChangeState: func(state component.PlayerState) {
			fsm.Pending = state
		},
		ChangeAnimation: func(name string, restart bool) {
			anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
			if !ok {
				return
			}
			if anim.Current == name && !restart {
				return
			}
			anim.Current = name
			anim.Frame = 0
			anim.FrameTimer = 0
			anim.Playing = true
		},
		FacingLeft: func(left bool) {
			player.FacingLeft = left
			if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
				sprite.FacingLeft = left
			}
		},
		SetBreathing: func(active bool) {
			breathing, ok := ecs.Get(w, e, component.BreathingComponent.Kind())
			if !ok {
				return
			}
			if active {
				breathing.Task.Resume()
				return
			}
			breathing.Task.Pause()
			if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
				t.ScaleX = 1
				t.ScaleY = 1
			}
		},
	}
}
