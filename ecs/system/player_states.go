package system

import "github.com/milk9111/giftrunner/ecs/component"

// Player state singletons (avoid allocations on transitions).
var (
	playerStateIdle component.PlayerState = &playerIdleState{}
	playerStateRun  component.PlayerState = &playerRunState{}
	playerStateJump component.PlayerState = &playerJumpState{}
)

type playerIdleState struct{}

type playerRunState struct{}

type playerJumpState struct{}

func (playerIdleState) Name() string { return "idle" }
func (playerIdleState) Enter(ctx *component.PlayerStateContext) {
	ctx.ChangeAnimation("idle", false)
	ctx.SetBreathing(true)
}
func (playerIdleState) Exit(ctx *component.PlayerStateContext) {}
func (playerIdleState) HandleInput(ctx *component.PlayerStateContext) {
	selectPlayerState(ctx)
}
func (playerIdleState) Update(ctx *component.PlayerStateContext) {}

func (playerRunState) Name() string { return "run" }
func (playerRunState) Enter(ctx *component.PlayerStateContext) {
	ctx.ChangeAnimation("run", false)
	ctx.SetBreathing(false)
}
func (playerRunState) Exit(ctx *component.PlayerStateContext) {}
func (playerRunState) HandleInput(ctx *component.PlayerStateContext) {
	selectPlayerState(ctx)
}
func (playerRunState) Update(ctx *component.PlayerStateContext) {}

func (playerJumpState) Name() string { return "jump" }
func (playerJumpState) Enter(ctx *component.PlayerStateContext) {
	ctx.ChangeAnimation("jump", true)
	ctx.SetBreathing(false)
}
func (playerJumpState) Exit(ctx *component.PlayerStateContext) {}
func (playerJumpState) HandleInput(ctx *component.PlayerStateContext) {
	selectPlayerState(ctx)
}
func (playerJumpState) Update(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.Input == nil || ctx.Player == nil || ctx.IsGrounded() {
		return
	}
	if ctx.Input.Down && ctx.Player.DownBoost {
		x, _ := ctx.GetVelocity()
		ctx.SetVelocity(x, -ctx.Player.JumpVelocity)
	}
}

// selectPlayerState applies the per-tick priority: launch from the ground,
// stay airborne, run while moving, idle otherwise.
func selectPlayerState(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.Input == nil || ctx.Player == nil || ctx.ChangeState == nil {
		return
	}
	grounded := ctx.IsGrounded()
	vx, _ := ctx.GetVelocity()

	switch {
	case grounded && ctx.Input.Jump:
		ctx.SetVelocity(vx, ctx.Player.JumpVelocity)
		// a landing hop re-launches from inside the jump state
		ctx.ChangeAnimation("jump", true)
		ctx.ChangeState(playerStateJump)
	case !grounded:
		ctx.ChangeState(playerStateJump)
	case vx != 0:
		ctx.ChangeState(playerStateRun)
	default:
		ctx.ChangeState(playerStateIdle)
	}
}
