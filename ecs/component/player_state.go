package component

// PlayerState defines the interface for player state machine states.
// Each state owns its own enter/exit, input handling, and update logic.
type PlayerState interface {
	Name() string
	Enter(ctx *PlayerStateContext)
	Exit(ctx *PlayerStateContext)
	HandleInput(ctx *PlayerStateContext)
	Update(ctx *PlayerStateContext)
}

// PlayerStateContext gives a state controlled access to the player entity.
// Callbacks keep the states free of ECS lookups.
type PlayerStateContext struct {
	Input           *Input
	Player          *Player
	GetVelocity     func() (x, y float64)
	SetVelocity     func(x, y float64)
	IsGrounded      func() bool
	ChangeState     func(state PlayerState)
	ChangeAnimation func(animation string, restart bool)
	FacingLeft      func(facingLeft bool)
	SetBreathing    func(active bool)
}

// PlayerStateMachine stores the active and pending states for the player.
type PlayerStateMachine struct {
	State   PlayerState
	Pending PlayerState
}

var PlayerStateMachineComponent = NewComponent[PlayerStateMachine]()
