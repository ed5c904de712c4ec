package component

import "github.com/milk9111/giftrunner/tween"

type Player struct {
	MoveSpeed    float64
	JumpVelocity float64
	StompBounce  float64
	// StompMaxY: a contact counts as a stomp when the collider top is above it.
	StompMaxY float64
	DownBoost bool

	FacingLeft bool
	Invincible bool
	Flicker    *tween.Task
}

var PlayerComponent = NewComponent[Player]()
