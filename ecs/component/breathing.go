package component

import "github.com/milk9111/giftrunner/tween"

// Breathing is the idle scale oscillation; the task is paused while the
// player runs or jumps.
type Breathing struct {
	Task *tween.Task
}

var BreathingComponent = NewComponent[Breathing]()
