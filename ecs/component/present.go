package component

import "github.com/milk9111/giftrunner/tween"

// Present is one slot of the fixed-size collectible pool. Inactive slots are
// hidden and ignored by collection.
type Present struct {
	Slot    int
	Active  bool
	TargetY float64
	Width   float64
	Height  float64
	// Task is the running drop or bob tween.
	Task *tween.Task
}

var PresentComponent = NewComponent[Present]()

// StolenPresent marks the transient present carried off by an enemy.
type StolenPresent struct{}

var StolenPresentComponent = NewComponent[StolenPresent]()
