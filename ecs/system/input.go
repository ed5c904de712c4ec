package system

import (
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
	"github.com/milk9111/giftrunner/input"
)

// InputSystem copies the source's direction flags into every Input
// component.
type InputSystem struct {
	source input.Source
}

func NewInputSystem(source input.Source) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil || i.source == nil {
		return
	}
	state := i.source.State()
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, in *component.Input) {
		in.MoveX = state.MoveX()
		in.Jump = state.Up
		in.Down = state.Down
	})
}
