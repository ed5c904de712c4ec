package system

import (
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
)

// ScrollSystem pins the player inside the scroll zone and moves the world
// instead: while moving toward an edge past the threshold, every Scrollable
// shifts by Speed the other way and the background tile offset follows the
// player.
type ScrollSystem struct {
	ScreenWidth float64
	Threshold   float64
	Speed       float64
}

func NewScrollSystem(screenWidth, threshold, speed float64) *ScrollSystem {
	return &ScrollSystem{ScreenWidth: screenWidth, Threshold: threshold, Speed: speed}
}

func (s *ScrollSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	player, ok := playerEntity(w)
	if !ok {
		return
	}
	input, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	var shift float64
	switch {
	case input.MoveX < 0 && t.X <= s.Threshold:
		t.X = s.Threshold
		shift = s.Speed
	case input.MoveX > 0 && t.X >= s.ScreenWidth-s.Threshold:
		t.X = s.ScreenWidth - s.Threshold
		shift = -s.Speed
	}

	if body, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind()); ok {
		half := body.Width / 2
		if t.X < half {
			t.X = half
		} else if t.X > s.ScreenWidth-half {
			t.X = s.ScreenWidth - half
		}
	}

	if shift == 0 {
		return
	}
	ecs.ForEach2(w, component.ScrollableComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Scrollable, st *component.Transform) {
		st.X += shift
	})
	ecs.ForEach(w, component.BackgroundComponent.Kind(), func(_ ecs.Entity, bg *component.Background) {
		bg.TileOffsetX -= shift
	})
}
