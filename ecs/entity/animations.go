package entity

import (
	"github.com/milk9111/giftrunner/ecs/component"
	"github.com/milk9111/giftrunner/prefabs"
)

// PlayerAnimations lays the player sheet out one animation per row, in the
// order returned by AnimationsSpec.Rows.
func PlayerAnimations(s prefabs.Settings) map[string]component.AnimationDef {
	defs := make(map[string]component.AnimationDef, 3)
	for row, a := range s.Animations.Rows() {
		defs[a.Name] = component.AnimationDef{
			Name:       a.Name,
			Row:        row,
			FrameCount: a.Frames,
			FrameW:     s.Character.FrameWidth,
			FrameH:     s.Character.FrameHeight,
			FPS:        a.FPS,
			Loop:       a.Loop,
		}
	}
	return defs
}

// SheetSize returns the pixel size of the player sheet needed by defs.
func SheetSize(defs map[string]component.AnimationDef) (w, h int) {
	for _, def := range defs {
		if cw := (def.ColStart + def.FrameCount) * def.FrameW; cw > w {
			w = cw
		}
		if rh := (def.Row + 1) * def.FrameH; rh > h {
			h = rh
		}
	}
	return w, h
}
