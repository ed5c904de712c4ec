// Package device polls ebiten for keyboard, gamepad, mouse and touch input
// and folds it into an input.State.
package device

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/giftrunner/input"
)

const (
	stickDeadzone = 0.2
	mousePointer  = -1
)

// Device is an input.Source backed by ebiten. Poll it once per tick before
// reading State.
type Device struct {
	overlay     *input.Overlay
	state       input.State
	anyPressed  bool
	pointers    []input.Pointer
	touchIDs    []ebiten.TouchID
	justTouches []ebiten.TouchID
	keys        []ebiten.Key
}

// New wraps overlay. When forceTouch is set the overlay is shown from the
// start instead of after the first touch.
func New(overlay *input.Overlay, forceTouch bool) *Device {
	if forceTouch {
		overlay.Visible = true
	}
	return &Device{overlay: overlay}
}

func (d *Device) Overlay() *input.Overlay {
	return d.overlay
}

func (d *Device) State() input.State {
	return d.state
}

// AnyJustPressed reports whether any key, mouse button or touch went down
// this tick.
func (d *Device) AnyJustPressed() bool {
	return d.anyPressed
}

func (d *Device) Poll() {
	keyboard := input.State{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeySpace),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}

	pad := input.State{}
	padPressed := false
	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		pad.Left = x < -stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		pad.Right = x > stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		pad.Down = y > stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom)
		pad.Up = ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		padPressed = inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) ||
			inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}

	d.touchIDs = ebiten.AppendTouchIDs(d.touchIDs[:0])
	if len(d.touchIDs) > 0 {
		d.overlay.Visible = true
	}
	d.pointers = d.pointers[:0]
	for _, id := range d.touchIDs {
		x, y := ebiten.TouchPosition(id)
		d.pointers = append(d.pointers, input.Pointer{ID: int(id), X: float64(x), Y: float64(y)})
	}
	if d.overlay.Visible && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		d.pointers = append(d.pointers, input.Pointer{ID: mousePointer, X: float64(x), Y: float64(y)})
	}
	d.overlay.Update(d.pointers)

	d.state = keyboard.Merge(pad).Merge(d.overlay.State())

	d.keys = inpututil.AppendJustPressedKeys(d.keys[:0])
	d.justTouches = inpututil.AppendJustPressedTouchIDs(d.justTouches[:0])
	d.anyPressed = len(d.keys) > 0 || len(d.justTouches) > 0 || padPressed ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
