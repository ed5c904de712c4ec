package input

// Button names.
const (
	ButtonLeft  = "left"
	ButtonRight = "right"
	ButtonJump  = "jump"
)

const (
	buttonSize   = 96
	buttonMargin = 24
	buttonGap    = 16
)

// Button is an on-screen control in screen pixels.
type Button struct {
	Name    string
	X, Y    float64
	W, H    float64
	Pressed bool
}

func (b Button) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Pointer is one touch or the mouse while it is held down.
type Pointer struct {
	ID   int
	X, Y float64
}

// Overlay is the touch control layer: Left and Right at the bottom left,
// Jump at the bottom right. Feed it the held pointers once per tick.
//
// A pointer pressing a button holds it down. Left and Right also go down
// when a held pointer slides over them, so a thumb can rock between the two.
// Jump only stays down while the pointer that pressed it remains on it.
// Left and Right are never down together; the one entered last wins.
type Overlay struct {
	buttons []Button
	started map[int]string
	state   State
	// Raw held flags from the previous tick and the direction entered last.
	leftHeld, rightHeld bool
	last                string
	// Visible is set once a touch has been seen or when forced on.
	Visible bool
}

func NewOverlay(screenWidth, screenHeight int) *Overlay {
	w := float64(screenWidth)
	h := float64(screenHeight)
	y := h - buttonSize - buttonMargin
	return &Overlay{
		buttons: []Button{
			{Name: ButtonLeft, X: buttonMargin, Y: y, W: buttonSize, H: buttonSize},
			{Name: ButtonRight, X: buttonMargin + buttonSize + buttonGap, Y: y, W: buttonSize, H: buttonSize},
			{Name: ButtonJump, X: w - buttonSize - buttonMargin, Y: y, W: buttonSize, H: buttonSize},
		},
		started: make(map[int]string),
	}
}

// Buttons returns a copy of the buttons with their pressed flags.
func (o *Overlay) Buttons() []Button {
	out := make([]Button, len(o.buttons))
	copy(out, o.buttons)
	return out
}

func (o *Overlay) buttonAt(x, y float64) string {
	for _, b := range o.buttons {
		if b.Contains(x, y) {
			return b.Name
		}
	}
	return ""
}

// Update applies the pointers currently held down. Pointers missing from
// the list have been released.
func (o *Overlay) Update(pointers []Pointer) {
	held := make(map[int]bool, len(pointers))
	var left, right, jump bool
	for _, p := range pointers {
		held[p.ID] = true
		over := o.buttonAt(p.X, p.Y)
		if _, ok := o.started[p.ID]; !ok {
			o.started[p.ID] = over
		}
		switch over {
		case ButtonLeft:
			left = true
		case ButtonRight:
			right = true
		case ButtonJump:
			jump = jump || o.started[p.ID] == ButtonJump
		}
	}
	for id := range o.started {
		if !held[id] {
			delete(o.started, id)
		}
	}

	enteredLeft := left && !o.leftHeld
	enteredRight := right && !o.rightHeld
	switch {
	case enteredLeft:
		o.last = ButtonLeft
	case enteredRight:
		o.last = ButtonRight
	}
	o.leftHeld, o.rightHeld = left, right

	if left && right {
		if o.last == ButtonRight {
			left = false
		} else {
			right = false
		}
	}

	o.state.Left = left
	o.state.Right = right
	o.state.Up = jump
	for i := range o.buttons {
		switch o.buttons[i].Name {
		case ButtonLeft:
			o.buttons[i].Pressed = left
		case ButtonRight:
			o.buttons[i].Pressed = right
		case ButtonJump:
			o.buttons[i].Pressed = jump
		}
	}
}

func (o *Overlay) State() State {
	if o == nil {
		return State{}
	}
	return o.state
}

// Reset releases every button.
func (o *Overlay) Reset() {
	clear(o.started)
	o.state = State{}
	o.leftHeld, o.rightHeld = false, false
	o.last = ""
	for i := range o.buttons {
		o.buttons[i].Pressed = false
	}
}
