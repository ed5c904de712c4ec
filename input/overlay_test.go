package input

import "testing"

const (
	leftX  = 60
	rightX = 180
	jumpX  = 880
	padY   = 460
)

func TestOverlaySequences(t *testing.T) {
	cases := []struct {
		name   string
		frames [][]Pointer
		want   State
	}{
		{
			name:   "press_left",
			frames: [][]Pointer{{{ID: 1, X: leftX, Y: padY}}},
			want:   State{Left: true},
		},
		{
			name: "release_left",
			frames: [][]Pointer{
				{{ID: 1, X: leftX, Y: padY}},
				nil,
			},
			want: State{},
		},
		{
			name: "drag_left_to_right",
			frames: [][]Pointer{
				{{ID: 1, X: leftX, Y: padY}},
				{{ID: 1, X: rightX, Y: padY}},
			},
			want: State{Right: true},
		},
		{
			name: "drag_off_buttons",
			frames: [][]Pointer{
				{{ID: 1, X: leftX, Y: padY}},
				{{ID: 1, X: 480, Y: 200}},
			},
			want: State{},
		},
		{
			name: "drag_onto_left_from_empty_space",
			frames: [][]Pointer{
				{{ID: 1, X: 480, Y: 200}},
				{{ID: 1, X: leftX, Y: padY}},
			},
			want: State{Left: true},
		},
		{
			name: "second_touch_on_right_wins",
			frames: [][]Pointer{
				{{ID: 1, X: leftX, Y: padY}},
				{{ID: 1, X: leftX, Y: padY}, {ID: 2, X: rightX, Y: padY}},
			},
			want: State{Right: true},
		},
		{
			name:   "both_pressed_same_frame_prefers_left",
			frames: [][]Pointer{{{ID: 1, X: leftX, Y: padY}, {ID: 2, X: rightX, Y: padY}}},
			want:   State{Left: true},
		},
		{
			name:   "run_and_jump",
			frames: [][]Pointer{{{ID: 1, X: rightX, Y: padY}, {ID: 2, X: jumpX, Y: padY}}},
			want:   State{Right: true, Up: true},
		},
		{
			name: "jump_needs_press_on_button",
			frames: [][]Pointer{
				{{ID: 1, X: 700, Y: padY}},
				{{ID: 1, X: jumpX, Y: padY}},
			},
			want: State{},
		},
		{
			name: "jump_released_when_pointer_leaves",
			frames: [][]Pointer{
				{{ID: 1, X: jumpX, Y: padY}},
				{{ID: 1, X: 700, Y: padY}},
			},
			want: State{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := NewOverlay(960, 540)
			for _, frame := range c.frames {
				o.Update(frame)
			}
			if got := o.State(); got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
			if o.State().Left && o.State().Right {
				t.Fatalf("left and right down together")
			}
		})
	}
}

func TestOverlayHoldingBothKeepsWinner(t *testing.T) {
	cases := []struct {
		name  string
		first Pointer
		want  State
	}{
		{"left_then_right", Pointer{ID: 1, X: leftX, Y: padY}, State{Right: true}},
		{"right_then_left", Pointer{ID: 1, X: rightX, Y: padY}, State{Left: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := NewOverlay(960, 540)
			o.Update([]Pointer{c.first})
			other := Pointer{ID: 2, X: rightX, Y: padY}
			if c.first.X == rightX {
				other.X = leftX
			}
			for frame := 1; frame <= 5; frame++ {
				o.Update([]Pointer{c.first, other})
				if got := o.State(); got != c.want {
					t.Fatalf("frame %d: expected %+v, got %+v", frame, c.want, got)
				}
			}

			// Lifting the winner hands control back to the other button.
			o.Update([]Pointer{c.first})
			if got := o.State(); got == c.want || (!got.Left && !got.Right) {
				t.Fatalf("expected the remaining button to take over, got %+v", got)
			}
		})
	}
}

func TestOverlayButtonsReflectState(t *testing.T) {
	o := NewOverlay(960, 540)
	o.Update([]Pointer{{ID: 7, X: jumpX, Y: padY}})
	for _, b := range o.Buttons() {
		want := b.Name == ButtonJump
		if b.Pressed != want {
			t.Fatalf("button %s pressed=%v, want %v", b.Name, b.Pressed, want)
		}
	}
	o.Reset()
	if o.State() != (State{}) {
		t.Fatalf("expected reset state, got %+v", o.State())
	}
}

func TestStateMoveXAndMerge(t *testing.T) {
	cases := []struct {
		name  string
		state State
		want  float64
	}{
		{"none", State{}, 0},
		{"left", State{Left: true}, -1},
		{"right", State{Right: true}, 1},
		{"both_left_priority", State{Left: true, Right: true}, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.state.MoveX(); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}

	merged := State{Left: true}.Merge(State{Up: true, Down: true})
	if merged != (State{Left: true, Up: true, Down: true}) {
		t.Fatalf("unexpected merge %+v", merged)
	}
}
