// Package input turns raw keyboard and pointer activity into the direction
// flags the player controller consumes. It has no engine dependency; the
// device subpackage feeds it from ebiten.
package input

// State holds the direction flags for one tick.
type State struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}

// Merge ORs two states together.
func (s State) Merge(o State) State {
	return State{
		Left:  s.Left || o.Left,
		Right: s.Right || o.Right,
		Up:    s.Up || o.Up,
		Down:  s.Down || o.Down,
	}
}

// MoveX maps the horizontal flags to -1, 0 or 1. Left wins when both are set.
func (s State) MoveX() float64 {
	switch {
	case s.Left:
		return -1
	case s.Right:
		return 1
	default:
		return 0
	}
}

// Source provides the current tick's state.
type Source interface {
	State() State
}

// Static is a Source that always reports the same state.
type Static State

func (s Static) State() State { return State(s) }
