package component

// Input stores the per-frame direction flags read by the player controller.
// Keyboard and the touch overlay both write into it.
type Input struct {
	MoveX float64
	Jump  bool
	Down  bool
}

var InputComponent = NewComponent[Input]()
