package component

// Velocity is in pixels per second. The physics system mirrors it into the
// cp body before each step and back afterwards; entities without a body are
// moved by the motion system.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
