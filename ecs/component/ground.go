package component

// Ground is the static floor. Top is the y of its walking surface; it spans
// every x so scrolling never moves it. Width is the right world bound: the
// player and enemies stay between x=0 and Width and below y=0.
type Ground struct {
	Top        float64
	Width      float64
	Elasticity float64
}

var GroundComponent = NewComponent[Ground]()
