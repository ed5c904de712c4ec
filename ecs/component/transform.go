package component

// Transform positions an entity in screen space. For physics entities X/Y is
// the collider center.
type Transform struct {
	X      float64
	Y      float64
	ScaleX float64
	ScaleY float64
}

var TransformComponent = NewComponent[Transform]()
