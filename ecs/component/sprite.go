package component

import "image"

// Sprite refers to an image in the render art set by key. OriginX/OriginY is
// the point of the image placed at the transform.
type Sprite struct {
	Key        string
	Source     image.Rectangle
	UseSource  bool
	OriginX    float64
	OriginY    float64
	FacingLeft bool
	Alpha      float64
	Hidden     bool
}

var SpriteComponent = NewComponent[Sprite]()
