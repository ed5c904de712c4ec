package component

import (
	"image/color"

	"github.com/milk9111/giftrunner/tween"
)

// ProgressBar is the HUD fill showing Score.Value / Score.Needed.
type ProgressBar struct {
	X         float64
	Y         float64
	Width     float64
	Height    float64
	Color     color.RGBA
	Displayed float64
	From      float64
	Target    float64
	Task      *tween.Task
}

var ProgressBarComponent = NewComponent[ProgressBar]()
