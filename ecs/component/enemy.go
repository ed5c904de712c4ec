package component

// Enemy is a chasing walker. Once Hit is set the AI never drives it again.
type Enemy struct {
	Speed      float64
	Hit        bool
	FacingLeft bool
}

var EnemyComponent = NewComponent[Enemy]()
