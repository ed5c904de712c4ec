package component

// Projectile is a pooled slot reserved for thrown objects. Nothing fires them
// yet; the pool still deactivates slots that leave the screen.
type Projectile struct {
	Slot   int
	Active bool
	Width  float64
	Height float64
}

var ProjectileComponent = NewComponent[Projectile]()
