package component

// PlayerCollision stores per-player contact state derived from the last
// physics step.
type PlayerCollision struct {
	Grounded bool
}

var PlayerCollisionComponent = NewComponent[PlayerCollision]()
