package component

// Score is the round's present counter, kept within [0, Needed].
type Score struct {
	Value   int
	Needed  int
	Changed bool
	// Finished is set once a round_won or round_lost event has been emitted.
	Finished bool
}

var ScoreComponent = NewComponent[Score]()
