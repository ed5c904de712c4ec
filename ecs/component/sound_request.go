package component

// SoundRequest is a one-shot request entity consumed by the audio system.
// StopAll silences every player before Name (if any) starts.
type SoundRequest struct {
	Name    string
	Loop    bool
	Volume  float64
	StopAll bool
}

var SoundRequestComponent = NewComponent[SoundRequest]()
