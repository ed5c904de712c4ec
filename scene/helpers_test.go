package scene

import (
	"errors"
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/input"
	"github.com/milk9111/giftrunner/prefabs"
)

type fakeInput struct {
	state   input.State
	pressed bool
	overlay *input.Overlay
	polls   int
}

func (f *fakeInput) Poll()                   { f.polls++ }
func (f *fakeInput) State() input.State      { return f.state }
func (f *fakeInput) AnyJustPressed() bool    { return f.pressed }
func (f *fakeInput) Overlay() *input.Overlay { return f.overlay }

type soundCall struct {
	op     string
	name   string
	volume float64
}

type fakeAudio struct {
	calls []soundCall
}

func (f *fakeAudio) Play(name string, volume float64) {
	f.calls = append(f.calls, soundCall{op: "play", name: name, volume: volume})
}

func (f *fakeAudio) PlayLoop(name string, volume float64) {
	f.calls = append(f.calls, soundCall{op: "loop", name: name, volume: volume})
}

func (f *fakeAudio) StopAll() {
	f.calls = append(f.calls, soundCall{op: "stop"})
}

func (f *fakeAudio) loops() []string {
	var names []string
	for _, c := range f.calls {
		if c.op == "loop" {
			names = append(names, c.name)
		}
	}
	return names
}

type fakePoller struct {
	changed []string
	err     error
}

func (f *fakePoller) Poll() ([]string, error) {
	changed, err := f.changed, f.err
	f.changed, f.err = nil, nil
	return changed, err
}

var errFullscreen = errors.New("fullscreen unsupported")

func newTestSession(t *testing.T) (*Session, *fakeInput, *fakeAudio) {
	t.Helper()
	s, err := prefabs.DefaultSettings()
	if err != nil {
		t.Fatalf("default settings: %v", err)
	}
	in := &fakeInput{overlay: input.NewOverlay(s.Screen.Width, s.Screen.Height)}
	audio := &fakeAudio{}
	return &Session{
		Settings: s,
		Log:      log.New(io.Discard),
		Rand:     rand.New(rand.NewSource(1)),
		Audio:    audio,
		Input:    in,
	}, in, audio
}

// tick runs the director for d of game time.
func tick(t *testing.T, d *Director, dur time.Duration) {
	t.Helper()
	for n := common.Frames(dur); n > 0; n-- {
		if err := d.Update(); err != nil {
			t.Fatalf("update: %v", err)
		}
	}
}
