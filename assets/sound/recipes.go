package sound

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/gopxl/beep"
	"github.com/milk9111/giftrunner/common"
)

// ErrUnknownSound is returned for names without a recipe.
var ErrUnknownSound = errors.New("unknown sound")

// Note frequencies, equal temperament.
const (
	restNote = 0.0
	c4       = 261.63
	d4       = 293.66
	e4       = 329.63
	f4       = 349.23
	g4       = 392.00
	a4       = 440.00
	b4       = 493.88
	c5       = 523.25
	d5       = 587.33
	e5       = 659.25
	g5       = 783.99
	a5       = 880.00
	c6       = 1046.50
)

var recipes = map[string]func() beep.Streamer{
	common.SoundCollect:  collect,
	common.SoundSmash:    smash,
	common.SoundStolen:   stolen,
	common.MusicGame:     gameMusic,
	common.MusicWin:      winSong,
	common.MusicWinAlt:   winSongAlt,
	common.MusicGameLost: lostSong,
}

// Names lists every synthesizable sound, sorted.
func Names() []string {
	names := make([]string, 0, len(recipes))
	for name := range recipes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Streamer returns a fresh streamer for name.
func Streamer(name string) (beep.Streamer, error) {
	recipe, ok := recipes[name]
	if !ok {
		return nil, fmt.Errorf("sound %q: %w", name, ErrUnknownSound)
	}
	return recipe(), nil
}

// PCM renders name to 16-bit stereo PCM at SampleRate.
func PCM(name string) ([]byte, error) {
	s, err := Streamer(name)
	if err != nil {
		return nil, err
	}
	return Render(s), nil
}

// collect is a rising two-note chime.
func collect() beep.Streamer {
	n1 := Shape(Tone(e5, 70*time.Millisecond, WaveSquare), 70*time.Millisecond, 2*time.Millisecond, 30*time.Millisecond)
	n2 := Shape(Tone(a5, 140*time.Millisecond, WaveSquare), 140*time.Millisecond, 2*time.Millisecond, 100*time.Millisecond)
	return Gain(beep.Seq(n1, n2), 0.5)
}

// smash is a noise burst over a falling thud.
func smash() beep.Streamer {
	const d = 220 * time.Millisecond
	noise := Shape(Tone(0, d, WaveNoise), d, time.Millisecond, 180*time.Millisecond)
	thud := Shape(Sweep(180, 50, d, WaveSaw), d, time.Millisecond, 150*time.Millisecond)
	return beep.Mix(Gain(noise, 0.45), Gain(thud, 0.6))
}

// stolen is a sliding "whoop" downward.
func stolen() beep.Streamer {
	const d = 450 * time.Millisecond
	slide := Shape(Sweep(700, 160, d, WaveTriangle), d, 5*time.Millisecond, 200*time.Millisecond)
	return Gain(slide, 0.7)
}

func gameMusic() beep.Streamer {
	lead := []Note{
		{e4, 1}, {g4, 1}, {a4, 1}, {g4, 1}, {e4, 1}, {d4, 1}, {c4, 2},
		{d4, 1}, {e4, 1}, {g4, 1}, {e4, 1}, {d4, 2}, {restNote, 2},
		{e4, 1}, {g4, 1}, {a4, 1}, {c5, 1}, {b4, 1}, {a4, 1}, {g4, 2},
		{a4, 1}, {g4, 1}, {e4, 1}, {d4, 1}, {c4, 2}, {restNote, 2},
	}
	bass := []Note{
		{c4 / 2, 4}, {g4 / 4, 4}, {a4 / 4, 4}, {g4 / 4, 4},
		{c4 / 2, 4}, {f4 / 4, 4}, {g4 / 4, 4}, {c4 / 2, 4},
	}
	const beat = 200 * time.Millisecond
	return beep.Mix(
		Gain(Melody(lead, beat, WaveSquare), 0.3),
		Gain(Melody(bass, beat, WaveTriangle), 0.5),
	)
}

func winSong() beep.Streamer {
	notes := []Note{
		{c5, 1}, {e5, 1}, {g5, 1}, {c6, 3},
		{g5, 1}, {c6, 4}, {restNote, 2},
	}
	return Gain(Melody(notes, 150*time.Millisecond, WaveSquare), 0.4)
}

func winSongAlt() beep.Streamer {
	notes := []Note{
		{g4, 1}, {c5, 1}, {e5, 1}, {g5, 2}, {e5, 1}, {g5, 4},
		{a5, 1}, {g5, 1}, {c6, 4}, {restNote, 2},
	}
	return Gain(Melody(notes, 140*time.Millisecond, WaveTriangle), 0.6)
}

func lostSong() beep.Streamer {
	notes := []Note{
		{g4, 2}, {f4, 2}, {e4, 2}, {d4, 2}, {c4, 6}, {restNote, 4},
	}
	return Gain(Melody(notes, 180*time.Millisecond, WaveSaw), 0.3)
}
