// Package sound synthesizes the game's effects and music with beep and
// renders them to the 16-bit stereo PCM ebiten's audio players consume.
package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is shared by synthesis and the audio context.
const SampleRate beep.SampleRate = 44100

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	slide    float64
	phase    float64
	duration int
	position int
	wave     Wave
	noise    *rand.Rand
}

// Tone plays freq for d. Noise ignores freq.
func Tone(freq float64, d time.Duration, wave Wave) beep.Streamer {
	return Sweep(freq, freq, d, wave)
}

// Sweep glides linearly from one frequency to another over d.
func Sweep(from, to float64, d time.Duration, wave Wave) beep.Streamer {
	n := SampleRate.N(d)
	slide := 0.0
	if n > 0 {
		slide = (to - from) / float64(n)
	}
	return &oscillator{
		freq:     from,
		slide:    slide,
		duration: n,
		wave:     wave,
		noise:    rand.New(rand.NewSource(int64(from*1000) + int64(n))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1
			if o.phase < 0.5 {
				val = 1
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(SampleRate)
		o.phase -= math.Floor(o.phase)
		o.freq += o.slide
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// Shape fades s in over attack and out over the final release of d.
func Shape(s beep.Streamer, d, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   SampleRate.N(attack),
		release:  SampleRate.N(release),
		total:    SampleRate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Gain scales s linearly. Zero or less is silent.
func Gain(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Note is one step of a melody. A zero Freq is a rest.
type Note struct {
	Freq  float64
	Beats float64
}

// Melody plays notes back to back, each shaped with a short attack and a
// release of a third of its length.
func Melody(notes []Note, beat time.Duration, wave Wave) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		d := time.Duration(float64(beat) * n.Beats)
		if n.Freq <= 0 {
			parts = append(parts, beep.Silence(SampleRate.N(d)))
			continue
		}
		parts = append(parts, Shape(Tone(n.Freq, d, wave), d, 5*time.Millisecond, d/3))
	}
	return beep.Seq(parts...)
}

// maxRenderLength bounds Render for streamers that never end.
const maxRenderLength = 30 * time.Second

// Render drains s into little-endian signed 16-bit stereo PCM.
func Render(s beep.Streamer) []byte {
	limit := SampleRate.N(maxRenderLength)
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4*SampleRate.N(time.Second))
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				x := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
				out = append(out, byte(x), byte(x>>8))
			}
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}
