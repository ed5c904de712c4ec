package sound

import (
	"errors"
	"testing"
	"time"
)

func TestOscillatorRange(t *testing.T) {
	waves := []struct {
		name string
		wave Wave
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"triangle", WaveTriangle},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}
	for _, w := range waves {
		t.Run(w.name, func(t *testing.T) {
			osc := Tone(440, 10*time.Millisecond, w.wave)
			samples := make([][2]float64, 1000)
			n, ok := osc.Stream(samples)
			if n != SampleRate.N(10*time.Millisecond) || !ok {
				t.Fatalf("expected %d samples, got %d ok=%v", SampleRate.N(10*time.Millisecond), n, ok)
			}
			for i := 0; i < n; i++ {
				if samples[i][0] < -1 || samples[i][0] > 1 || samples[i][0] != samples[i][1] {
					t.Fatalf("sample %d out of range: %v", i, samples[i])
				}
			}
			if n, ok := osc.Stream(samples); n != 0 || ok {
				t.Fatalf("expected drained oscillator, got n=%d ok=%v", n, ok)
			}
		})
	}
}

func TestShapeFadesInAndOut(t *testing.T) {
	d := 100 * time.Millisecond
	s := Shape(Tone(0, d, WaveSquare), d, 10*time.Millisecond, 10*time.Millisecond)
	samples := make([][2]float64, SampleRate.N(d))
	n, _ := s.Stream(samples)
	if n != len(samples) {
		t.Fatalf("expected %d samples, got %d", len(samples), n)
	}
	if samples[0][0] != 0 {
		t.Fatalf("attack should start silent, got %v", samples[0][0])
	}
	if samples[n/2][0] != 1 {
		t.Fatalf("sustain should be full, got %v", samples[n/2][0])
	}
	if last := samples[n-1][0]; last <= 0 || last > 0.01 {
		t.Fatalf("release should end near silence, got %v", last)
	}
}

func TestRenderLength(t *testing.T) {
	d := 50 * time.Millisecond
	pcm := Render(Tone(440, d, WaveSine))
	if want := SampleRate.N(d) * 4; len(pcm) != want {
		t.Fatalf("expected %d bytes, got %d", want, len(pcm))
	}
}

func TestMelodyLength(t *testing.T) {
	notes := []Note{{a4, 1}, {restNote, 2}, {c5, 1}}
	pcm := Render(Melody(notes, 100*time.Millisecond, WaveSquare))
	want := 4 * SampleRate.N(100*time.Millisecond) * 4
	if diff := len(pcm) - want; diff < -16 || diff > 16 {
		t.Fatalf("expected about %d bytes, got %d", want, len(pcm))
	}
}

func TestEveryRecipeRenders(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			pcm, err := PCM(name)
			if err != nil {
				t.Fatalf("render %s: %v", name, err)
			}
			if len(pcm) == 0 || len(pcm)%4 != 0 {
				t.Fatalf("expected whole stereo frames, got %d bytes", len(pcm))
			}
			if len(pcm) >= 4*SampleRate.N(maxRenderLength) {
				t.Fatalf("%s never ended", name)
			}
		})
	}

	if _, err := PCM("missing"); !errors.Is(err, ErrUnknownSound) {
		t.Fatalf("expected ErrUnknownSound, got %v", err)
	}
}
