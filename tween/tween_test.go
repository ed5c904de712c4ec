package tween

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

const step = 10 * time.Millisecond

func advance(s *Scheduler, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += step {
		s.Update(step)
	}
}

func TestDelay(t *testing.T) {
	s := NewScheduler()
	fired := 0
	task := s.Delay(1500*time.Millisecond, func() { fired++ })

	advance(s, 1490*time.Millisecond)
	if fired != 0 {
		t.Fatalf("delay fired early")
	}
	s.Update(step)
	if fired != 1 || !task.Done() {
		t.Fatalf("expected delay to fire once, fired=%d done=%v", fired, task.Done())
	}
	advance(s, time.Second)
	if fired != 1 {
		t.Fatalf("delay fired again: %d", fired)
	}
	if s.Len() != 0 {
		t.Fatalf("expected finished task to be dropped, len=%d", s.Len())
	}
}

func TestEvery(t *testing.T) {
	cases := []struct {
		name     string
		interval time.Duration
		run      time.Duration
		want     int
	}{
		{"three_second_interval", 3 * time.Second, 10 * time.Second, 3},
		{"five_second_interval", 5 * time.Second, 10 * time.Second, 2},
		{"large_step_catches_up", 100 * time.Millisecond, 0, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewScheduler()
			count := 0
			s.Every(c.interval, func() { count++ })
			if c.run == 0 {
				s.Update(500 * time.Millisecond)
			} else {
				advance(s, c.run)
			}
			if count != c.want {
				t.Fatalf("expected %d ticks, got %d", c.want, count)
			}
		})
	}
}

func TestTweenYoyoRepeat(t *testing.T) {
	s := NewScheduler()
	completed := false
	var last float64
	task := s.Tween(Config{
		Duration:   100 * time.Millisecond,
		Yoyo:       true,
		Repeat:     5,
		OnUpdate:   func(v float64) { last = v },
		OnComplete: func() { completed = true },
	})

	advance(s, 100*time.Millisecond)
	if math.Abs(last-1) > 1e-6 {
		t.Fatalf("expected forward leg to reach 1, got %v", last)
	}
	advance(s, 1090*time.Millisecond)
	if completed {
		t.Fatalf("tween completed before 6 yoyo cycles")
	}
	s.Update(step)
	if !completed || !task.Done() {
		t.Fatalf("expected completion after 1200ms")
	}
	if math.Abs(last) > 1e-6 {
		t.Fatalf("expected yoyo to end at 0, got %v", last)
	}
}

func TestTweenCancelBeforeRestart(t *testing.T) {
	s := NewScheduler()
	firstUpdates := 0
	first := s.Tween(Config{Duration: 250 * time.Millisecond, OnUpdate: func(float64) { firstUpdates++ }})
	s.Update(step)
	first.Cancel()

	var second float64
	s.Tween(Config{Duration: 250 * time.Millisecond, OnUpdate: func(v float64) { second = v }})
	before := firstUpdates
	advance(s, 300*time.Millisecond)

	if firstUpdates != before {
		t.Fatalf("cancelled tween kept running")
	}
	if math.Abs(second-1) > 1e-6 {
		t.Fatalf("replacement tween did not finish, v=%v", second)
	}
}

func TestTweenPauseResume(t *testing.T) {
	s := NewScheduler()
	var v float64
	task := s.Tween(Config{Duration: 100 * time.Millisecond, Paused: true, OnUpdate: func(x float64) { v = x }})
	advance(s, 50*time.Millisecond)
	if v != 0 {
		t.Fatalf("paused tween advanced to %v", v)
	}
	task.Resume()
	advance(s, 50*time.Millisecond)
	if math.Abs(v-0.5) > 1e-6 {
		t.Fatalf("expected 0.5 after resume, got %v", v)
	}
}

func TestScheduleFromCallback(t *testing.T) {
	s := NewScheduler()
	inner := 0
	s.Delay(0, func() {
		s.Delay(0, func() { inner++ })
	})
	s.Update(step)
	if inner != 0 {
		t.Fatalf("task scheduled from callback ran in the same update")
	}
	s.Update(step)
	if inner != 1 {
		t.Fatalf("expected nested task to run on next update, got %d", inner)
	}
}

func TestClear(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.Every(step, func() { fired = true })
	s.Clear()
	s.Update(step)
	if fired || s.Len() != 0 {
		t.Fatalf("clear should cancel all tasks")
	}
}

func TestTweenEasedCurves(t *testing.T) {
	cases := []struct {
		name string
		fn   ease.TweenFunc
		mid  func(v float64) bool
	}{
		{"out_quad_ahead_of_linear", ease.OutQuad, func(v float64) bool { return v > 0.5 }},
		{"in_out_sine_halfway", ease.InOutSine, func(v float64) bool { return math.Abs(v-0.5) < 1e-3 }},
		{"out_bounce_past_half", ease.OutBounce, func(v float64) bool { return v > 0.5 && v <= 1 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewScheduler()
			var got []float64
			s.Tween(Config{Duration: 100 * time.Millisecond, Ease: c.fn, OnUpdate: func(v float64) { got = append(got, v) }})
			advance(s, 50*time.Millisecond)
			if mid := got[len(got)-1]; !c.mid(mid) {
				t.Fatalf("unexpected midpoint %v", mid)
			}
			advance(s, 50*time.Millisecond)
			if end := got[len(got)-1]; math.Abs(end-1) > 1e-6 {
				t.Fatalf("expected curve to end at 1, got %v", end)
			}
		})
	}
}
