// Package tween schedules timed work against an explicitly advanced clock:
// value interpolations, one-shot delays and repeating timers. Nothing in here
// reads the wall clock; the owner calls Update once per tick.
package tween

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Forever repeats a tween until it is cancelled.
const Forever = -1

// Config describes an interpolation. OnUpdate receives the eased progress
// in [0,1] after every step; yoyo legs play the curve backwards. A nil Ease
// is linear.
type Config struct {
	Duration   time.Duration
	Ease       ease.TweenFunc
	Yoyo       bool
	Repeat     int
	Paused     bool
	OnUpdate   func(v float64)
	OnComplete func()
}

type taskKind int

const (
	kindTween taskKind = iota
	kindDelay
	kindEvery
)

// Task is a handle to scheduled work.
type Task struct {
	kind taskKind
	cfg  Config
	fn   func()
	// curve evaluates one leg from 0 to 1; the task owns leg timing.
	curve *gween.Tween

	interval  time.Duration
	elapsed   time.Duration
	reverse   bool
	iteration int

	paused    bool
	cancelled bool
	done      bool
}

// Cancel stops the task without running its completion.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

func (t *Task) Pause() {
	if t == nil {
		return
	}
	t.paused = true
}

func (t *Task) Resume() {
	if t == nil {
		return
	}
	t.paused = false
}

func (t *Task) Paused() bool {
	return t != nil && t.paused
}

// Active reports whether the task is still scheduled.
func (t *Task) Active() bool {
	return t != nil && !t.cancelled && !t.done
}

// Done reports whether the task ran to completion.
func (t *Task) Done() bool {
	return t != nil && t.done
}

func (t *Task) advance(dt time.Duration) {
	if !t.Active() || t.paused {
		return
	}
	switch t.kind {
	case kindDelay:
		t.elapsed += dt
		if t.elapsed >= t.interval {
			t.done = true
			if t.fn != nil {
				t.fn()
			}
		}
	case kindEvery:
		t.elapsed += dt
		if t.interval <= 0 {
			if t.fn != nil {
				t.fn()
			}
			return
		}
		for t.elapsed >= t.interval && t.Active() {
			t.elapsed -= t.interval
			if t.fn != nil {
				t.fn()
			}
		}
	default:
		t.advanceTween(dt)
	}
}

func (t *Task) advanceTween(dt time.Duration) {
	if t.cfg.Duration <= 0 {
		t.emit(1)
		t.finish()
		return
	}

	remaining := dt
	for remaining > 0 && t.Active() {
		left := t.cfg.Duration - t.elapsed
		if remaining < left {
			t.elapsed += remaining
			t.emit(float64(t.elapsed) / float64(t.cfg.Duration))
			return
		}
		remaining -= left
		t.elapsed = t.cfg.Duration
		t.emit(1)
		if !t.Active() {
			return
		}

		if t.cfg.Yoyo && !t.reverse {
			t.reverse = true
			t.elapsed = 0
			continue
		}
		if t.cfg.Repeat == Forever || t.iteration < t.cfg.Repeat {
			t.iteration++
			t.reverse = false
			t.elapsed = 0
			continue
		}
		t.finish()
	}
}

func (t *Task) emit(p float64) {
	if t.cfg.OnUpdate == nil {
		return
	}
	if t.reverse {
		p = 1 - p
	}
	if t.curve == nil {
		fn := t.cfg.Ease
		if fn == nil {
			fn = ease.Linear
		}
		t.curve = gween.New(0, 1, float32(t.cfg.Duration.Seconds()), fn)
	}
	v, _ := t.curve.Set(float32(p * t.cfg.Duration.Seconds()))
	t.cfg.OnUpdate(float64(v))
}

func (t *Task) finish() {
	t.done = true
	if t.cfg.OnComplete != nil {
		t.cfg.OnComplete()
	}
}

// Scheduler owns every pending task of one scene.
type Scheduler struct {
	tasks    []*Task
	pending  []*Task
	updating bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Tween starts an interpolation.
func (s *Scheduler) Tween(cfg Config) *Task {
	return s.add(&Task{kind: kindTween, cfg: cfg, paused: cfg.Paused})
}

// Delay runs fn once after d has elapsed.
func (s *Scheduler) Delay(d time.Duration, fn func()) *Task {
	return s.add(&Task{kind: kindDelay, interval: d, fn: fn})
}

// Every runs fn each time another d has elapsed.
func (s *Scheduler) Every(d time.Duration, fn func()) *Task {
	return s.add(&Task{kind: kindEvery, interval: d, fn: fn})
}

func (s *Scheduler) add(t *Task) *Task {
	if s == nil {
		return t
	}
	if s.updating {
		s.pending = append(s.pending, t)
	} else {
		s.tasks = append(s.tasks, t)
	}
	return t
}

// Update advances every task by dt. Tasks scheduled from inside a callback
// start on the next Update.
func (s *Scheduler) Update(dt time.Duration) {
	if s == nil {
		return
	}
	s.updating = true
	for _, t := range s.tasks {
		t.advance(dt)
	}
	s.updating = false

	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.Active() {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
	for _, t := range s.pending {
		if t.Active() {
			s.tasks = append(s.tasks, t)
		}
	}
	s.pending = s.pending[:0]
}

// Clear cancels everything.
func (s *Scheduler) Clear() {
	if s == nil {
		return
	}
	for _, t := range s.tasks {
		t.Cancel()
	}
	for _, t := range s.pending {
		t.Cancel()
	}
	if !s.updating {
		s.tasks = nil
	}
	s.pending = s.pending[:0]
}

// Len returns the number of scheduled tasks.
func (s *Scheduler) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, t := range s.tasks {
		if t.Active() {
			n++
		}
	}
	for _, t := range s.pending {
		if t.Active() {
			n++
		}
	}
	return n
}
