package system

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
	"github.com/milk9111/giftrunner/ecs/entity"
	"github.com/milk9111/giftrunner/prefabs"
	"github.com/milk9111/giftrunner/tween"
)

type testLevel struct {
	w      *ecs.World
	s      prefabs.Settings
	sched  *tween.Scheduler
	level  *entity.Level
	logger *log.Logger
}

func newTestLevel(t *testing.T) *testLevel {
	t.Helper()
	s, err := prefabs.DefaultSettings()
	if err != nil {
		t.Fatalf("default settings: %v", err)
	}
	w := ecs.NewWorld()
	sched := tween.NewScheduler()
	level, err := entity.BuildLevel(w, s, sched)
	if err != nil {
		t.Fatalf("build level: %v", err)
	}
	return &testLevel{w: w, s: s, sched: sched, level: level, logger: log.New(io.Discard)}
}

// advance runs the scheduler tick by tick for d.
func (l *testLevel) advance(d time.Duration) {
	for n := common.Frames(d); n > 0; n-- {
		l.sched.Update(common.FrameDuration)
	}
}

func (l *testLevel) score(t *testing.T) *component.Score {
	t.Helper()
	score, ok := ecs.Get(l.w, l.level.Score, component.ScoreComponent.Kind())
	if !ok {
		t.Fatalf("score missing")
	}
	return score
}

func (l *testLevel) setScore(t *testing.T, v int) {
	t.Helper()
	l.score(t).Value = v
}

func (l *testLevel) player(t *testing.T) (*component.Player, *component.Transform, *component.Velocity) {
	t.Helper()
	p, ok := ecs.Get(l.w, l.level.Player, component.PlayerComponent.Kind())
	if !ok {
		t.Fatalf("player missing")
	}
	tr, ok := ecs.Get(l.w, l.level.Player, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("player transform missing")
	}
	v, ok := ecs.Get(l.w, l.level.Player, component.VelocityComponent.Kind())
	if !ok {
		t.Fatalf("player velocity missing")
	}
	return p, tr, v
}

func (l *testLevel) setGrounded(t *testing.T, grounded bool) {
	t.Helper()
	pc, ok := ecs.Get(l.w, l.level.Player, component.PlayerCollisionComponent.Kind())
	if !ok {
		t.Fatalf("player collision missing")
	}
	pc.Grounded = grounded
}

func countEvents(w *ecs.World, eventType string) int {
	n := 0
	w.Events().Each(eventType, func(ecs.Event) { n++ })
	return n
}

// soundRequests lists the names of queued sound requests.
func soundRequests(w *ecs.World) []string {
	var names []string
	ecs.ForEach(w, component.SoundRequestComponent.Kind(), func(_ ecs.Entity, req *component.SoundRequest) {
		names = append(names, req.Name)
	})
	return names
}

func hasSound(w *ecs.World, name string) bool {
	for _, n := range soundRequests(w) {
		if n == name {
			return true
		}
	}
	return false
}

func activePresents(w *ecs.World) int {
	n := 0
	ecs.ForEach(w, component.PresentComponent.Kind(), func(_ ecs.Entity, p *component.Present) {
		if p.Active {
			n++
		}
	})
	return n
}

type soundCall struct {
	op     string
	name   string
	volume float64
}

type fakeSoundPlayer struct {
	calls []soundCall
}

func (f *fakeSoundPlayer) Play(name string, volume float64) {
	f.calls = append(f.calls, soundCall{op: "play", name: name, volume: volume})
}

func (f *fakeSoundPlayer) PlayLoop(name string, volume float64) {
	f.calls = append(f.calls, soundCall{op: "loop", name: name, volume: volume})
}

func (f *fakeSoundPlayer) StopAll() {
	f.calls = append(f.calls, soundCall{op: "stop"})
}
