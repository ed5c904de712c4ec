package system

import (
	"testing"

	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
)

// placePresent activates slot i at (x, y).
func placePresent(t *testing.T, l *testLevel, i int, x, y float64) (*component.Present, *component.Sprite) {
	t.Helper()
	e := l.level.Presents[i]
	p, _ := ecs.Get(l.w, e, component.PresentComponent.Kind())
	tr, _ := ecs.Get(l.w, e, component.TransformComponent.Kind())
	sprite, _ := ecs.Get(l.w, e, component.SpriteComponent.Kind())
	p.Active = true
	sprite.Hidden = false
	tr.X, tr.Y = x, y
	return p, sprite
}

func TestCollectPresent(t *testing.T) {
	l := newTestLevel(t)
	collect := NewPresentCollectSystem()
	_, pt, _ := l.player(t)
	l.setScore(t, 3)

	p, sprite := placePresent(t, l, 0, pt.X, pt.Y)
	placePresent(t, l, 1, pt.X+400, pt.Y)
	collect.Update(l.w)

	if p.Active || !sprite.Hidden {
		t.Fatalf("collected present should return to the pool")
	}
	if got := l.score(t).Value; got != 4 {
		t.Fatalf("expected score 4, got %d", got)
	}
	if !l.score(t).Changed {
		t.Fatalf("progress bar should be flagged")
	}
	if got := activePresents(l.w); got != 1 {
		t.Fatalf("distant present should stay active, %d active", got)
	}
	if !hasSound(l.w, common.SoundCollect) {
		t.Fatalf("expected collect sound, got %v", soundRequests(l.w))
	}
}

func TestCollectLastPresentWins(t *testing.T) {
	l := newTestLevel(t)
	collect := NewPresentCollectSystem()
	_, pt, _ := l.player(t)
	l.setScore(t, 9)

	placePresent(t, l, 0, pt.X, pt.Y)
	collect.Update(l.w)
	if got := l.score(t).Value; got != 10 {
		t.Fatalf("expected score 10, got %d", got)
	}
	if got := countEvents(l.w, ecs.EventRoundWon); got != 1 {
		t.Fatalf("expected one round_won, got %d", got)
	}

	l.w.Events().Drain()
	placePresent(t, l, 1, pt.X, pt.Y)
	collect.Update(l.w)
	if got := l.score(t).Value; got != 10 {
		t.Fatalf("score must not pass needed, got %d", got)
	}
	if got := countEvents(l.w, ecs.EventRoundWon); got != 0 {
		t.Fatalf("round_won must fire once, got %d more", got)
	}
}
