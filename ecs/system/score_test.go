package system

import (
	"math"
	"testing"
	"time"

	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
)

func TestAdjustScoreBounds(t *testing.T) {
	cases := []struct {
		name  string
		start int
		delta int
		want  int
		won   int
	}{
		{"increment", 3, 1, 4, 0},
		{"decrement", 3, -1, 2, 0},
		{"floor_at_zero", 0, -1, 0, 0},
		{"cap_at_needed", 10, 1, 10, 1},
		{"reach_needed", 9, 1, 10, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := newTestLevel(t)
			l.setScore(t, c.start)
			score, ok := AdjustScore(l.w, c.delta)
			if !ok {
				t.Fatalf("expected score board")
			}
			if score.Value != c.want {
				t.Fatalf("expected score %d, got %d", c.want, score.Value)
			}
			if got := countEvents(l.w, ecs.EventRoundWon); got != c.won {
				t.Fatalf("expected %d round_won events, got %d", c.won, got)
			}
		})
	}
}

func TestRoundEndsOnce(t *testing.T) {
	l := newTestLevel(t)
	l.setScore(t, 9)
	AdjustScore(l.w, 1)
	AdjustScore(l.w, 1)
	if EndRound(l.w, ecs.EventRoundLost) {
		t.Fatalf("round already finished, EndRound should refuse")
	}
	if got := countEvents(l.w, ecs.EventRoundWon); got != 1 {
		t.Fatalf("expected one round_won, got %d", got)
	}
	if got := countEvents(l.w, ecs.EventRoundLost); got != 0 {
		t.Fatalf("expected no round_lost, got %d", got)
	}
}

func TestProgressBarEasesToFraction(t *testing.T) {
	l := newTestLevel(t)
	bars := NewProgressBarSystem(l.sched, 250*time.Millisecond)
	bar, ok := ecs.Get(l.w, l.level.Score, component.ProgressBarComponent.Kind())
	if !ok {
		t.Fatalf("progress bar missing")
	}

	AdjustScore(l.w, 1)
	bars.Update(l.w)
	l.advance(100 * time.Millisecond)
	if bar.Displayed <= 0 || bar.Displayed >= 0.1 {
		t.Fatalf("expected fill in flight, got %v", bar.Displayed)
	}

	// A second change replaces the fill already running.
	AdjustScore(l.w, 1)
	bars.Update(l.w)
	from := bar.From
	l.advance(300 * time.Millisecond)
	if math.Abs(bar.Displayed-0.2) > 1e-9 {
		t.Fatalf("expected fill 0.2, got %v", bar.Displayed)
	}
	if from <= 0 || from >= 0.1 {
		t.Fatalf("expected retarget to start from the displayed fill, got %v", from)
	}

	score := l.score(t)
	if score.Changed {
		t.Fatalf("change flag should be consumed")
	}
}
