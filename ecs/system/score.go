package system

import (
	"time"

	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
	"github.com/milk9111/giftrunner/tween"
	"github.com/tanema/gween/ease"
)

func scoreBoard(w *ecs.World) (ecs.Entity, *component.Score, bool) {
	e, ok := ecs.First(w, component.ScoreComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	score, ok := ecs.Get(w, e, component.ScoreComponent.Kind())
	return e, score, ok
}

// AdjustScore adds delta to the score, clamped to [0, Needed], and flags the
// progress bar for a redraw. Reaching Needed ends the round as won.
func AdjustScore(w *ecs.World, delta int) (*component.Score, bool) {
	_, score, ok := scoreBoard(w)
	if !ok {
		return nil, false
	}
	next := common.ClampInt(score.Value+delta, 0, score.Needed)
	if next != score.Value {
		score.Value = next
		score.Changed = true
	}
	if score.Value >= score.Needed {
		EndRound(w, ecs.EventRoundWon)
	}
	return score, true
}

// EndRound emits a round-ending event unless one was already emitted this
// playthrough.
func EndRound(w *ecs.World, eventType string) bool {
	_, score, ok := scoreBoard(w)
	if !ok || score.Finished {
		return false
	}
	score.Finished = true
	w.Events().Push(ecs.Event{Type: eventType})
	return true
}

// ProgressBarSystem eases the displayed fill toward Value/Needed whenever
// the score changes, replacing any fill still in flight.
type ProgressBarSystem struct {
	scheduler *tween.Scheduler
	duration  time.Duration
}

func NewProgressBarSystem(scheduler *tween.Scheduler, duration time.Duration) *ProgressBarSystem {
	return &ProgressBarSystem{scheduler: scheduler, duration: duration}
}

func (p *ProgressBarSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.ScoreComponent.Kind(), component.ProgressBarComponent.Kind(), func(_ ecs.Entity, score *component.Score, bar *component.ProgressBar) {
		if !score.Changed {
			return
		}
		score.Changed = false

		bar.Task.Cancel()
		bar.From = bar.Displayed
		bar.Target = 0
		if score.Needed > 0 {
			bar.Target = float64(score.Value) / float64(score.Needed)
		}
		bar.Task = p.scheduler.Tween(tween.Config{
			Duration: p.duration,
			Ease:     ease.OutQuad,
			OnUpdate: func(v float64) {
				bar.Displayed = common.Lerp(bar.From, bar.Target, v)
			},
		})
	})
}
