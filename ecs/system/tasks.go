package system

import (
	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/tween"
)

// TaskSystem advances the scene scheduler by one tick, running due tweens,
// delays and spawn timers in between the other systems.
type TaskSystem struct {
	scheduler *tween.Scheduler
}

func NewTaskSystem(scheduler *tween.Scheduler) *TaskSystem {
	return &TaskSystem{scheduler: scheduler}
}

func (s *TaskSystem) Update(_ *ecs.World) {
	if s == nil {
		return
	}
	s.scheduler.Update(common.FrameDuration)
}
