package system

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
	"github.com/milk9111/giftrunner/ecs/entity"
	"github.com/milk9111/giftrunner/prefabs"
	"github.com/milk9111/giftrunner/tween"
	"github.com/tanema/gween/ease"
)

// SpawnSystem drops presents into free pool slots and sends enemies in from
// either side on repeating timers. The timers start on the first Update.
type SpawnSystem struct {
	settings  prefabs.Settings
	scheduler *tween.Scheduler
	rng       *rand.Rand
	logger    *log.Logger

	world        *ecs.World
	started      bool
	presentTimer *tween.Task
	enemyTimer   *tween.Task
}

func NewSpawnSystem(s prefabs.Settings, scheduler *tween.Scheduler, rng *rand.Rand, logger *log.Logger) *SpawnSystem {
	return &SpawnSystem{
		settings:  s,
		scheduler: scheduler,
		rng:       rng,
		logger:    logger,
	}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.started {
		return
	}
	s.started = true
	s.world = w

	s.SpawnPresent(w)
	s.presentTimer = s.scheduler.Every(prefabs.Millis(s.settings.Collectibles.SpawnIntervalMS), func() {
		s.SpawnPresent(s.world)
	})
	s.enemyTimer = s.scheduler.Every(prefabs.Millis(s.settings.Enemies.SpawnIntervalMS), func() {
		s.SpawnEnemy(s.world)
	})
}

// Stop cancels both spawn timers.
func (s *SpawnSystem) Stop() {
	if s == nil {
		return
	}
	s.presentTimer.Cancel()
	s.enemyTimer.Cancel()
}

// SpawnPresent activates a free pool slot at a random x above the screen and
// drops it to a random height. It reports false when every slot is in use.
func (s *SpawnSystem) SpawnPresent(w *ecs.World) bool {
	slot, present, ok := freePresent(w)
	if !ok {
		return false
	}
	t, ok := ecs.Get(w, slot, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	sprite, ok := ecs.Get(w, slot, component.SpriteComponent.Kind())
	if !ok {
		return false
	}

	c := s.settings.Collectibles
	minX := c.Margin
	maxX := float64(s.settings.Screen.Width) - c.Margin
	t.X = minX + s.rng.Float64()*(maxX-minX)
	t.Y = c.StartY
	present.TargetY = c.DropMinY + s.rng.Float64()*(c.DropMaxY-c.DropMinY)
	present.Active = true
	sprite.Hidden = false

	startY := t.Y
	present.Task.Cancel()
	present.Task = s.scheduler.Tween(tween.Config{
		Duration: prefabs.Millis(c.DropMS),
		Ease:     ease.OutBounce,
		OnUpdate: func(v float64) {
			t.Y = common.Lerp(startY, present.TargetY, v)
		},
		OnComplete: func() {
			if !present.Active {
				return
			}
			s.bob(present, t)
		},
	})
	return true
}

func (s *SpawnSystem) bob(present *component.Present, t *component.Transform) {
	c := s.settings.Collectibles
	base := present.TargetY
	present.Task = s.scheduler.Tween(tween.Config{
		Duration: prefabs.Millis(c.BobMS),
		Ease:     ease.InOutSine,
		Yoyo:     true,
		Repeat:   tween.Forever,
		OnUpdate: func(v float64) {
			t.Y = base - c.BobHeight*v
		},
	})
}

func freePresent(w *ecs.World) (ecs.Entity, *component.Present, bool) {
	var (
		found   ecs.Entity
		present *component.Present
		best    = -1
	)
	// Lowest free slot first so reuse order does not depend on storage order.
	ecs.ForEach(w, component.PresentComponent.Kind(), func(e ecs.Entity, p *component.Present) {
		if p.Active {
			return
		}
		if best < 0 || p.Slot < best {
			best = p.Slot
			found = e
			present = p
		}
	})
	return found, present, present != nil
}

// SpawnEnemy places a walker off the left edge or just past the right edge
// relative to the player.
func (s *SpawnSystem) SpawnEnemy(w *ecs.World) (ecs.Entity, error) {
	x := s.settings.Enemies.SpawnLeftX
	if s.rng.Intn(2) == 1 {
		playerX := s.settings.Player.StartX
		if player, ok := playerEntity(w); ok {
			if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
				playerX = t.X
			}
		}
		x = playerX + float64(s.settings.Screen.Width)
	}
	e, err := entity.NewEnemy(w, s.settings, x)
	if err != nil && s.logger != nil {
		s.logger.Warn("spawn enemy", "error", err)
	}
	return e, err
}
