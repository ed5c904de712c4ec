package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/entity"
	"github.com/milk9111/giftrunner/ecs/render"
	"github.com/milk9111/giftrunner/ecs/system"
	"github.com/milk9111/giftrunner/prefabs"
	"github.com/milk9111/giftrunner/tween"
)

// Play is one round. The world and its timers are built on enter and
// dropped on exit.
type Play struct {
	world   *ecs.World
	tasks   *tween.Scheduler
	systems *ecs.Scheduler
	spawn   *system.SpawnSystem
	level   *entity.Level
	render  *render.RenderSystem
	session *Session
	err     error
}

func NewPlay() *Play {
	return &Play{}
}

func (p *Play) OnEnter(s *Session) {
	p.session = s
	if s.applyPending() {
		s.Log.Info("using reloaded settings")
	}
	settings := s.Settings

	p.world = ecs.NewWorld()
	p.tasks = tween.NewScheduler()
	level, err := entity.BuildLevel(p.world, settings, p.tasks)
	if err != nil {
		p.err = err
		return
	}
	p.level = level
	p.spawn = system.NewSpawnSystem(settings, p.tasks, s.Rand, s.Log)
	p.systems = newRoundSystems(s, settings, p.tasks, p.spawn)
	p.render = render.NewRenderSystem()
	p.render.Debug = s.Debug

	system.PlayMusic(p.world, common.MusicGame, settings.Audio.MusicVolume)
}

// newRoundSystems lists the play systems in tick order.
func newRoundSystems(s *Session, settings prefabs.Settings, tasks *tween.Scheduler, spawn *system.SpawnSystem) *ecs.Scheduler {
	width := float64(settings.Screen.Width)
	return ecs.NewScheduler(
		system.NewInputSystem(s.Input),
		spawn,
		system.LoadEnemyAISystem(system.EnemyScript, s.Log),
		system.NewPlayerControllerSystem(),
		system.NewScrollSystem(width, settings.Scroll.Threshold(settings.Screen.Width), settings.Scroll.Speed),
		system.NewPhysicsSystem(settings.World.Gravity),
		system.NewInteractionSystem(settings, tasks, s.Log),
		system.NewPresentCollectSystem(),
		system.NewMotionSystem(),
		system.NewTaskSystem(tasks),
		system.NewProgressBarSystem(tasks, prefabs.Millis(settings.ProgressBar.TweenMS)),
		system.NewProjectileSystem(width, float64(settings.Screen.Height)),
		system.NewTTLSystem(),
		system.NewAnimationSystem(),
		system.NewAudioSystem(s.Audio, settings.Audio.SFXVolume),
	)
}

func (p *Play) OnUpdate(s *Session) error {
	if p.err != nil {
		return p.err
	}
	p.systems.Update(p.world)
	for _, evt := range p.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventRoundWon:
			s.EndRound(true)
			return nil
		case ecs.EventRoundLost:
			s.EndRound(false)
			return nil
		}
	}
	return nil
}

func (p *Play) OnExit(s *Session) {
	p.spawn.Stop()
	p.tasks.Clear()
	s.Input.Overlay().Reset()
}

func (p *Play) Draw(screen *ebiten.Image) {
	if p.render == nil {
		return
	}
	p.render.Draw(p.world, screen)
	if overlay := p.session.Input.Overlay(); overlay.Visible {
		render.DrawOverlay(screen, overlay.Buttons())
	}
}

// World exposes the round's world.
func (p *Play) World() *ecs.World {
	return p.world
}

// Level exposes the entities the round started with.
func (p *Play) Level() *entity.Level {
	return p.level
}

