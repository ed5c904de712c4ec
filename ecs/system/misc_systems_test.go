package system

import (
	"testing"

	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
	"github.com/milk9111/giftrunner/input"
	"github.com/milk9111/giftrunner/tween"
)

func TestAudioSystemStopsBeforePlaying(t *testing.T) {
	w := ecs.NewWorld()
	player := &fakeSoundPlayer{}
	sys := NewAudioSystem(player, 0.8)

	PlaySound(w, common.SoundCollect)
	PlayMusic(w, common.MusicGame, 0.4)
	sys.Update(w)

	if len(player.calls) != 3 {
		t.Fatalf("expected 3 calls, got %+v", player.calls)
	}
	if player.calls[0].op != "stop" {
		t.Fatalf("expected stop first, got %+v", player.calls)
	}
	want := map[string]soundCall{
		common.SoundCollect: {op: "play", name: common.SoundCollect, volume: 0.8},
		common.MusicGame:    {op: "loop", name: common.MusicGame, volume: 0.4},
	}
	for _, call := range player.calls[1:] {
		if call != want[call.name] {
			t.Fatalf("unexpected call %+v", call)
		}
	}
	if len(soundRequests(w)) != 0 {
		t.Fatalf("requests should be consumed")
	}

	sys.Update(w)
	if len(player.calls) != 3 {
		t.Fatalf("no new requests, expected no new calls")
	}
}

func TestTTLAndMotion(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{})
	_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{X: 300, Y: -400})
	_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: 90})

	motion := NewMotionSystem()
	ttl := NewTTLSystem()
	for i := 0; i < 89; i++ {
		motion.Update(w)
		ttl.Update(w)
	}
	if !w.IsAlive(e) {
		t.Fatalf("entity expired early")
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.X < 444 || tr.X > 446 || tr.Y > -592 || tr.Y < -594 {
		t.Fatalf("expected about (445, -593) after 89 ticks, got (%v, %v)", tr.X, tr.Y)
	}
	ttl.Update(w)
	if w.IsAlive(e) {
		t.Fatalf("entity should expire after 90 ticks")
	}
}

func TestMotionSkipsPhysicsBodies(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{})
	_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{X: 60})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{})

	NewMotionSystem().Update(w)
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.X != 0 {
		t.Fatalf("physics bodies move in the physics step, got x %v", tr.X)
	}
}

func TestAnimationAdvances(t *testing.T) {
	cases := []struct {
		name      string
		def       component.AnimationDef
		ticks     int
		wantFrame int
		playing   bool
	}{
		{"run_loops", component.AnimationDef{Name: "run", Row: 1, FrameCount: 12, FrameW: 160, FrameH: 260, FPS: 10, Loop: true}, 6 * 13, 1, true},
		{"jump_holds_last", component.AnimationDef{Name: "jump", Row: 2, FrameCount: 15, FrameW: 160, FrameH: 260, FPS: 12, Loop: false}, 5 * 20, 14, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			anim := &component.Animation{
				Defs:    map[string]component.AnimationDef{c.def.Name: c.def},
				Current: c.def.Name,
				Playing: true,
			}
			sprite := &component.Sprite{}
			_ = ecs.Add(w, e, component.AnimationComponent.Kind(), anim)
			_ = ecs.Add(w, e, component.SpriteComponent.Kind(), sprite)

			sys := NewAnimationSystem()
			for i := 0; i < c.ticks; i++ {
				sys.Update(w)
			}
			if anim.Frame != c.wantFrame || anim.Playing != c.playing {
				t.Fatalf("expected frame %d playing %v, got %d %v", c.wantFrame, c.playing, anim.Frame, anim.Playing)
			}
			x := c.wantFrame * c.def.FrameW
			y := c.def.Row * c.def.FrameH
			if sprite.Source.Min.X != x || sprite.Source.Min.Y != y || !sprite.UseSource {
				t.Fatalf("unexpected source rect %v", sprite.Source)
			}
		})
	}
}

func TestProjectilePool(t *testing.T) {
	l := newTestLevel(t)
	sys := NewProjectileSystem(960, 540)

	for i := 0; i < l.s.Projectiles.PoolSize; i++ {
		if !sys.Fire(l.w, 100, 100, 600, 0) {
			t.Fatalf("slot %d should be free", i)
		}
	}
	if sys.Fire(l.w, 100, 100, 600, 0) {
		t.Fatalf("pool should be exhausted")
	}

	e := l.level.Projectiles[0]
	tr, _ := ecs.Get(l.w, e, component.TransformComponent.Kind())
	tr.X = 2000
	sys.Update(l.w)
	proj, _ := ecs.Get(l.w, e, component.ProjectileComponent.Kind())
	if proj.Active {
		t.Fatalf("off-screen projectile should be released")
	}
	if !sys.Fire(l.w, 100, 100, 600, 0) {
		t.Fatalf("released slot should be reusable")
	}
}

func TestInputSystemCopiesState(t *testing.T) {
	cases := []struct {
		name  string
		state input.State
		want  component.Input
	}{
		{"none", input.State{}, component.Input{}},
		{"left_jump", input.State{Left: true, Up: true}, component.Input{MoveX: -1, Jump: true}},
		{"right_down", input.State{Right: true, Down: true}, component.Input{MoveX: 1, Down: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := newTestLevel(t)
			NewInputSystem(input.Static(c.state)).Update(l.w)
			in, _ := ecs.Get(l.w, l.level.Player, component.InputComponent.Kind())
			if *in != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, *in)
			}
		})
	}
}

func TestTaskSystemAdvancesScheduler(t *testing.T) {
	sched := tween.NewScheduler()
	fired := 0
	sched.Delay(common.FrameDuration*3, func() { fired++ })
	sys := NewTaskSystem(sched)
	for i := 0; i < 3; i++ {
		sys.Update(nil)
	}
	if fired != 1 {
		t.Fatalf("expected delay to fire after 3 ticks, fired %d", fired)
	}
}
