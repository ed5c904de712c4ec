package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
	"github.com/milk9111/giftrunner/ecs/entity"
	"github.com/milk9111/giftrunner/prefabs"
	"github.com/milk9111/giftrunner/tween"
	"github.com/tanema/gween/ease"
)

// InteractionSystem resolves player-enemy contacts reported by the physics
// step: a stomp from above destroys the enemy, anything else steals a
// present unless the player is invincible.
type InteractionSystem struct {
	settings  prefabs.Settings
	scheduler *tween.Scheduler
	logger    *log.Logger
}

func NewInteractionSystem(s prefabs.Settings, scheduler *tween.Scheduler, logger *log.Logger) *InteractionSystem {
	return &InteractionSystem{settings: s, scheduler: scheduler, logger: logger}
}

func (i *InteractionSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}
	w.Events().Each(ecs.EventPlayerEnemyContact, func(evt ecs.Event) {
		contact, ok := evt.Data.(ecs.ContactEvent)
		if !ok {
			return
		}
		i.resolve(w, contact.Player, contact.Other)
	})
}

func (i *InteractionSystem) resolve(w *ecs.World, playerEnt, enemyEnt ecs.Entity) {
	if !w.IsAlive(playerEnt) || !w.IsAlive(enemyEnt) {
		return
	}
	enemy, ok := ecs.Get(w, enemyEnt, component.EnemyComponent.Kind())
	if !ok || enemy.Hit {
		return
	}
	player, ok := ecs.Get(w, playerEnt, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	pt, ok := ecs.Get(w, playerEnt, component.TransformComponent.Kind())
	if !ok {
		return
	}
	body, ok := ecs.Get(w, playerEnt, component.PhysicsBodyComponent.Kind())
	if !ok {
		return
	}

	if _, top, _, _ := colliderRect(pt, body); top < player.StompMaxY {
		i.stomp(w, playerEnt, enemyEnt, player)
		return
	}
	if player.Invincible {
		return
	}
	i.steal(w, playerEnt, enemyEnt, enemy, player, pt)
}

func (i *InteractionSystem) stomp(w *ecs.World, playerEnt, enemyEnt ecs.Entity, player *component.Player) {
	ecs.DestroyEntity(w, enemyEnt)
	PlaySound(w, common.SoundSmash)
	if v, ok := ecs.Get(w, playerEnt, component.VelocityComponent.Kind()); ok {
		v.Y = player.StompBounce
	}
}

func (i *InteractionSystem) steal(w *ecs.World, playerEnt, enemyEnt ecs.Entity, enemy *component.Enemy, player *component.Player, pt *component.Transform) {
	PlaySound(w, common.SoundStolen)

	_, score, ok := scoreBoard(w)
	if !ok {
		return
	}
	if score.Value == 0 {
		EndRound(w, ecs.EventRoundLost)
		return
	}
	AdjustScore(w, -1)

	// The enemy leaves the simulation before it starts its flight.
	enemy.Hit = true
	ecs.Remove(w, enemyEnt, component.PhysicsBodyComponent.Kind())

	steal := i.settings.Steal
	et, ok := ecs.Get(w, enemyEnt, component.TransformComponent.Kind())
	if ok {
		dir := direction(pt.X, et.X)
		vx, vy := steal.FlightX*dir, steal.FlightY
		if v, ok := ecs.Get(w, enemyEnt, component.VelocityComponent.Kind()); ok {
			v.X, v.Y = vx, vy
		}
		enemy.FacingLeft = dir < 0
		if sprite, ok := ecs.Get(w, enemyEnt, component.SpriteComponent.Kind()); ok {
			sprite.FacingLeft = enemy.FacingLeft
		}
		_ = ecs.Add(w, enemyEnt, component.TTLComponent.Kind(), &component.TTL{
			Frames: common.Frames(prefabs.Millis(steal.FlightMS)),
		})
		if _, err := entity.NewStolenPresent(w, i.settings, et.X, et.Y+steal.OffsetY, vx, vy); err != nil && i.logger != nil {
			i.logger.Warn("spawn stolen present", "error", err)
		}
	}

	i.startInvincibility(w, playerEnt, player)
}

// startInvincibility flickers the player sprite and clears the flag once the
// flicker has run its course.
func (i *InteractionSystem) startInvincibility(w *ecs.World, playerEnt ecs.Entity, player *component.Player) {
	player.Invincible = true
	sprite, _ := ecs.Get(w, playerEnt, component.SpriteComponent.Kind())
	steal := i.settings.Steal

	player.Flicker.Cancel()
	player.Flicker = i.scheduler.Tween(tween.Config{
		Duration: prefabs.Millis(steal.FlickerMS),
		Ease:     ease.OutQuad,
		Yoyo:     true,
		Repeat:   steal.FlickerRepeat,
		OnUpdate: func(v float64) {
			if sprite != nil {
				sprite.Alpha = common.Lerp(1, steal.FlickerAlpha, v)
			}
		},
		OnComplete: func() {
			player.Invincible = false
			if sprite != nil {
				sprite.Alpha = 1
			}
		},
	})
}
