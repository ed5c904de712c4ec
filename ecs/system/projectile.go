package system

import (
	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
)

// ProjectileSystem returns projectiles that have left the screen to their
// pool. Hitting an enemy has no effect yet.
type ProjectileSystem struct {
	width  float64
	height float64
}

func NewProjectileSystem(screenWidth, screenHeight float64) *ProjectileSystem {
	return &ProjectileSystem{width: screenWidth, height: screenHeight}
}

func (p *ProjectileSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, proj *component.Projectile, t *component.Transform) {
		if !proj.Active {
			return
		}
		if t.X+proj.Width/2 < 0 || t.X-proj.Width/2 > p.width || t.Y+proj.Height/2 < 0 || t.Y-proj.Height/2 > p.height {
			p.release(w, e, proj)
			return
		}
		px, py := t.X-proj.Width/2, t.Y-proj.Height/2
		ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(enemy ecs.Entity, _ *component.Enemy, et *component.Transform, body *component.PhysicsBody) {
			ex, ey, ew, eh := colliderRect(et, body)
			if common.Intersects(px, py, proj.Width, proj.Height, ex, ey, ew, eh) {
				p.HitEnemy(w, e, enemy)
			}
		})
	})
}

// Fire activates a free projectile slot at (x, y) moving at (vx, vy). It
// reports false when the pool is exhausted.
func (p *ProjectileSystem) Fire(w *ecs.World, x, y, vx, vy float64) bool {
	var slot ecs.Entity
	var found *component.Projectile
	ecs.ForEach(w, component.ProjectileComponent.Kind(), func(e ecs.Entity, proj *component.Projectile) {
		if found == nil && !proj.Active {
			slot, found = e, proj
		}
	})
	if found == nil {
		return false
	}
	found.Active = true
	if t, ok := ecs.Get(w, slot, component.TransformComponent.Kind()); ok {
		t.X, t.Y = x, y
	}
	if sprite, ok := ecs.Get(w, slot, component.SpriteComponent.Kind()); ok {
		sprite.Hidden = false
	}
	if v, ok := ecs.Get(w, slot, component.VelocityComponent.Kind()); ok {
		v.X, v.Y = vx, vy
	} else {
		_ = ecs.Add(w, slot, component.VelocityComponent.Kind(), &component.Velocity{X: vx, Y: vy})
	}
	return true
}

func (p *ProjectileSystem) release(w *ecs.World, e ecs.Entity, proj *component.Projectile) {
	proj.Active = false
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Hidden = true
	}
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		v.X, v.Y = 0, 0
	}
}

// HitEnemy is called for every projectile overlapping an enemy. Hits have no
// effect.
func (p *ProjectileSystem) HitEnemy(_ *ecs.World, _, _ ecs.Entity) {}
