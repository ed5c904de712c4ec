package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeEnemy
	collisionTypeSolid
	collisionTypeBound
)

// groundHalfWidth makes the floor effectively infinite so scrolling never
// runs off its end.
const groundHalfWidth = 1e6

const groundEpsilon = 0.5

// boundThickness is how far the wall and ceiling boxes reach outside the screen.
const boundThickness = 256.0

// PhysicsSystem mirrors PhysicsBody entities into a cp space, steps it once
// per tick and copies positions, velocities and contacts back.
type PhysicsSystem struct {
	space         *cp.Space
	gravity       float64
	handlersReady bool

	entities     map[ecs.Entity]*bodyInfo
	shapes       map[*cp.Shape]ecs.Entity
	playerShapes map[*cp.Shape]bool
	ground       *bodyInfo
	groundY      float64
	boundsW      float64
	bounded      map[ecs.Entity]bool

	grounded map[ecs.Entity]bool
	contacts map[ecs.Entity]ecs.ContactEvent
	order    []ecs.Entity
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
}

func NewPhysicsSystem(gravity float64) *PhysicsSystem {
	ps := &PhysicsSystem{
		gravity:      gravity,
		entities:     make(map[ecs.Entity]*bodyInfo),
		shapes:       make(map[*cp.Shape]ecs.Entity),
		playerShapes: make(map[*cp.Shape]bool),
		bounded:      make(map[ecs.Entity]bool),
		grounded:     make(map[ecs.Entity]bool),
		contacts:     make(map[ecs.Entity]ecs.ContactEvent),
	}
	ps.space = ps.newSpace()
	return ps
}

func (ps *PhysicsSystem) newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: ps.gravity})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.space = ps.newSpace()
		ps.handlersReady = false
	}

	ps.ensureHandlers()
	ps.syncGround(w)
	ps.syncEntities(w)
	ps.pushState(w)

	clear(ps.grounded)
	clear(ps.contacts)
	ps.order = ps.order[:0]

	ps.space.Step(common.FrameDuration.Seconds())

	ps.pullState(w)
	ps.flushContacts(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	groundHandler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeSolid)
	groundHandler.UserData = ps
	groundHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		sys.markGrounded(arb)
		return true
	}

	enemyHandler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeEnemy)
	enemyHandler.UserData = ps
	enemyHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		player, enemy, ok := sys.pair(arb)
		if !ok {
			return true
		}
		sys.markGrounded(arb)
		if _, seen := sys.contacts[enemy]; !seen {
			sys.contacts[enemy] = ecs.ContactEvent{Player: player, Other: enemy}
			sys.order = append(sys.order, enemy)
		}
		return true
	}

	// Enemies walk through each other.
	crowdHandler := ps.space.NewCollisionHandler(collisionTypeEnemy, collisionTypeEnemy)
	crowdHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		return false
	}

	ps.handlersReady = true
}

// markGrounded records a support contact when the normal points from the
// player down into whatever it touches.
func (ps *PhysicsSystem) markGrounded(arb *cp.Arbiter) {
	shapeA, shapeB := arb.Shapes()
	playerIsA := ps.playerShapes[shapeA]
	playerShape := shapeA
	if !playerIsA {
		playerShape = shapeB
	}
	player, ok := ps.shapes[playerShape]
	if !ok || !ps.playerShapes[playerShape] {
		return
	}
	n := arb.Normal()
	if !playerIsA {
		n = n.Neg()
	}
	if n.Y > 0.5 {
		ps.grounded[player] = true
	}
}

func (ps *PhysicsSystem) pair(arb *cp.Arbiter) (player, enemy ecs.Entity, ok bool) {
	shapeA, shapeB := arb.Shapes()
	if !ps.playerShapes[shapeA] {
		shapeA, shapeB = shapeB, shapeA
	}
	player, okA := ps.shapes[shapeA]
	enemy, okB := ps.shapes[shapeB]
	return player, enemy, okA && okB
}

func (ps *PhysicsSystem) syncGround(w *ecs.World) {
	e, ok := ecs.First(w, component.GroundComponent.Kind())
	if !ok {
		return
	}
	ground, ok := ecs.Get(w, e, component.GroundComponent.Kind())
	if !ok {
		return
	}
	if ps.ground != nil && ps.groundY == ground.Top && ps.boundsW == ground.Width {
		return
	}
	if ps.ground != nil {
		ps.removeInfo(ps.ground)
	}

	// A thick box whose top edge is the walking surface.
	const thickness = 64.0
	floor := cp.NewBox2(ps.space.StaticBody, cp.BB{L: -groundHalfWidth, B: ground.Top, R: groundHalfWidth, T: ground.Top + thickness}, 0)
	floor.SetFriction(0)
	floor.SetElasticity(ground.Elasticity)
	floor.SetCollisionType(collisionTypeSolid)
	ps.space.AddShape(floor)
	shapes := []*cp.Shape{floor}

	if ground.Width > 0 {
		walls := []cp.BB{
			{L: -boundThickness, B: -boundThickness, R: 0, T: ground.Top + thickness},
			{L: ground.Width, B: -boundThickness, R: ground.Width + boundThickness, T: ground.Top + thickness},
			{L: -boundThickness, B: -boundThickness, R: ground.Width + boundThickness, T: 0},
		}
		for _, bb := range walls {
			wall := cp.NewBox2(ps.space.StaticBody, bb, 0)
			wall.SetFriction(0)
			wall.SetElasticity(0)
			wall.SetCollisionType(collisionTypeBound)
			ps.space.AddShape(wall)
			shapes = append(shapes, wall)
		}
	}

	ps.ground = &bodyInfo{body: ps.space.StaticBody, shapes: shapes}
	ps.groundY = ground.Top
	ps.boundsW = ground.Width
}

// clampToBounds pulls a bounded body back on screen after the step and stops
// any motion into the edge it touched. Bodies spawned or scrolled outside
// the screen are brought in here; the wall shapes keep resting bodies out.
func (ps *PhysicsSystem) clampToBounds(t *component.Transform, body *component.PhysicsBody, v *component.Velocity) {
	if ps.boundsW <= 0 {
		return
	}
	x, y, cw, _ := colliderRect(t, body)
	switch {
	case x < 0:
		t.X -= x
		if v != nil && v.X < 0 {
			v.X = 0
		}
	case x+cw > ps.boundsW:
		t.X -= x + cw - ps.boundsW
		if v != nil && v.X > 0 {
			v.X = 0
		}
	}
	if y < 0 {
		t.Y -= y
		if v != nil && v.Y < 0 {
			v.Y = 0
		}
	}
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		if _, exists := ps.entities[e]; exists {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		collisionType := collisionTypeSolid
		switch {
		case ecs.Has(w, e, component.PlayerTagComponent.Kind()):
			collisionType = collisionTypePlayer
		case ecs.Has(w, e, component.EnemyComponent.Kind()):
			collisionType = collisionTypeEnemy
		}

		info := ps.createBodyInfo(transform, bodyComp, collisionType)
		ps.entities[e] = info
		ps.bounded[e] = collisionType != collisionTypeSolid
		for _, shape := range info.shapes {
			ps.shapes[shape] = e
			if collisionType == collisionTypePlayer {
				ps.playerShapes[shape] = true
			}
		}
		bodyComp.Body = info.body
		bodyComp.Shape = info.shapes[0]
	}
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody, collisionType cp.CollisionType) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	if width <= 0 || height <= 0 {
		width = 32
		height = 32
	}
	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	// Infinite moment keeps the box upright.
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: transform.X + bodyComp.OffsetX, Y: transform.Y + bodyComp.OffsetY})
	if bodyComp.NoGravity {
		body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
		})
	}

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionType)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shapes: []*cp.Shape{shape}}
}

// pushState copies ECS positions and velocities into the bodies so that
// systems running before the step (controller, scroll, AI) take effect.
func (ps *PhysicsSystem) pushState(w *ecs.World) {
	for e, info := range ps.entities {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			info.body.SetPosition(cp.Vector{X: t.X + bodyComp.OffsetX, Y: t.Y + bodyComp.OffsetY})
		}
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			info.body.SetVelocityVector(cp.Vector{X: v.X, Y: v.Y})
		}
	}
}

func (ps *PhysicsSystem) pullState(w *ecs.World) {
	for e, info := range ps.entities {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		t.X = pos.X - bodyComp.OffsetX
		t.Y = pos.Y - bodyComp.OffsetY
		v, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
		if ok {
			vel := info.body.Velocity()
			v.X = vel.X
			v.Y = vel.Y
		}
		if ps.bounded[e] {
			ps.clampToBounds(t, bodyComp, v)
		}
	}
}

func (ps *PhysicsSystem) flushContacts(w *ecs.World) {
	ecs.ForEach3(w, component.PlayerCollisionComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pc *component.PlayerCollision, body *component.PhysicsBody, t *component.Transform) {
		pc.Grounded = ps.grounded[e]
		// Resting contacts can drop out of the arbiter list for a step.
		if !pc.Grounded && ps.ground != nil {
			_, y, _, h := colliderRect(t, body)
			if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok && v.Y >= 0 && y+h >= ps.groundY-groundEpsilon {
				pc.Grounded = true
			}
		}
	})

	for _, enemy := range ps.order {
		contact := ps.contacts[enemy]
		w.Events().Push(ecs.Event{Type: ecs.EventPlayerEnemyContact, Data: contact})
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		ps.removeInfo(info)
		delete(ps.entities, e)
		delete(ps.bounded, e)
	}
}

func (ps *PhysicsSystem) removeInfo(info *bodyInfo) {
	for _, shape := range info.shapes {
		if shape == nil {
			continue
		}
		ps.space.RemoveShape(shape)
		delete(ps.shapes, shape)
		delete(ps.playerShapes, shape)
	}
	if info.body != nil && info.body != ps.space.StaticBody {
		ps.space.RemoveBody(info.body)
	}
}
