package system

import (
	"github.com/charmbracelet/log"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
	"github.com/milk9111/giftrunner/prefabs"
)

// EnemyScript is the script that steers walkers unless overridden.
const EnemyScript = "enemy.tengo"

const enemyDispatchScript = `
update(__engine)
`

// EnemyAISystem steers every live walker toward the player. Behaviour comes
// from a tengo script exposing update(engine); when the script is missing or
// fails the built-in chase is used instead.
type EnemyAISystem struct {
	logger   *log.Logger
	compiled *tengo.Compiled
	warned   bool
}

// NewEnemyAISystem compiles src. A nil or broken script leaves the system on
// the built-in chase.
func NewEnemyAISystem(src []byte, logger *log.Logger) *EnemyAISystem {
	a := &EnemyAISystem{logger: logger}
	if len(src) == 0 {
		return a
	}
	compiled, err := compileEnemyScript(src)
	if err != nil {
		a.warn("compile enemy script", err)
		return a
	}
	a.compiled = compiled
	return a
}

// LoadEnemyAISystem reads the named script through prefabs and compiles it.
func LoadEnemyAISystem(name string, logger *log.Logger) *EnemyAISystem {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		a := &EnemyAISystem{logger: logger}
		a.warn("load enemy script", err)
		return a
	}
	return NewEnemyAISystem(src, logger)
}

func compileEnemyScript(src []byte) (*tengo.Compiled, error) {
	full := string(src) + "\n" + enemyDispatchScript
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__engine", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	return script.Compile()
}

// Scripted reports whether a compiled script is driving the enemies.
func (a *EnemyAISystem) Scripted() bool {
	return a != nil && a.compiled != nil
}

func (a *EnemyAISystem) warn(msg string, err error) {
	if a.warned {
		return
	}
	a.warned = true
	if a.logger != nil {
		a.logger.Warn(msg+", using built-in chase", "error", err)
	}
}

type enemyContext struct {
	enemy    *component.Enemy
	sprite   *component.Sprite
	t        *component.Transform
	v        *component.Velocity
	playerX  float64
	playerY  float64
	grounded bool
}

func (c *enemyContext) setVelocityX(vx float64) {
	c.v.X = vx
}

func (c *enemyContext) setFacingLeft(left bool) {
	c.enemy.FacingLeft = left
	if c.sprite != nil {
		c.sprite.FacingLeft = left
	}
}

func (a *EnemyAISystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}
	player, ok := playerEntity(w)
	if !ok {
		return
	}
	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	grounded := playerGrounded(w, player)

	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, t *component.Transform, v *component.Velocity) {
		// Stolen enemies are in flight and never steered again.
		if enemy.Hit || !ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			return
		}
		sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		ctx := &enemyContext{
			enemy:    enemy,
			sprite:   sprite,
			t:        t,
			v:        v,
			playerX:  pt.X,
			playerY:  pt.Y,
			grounded: grounded,
		}
		if a.compiled != nil {
			if err := a.run(ctx); err == nil {
				return
			} else {
				a.warn("run enemy script", err)
			}
		}
		chase(ctx)
	})
}

// chase re-aims only while the player is grounded or the enemy is standing
// still, so a jump over an enemy does not turn it around mid-stride.
func chase(ctx *enemyContext) {
	if !ctx.grounded && ctx.v.X != 0 {
		return
	}
	if ctx.t.X > ctx.playerX {
		ctx.setVelocityX(-ctx.enemy.Speed)
		ctx.setFacingLeft(true)
		return
	}
	ctx.setVelocityX(ctx.enemy.Speed)
	ctx.setFacingLeft(false)
}

func (a *EnemyAISystem) run(ctx *enemyContext) error {
	if err := a.compiled.Set("__engine", buildEnemyEngine(ctx)); err != nil {
		return err
	}
	return a.compiled.Run()
}

func buildEnemyEngine(ctx *enemyContext) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["get_position"] = &tengo.UserFunction{Name: "get_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: ctx.t.X}, &tengo.Float{Value: ctx.t.Y}}}, nil
	}}

	values["get_player_position"] = &tengo.UserFunction{Name: "get_player_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: ctx.playerX}, &tengo.Float{Value: ctx.playerY}}}, nil
	}}

	values["player_grounded"] = &tengo.UserFunction{Name: "player_grounded", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx.grounded {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["get_velocity_x"] = &tengo.UserFunction{Name: "get_velocity_x", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: ctx.v.X}, nil
	}}

	values["set_velocity_x"] = &tengo.UserFunction{Name: "set_velocity_x", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		vx, ok := tengo.ToFloat64(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "vx", Expected: "float", Found: args[0].TypeName()}
		}
		ctx.setVelocityX(vx)
		return tengo.UndefinedValue, nil
	}}

	values["set_facing_left"] = &tengo.UserFunction{Name: "set_facing_left", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		ctx.setFacingLeft(!args[0].IsFalsy())
		return tengo.UndefinedValue, nil
	}}

	values["speed"] = &tengo.UserFunction{Name: "speed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: ctx.enemy.Speed}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}
