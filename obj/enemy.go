package obj

import (
	"time"

	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/common"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/component"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/levels"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/logger"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/prefabs"
	"github.com/sirupsen/logrus"
)

// EnemyState is the lifecycle of a regular enemy. Only RUNNING and HURT
// alternate; every other transition is one way.
type EnemyState int

const (
	EnemyRunning EnemyState = iota
	EnemyHurt
	EnemyDying
	EnemyDead
)

func (s EnemyState) String() string {
	switch s {
	case EnemyRunning:
		return "running"
	case EnemyHurt:
		return "hurt"
	case EnemyDying:
		return "dying"
	case EnemyDead:
		return "dead"
	}
	return "unknown"
}

// enemyBehavior is implemented by each concrete enemy state.
type enemyBehavior interface {
	State() EnemyState
	Enter(e *Enemy)
	Tick(e *Enemy, target component.Combatant, tm *levels.TileMap, now time.Time) (component.HitEvent, bool)
}

// singletons for each state to avoid allocating on every transition
var (
	behaviorRunning enemyBehavior = enemyRunning{}
	behaviorHurt    enemyBehavior = enemyHurt{}
	behaviorDying   enemyBehavior = enemyDying{}
	behaviorDead    enemyBehavior = enemyDead{}
)

type enemyRunning struct{}

func (enemyRunning) State() EnemyState { return EnemyRunning }
func (enemyRunning) Enter(e *Enemy)    {}
func (enemyRunning) Tick(e *Enemy, target component.Combatant, tm *levels.TileMap, now time.Time) (component.HitEvent, bool) {
	if target == nil || !target.IsAlive() {
		return component.HitEvent{}, false
	}
	tb := target.CombatBounds()
	tx, ty := tb.Center()
	ex, ey := e.Bounds().Center()
	dx, dy := tx-ex, ty-ey

	e.faceToward(dx)
	d, err := e.script.decide(chaseInput{DX: dx, DY: dy, Speed: e.Speed, AttackReady: e.attackCooldown.Ready(now)})
	if err != nil {
		e.scriptFailed(err)
		return component.HitEvent{}, false
	}
	// the script picks direction; Go keeps the step within Speed
	e.moveBy(stepToward(d.MoveX, e.Speed), stepToward(d.MoveY, e.Speed), tm)

	if !d.Attack || !e.Bounds().Intersects(tb) || !e.attackCooldown.TryUse(now) {
		return component.HitEvent{}, false
	}
	dmg := e.AttackPower()
	target.TakeDamage(dmg)
	cx, cy := tb.Center()
	return component.HitEvent{
		Source:  e.Name,
		Target:  target,
		Damage:  dmg,
		Lethal:  !target.IsAlive(),
		PosX:    cx,
		PosY:    cy,
		Faction: component.FactionEnemy,
	}, true
}

type enemyHurt struct{}

func (enemyHurt) State() EnemyState { return EnemyHurt }
func (enemyHurt) Enter(e *Enemy)    { e.frames = e.hurtFrames }
func (enemyHurt) Tick(e *Enemy, _ component.Combatant, _ *levels.TileMap, _ time.Time) (component.HitEvent, bool) {
	e.frames--
	if e.frames <= 0 {
		e.setState(behaviorRunning)
	}
	return component.HitEvent{}, false
}

type enemyDying struct{}

func (enemyDying) State() EnemyState { return EnemyDying }
func (enemyDying) Enter(e *Enemy)    { e.frames = e.dyingFrames }
func (enemyDying) Tick(e *Enemy, _ component.Combatant, _ *levels.TileMap, _ time.Time) (component.HitEvent, bool) {
	e.frames--
	if e.frames <= 0 {
		e.setState(behaviorDead)
	}
	return component.HitEvent{}, false
}

type enemyDead struct{}

func (enemyDead) State() EnemyState { return EnemyDead }
func (enemyDead) Enter(e *Enemy)    { e.frames = 0 }
func (enemyDead) Tick(*Enemy, component.Combatant, *levels.TileMap, time.Time) (component.HitEvent, bool) {
	return component.HitEvent{}, false
}

// Enemy is a regular chaser: it walks toward the player and hits on contact.
// The RUNNING step is decided by its ChaseScript.
type Enemy struct {
	Entity

	// ID is assigned by whoever spawns the enemy; zero means unassigned.
	ID     int
	Name   string
	Attack int
	Speed  float64

	hurtFrames     int
	dyingFrames    int
	frames         int
	attackCooldown component.Cooldown
	script         *ChaseScript
	scriptErr      bool
	state          enemyBehavior
}

// NewEnemy builds an enemy and compiles the script its spec names. Spawners
// of many enemies should compile once and use NewEnemyWithScript.
func NewEnemy(spec prefabs.EnemySpec, x, y float64) *Enemy {
	spec = spec.WithDefaults()
	script, err := LoadChaseScript(spec.Script)
	if err != nil {
		logger.For("enemy").WithError(err).Error("enemy has no chase script")
	}
	return NewEnemyWithScript(spec, script, x, y)
}

// NewEnemyWithScript builds an enemy driven by script. A nil script leaves
// the enemy standing still while RUNNING.
func NewEnemyWithScript(spec prefabs.EnemySpec, script *ChaseScript, x, y float64) *Enemy {
	spec = spec.WithDefaults()
	return &Enemy{
		Entity:         newEntity(KindEnemy, x, y, spec.Width, spec.Height, spec.Health),
		Name:           spec.Name,
		Attack:         spec.Attack,
		Speed:          spec.Speed,
		hurtFrames:     spec.HurtFrames,
		dyingFrames:    spec.DyingFrames,
		attackCooldown: component.NewCooldown(spec.AttackCooldown()),
		script:         script,
		state:          behaviorRunning,
	}
}

// scriptFailed logs the first failing run only; a broken script would
// otherwise log every tick.
func (e *Enemy) scriptFailed(err error) {
	if e.scriptErr {
		return
	}
	e.scriptErr = true
	logger.For("enemy").WithFields(logrus.Fields{
		"id":     e.ID,
		"name":   e.Name,
		"script": e.script.Name(),
	}).WithError(err).Warn("chase script failed, enemy holds still")
}

func (e *Enemy) setState(next enemyBehavior) {
	if e == nil || next == nil {
		return
	}
	e.state = next
	next.Enter(e)
}

// State returns the current lifecycle state.
func (e *Enemy) State() EnemyState {
	if e == nil || e.state == nil {
		return EnemyDead
	}
	return e.state.State()
}

// Update advances the state machine one tick. In RUNNING the enemy chases
// target and returns the hit it landed, if any.
func (e *Enemy) Update(target component.Combatant, tm *levels.TileMap, now time.Time) (component.HitEvent, bool) {
	if e == nil || e.state == nil {
		return component.HitEvent{}, false
	}
	return e.state.Tick(e, target, tm, now)
}

func (e *Enemy) AttackPower() int {
	if e == nil {
		return 0
	}
	return e.Attack
}

// TakeDamage hurts the enemy, or starts dying once health reaches 0. Damage
// while dying or dead is ignored.
func (e *Enemy) TakeDamage(amount int) {
	if !e.IsAlive() || amount <= 0 {
		return
	}
	e.Life.Damage(amount)
	if e.Life.IsDead() {
		logger.For("enemy").WithFields(logrus.Fields{
			"id":   e.ID,
			"name": e.Name,
		}).Debug("enemy killed")
		e.setState(behaviorDying)
		return
	}
	e.setState(behaviorHurt)
}

// IsAlive is true only while RUNNING or HURT.
func (e *Enemy) IsAlive() bool {
	s := e.State()
	return s == EnemyRunning || s == EnemyHurt
}

func (e *Enemy) CombatBounds() common.Rect { return e.Bounds() }

func (e *Enemy) Faction() component.Faction { return component.FactionEnemy }

// Removable reports whether the enemy finished dying.
func (e *Enemy) Removable() bool { return e.State() == EnemyDead }
