package obj

import (
	"math"
	"time"

	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/common"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/component"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/levels"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/logger"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/prefabs"
	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"
)

// Phase is the boss tier derived from its health ratio.
type Phase int

const (
	Phase1 Phase = iota + 1
	Phase2
	Phase3
)

// PhaseForRatio maps a health ratio to a phase.
func PhaseForRatio(ratio float64) Phase {
	switch {
	case ratio <= 0.33:
		return Phase3
	case ratio <= 0.66:
		return Phase2
	}
	return Phase1
}

// Multiplier scales the boss's base attack.
func (p Phase) Multiplier() float64 {
	switch p {
	case Phase2:
		return 1.25
	case Phase3:
		return 1.5
	}
	return 1
}

// Speed is the chase speed in pixels per tick.
func (p Phase) Speed() float64 {
	switch p {
	case Phase2:
		return 3
	case Phase3:
		return 4
	}
	return 2
}

// BossAction names what the boss did on a tick.
type BossAction int

const (
	BossIdle BossAction = iota
	BossMelee
	BossDash
	BossChase
)

func (a BossAction) String() string {
	switch a {
	case BossMelee:
		return "melee"
	case BossDash:
		return "dash"
	case BossChase:
		return "chase"
	}
	return "idle"
}

// BossTarget is what the boss fights: a combatant its area attack can pin.
type BossTarget interface {
	component.Combatant
	LockMovement(now time.Time, d time.Duration)
}

// BossTick reports one AI pass.
type BossTick struct {
	Action BossAction
	Hits   []component.HitEvent
	// DashSteps is the number of dash sub-steps taken.
	DashSteps int
}

// Boss is the multi-phase end-of-world enemy with melee, area and dash
// abilities, each gated by its own cooldown.
type Boss struct {
	Entity

	Name       string
	BaseAttack int

	spec  prefabs.BossSpec
	phase Phase
	melee component.Cooldown
	aoe   component.Cooldown
	dash  component.Cooldown
}

func NewBoss(spec prefabs.BossSpec, x, y float64) *Boss {
	spec = spec.WithDefaults()
	return &Boss{
		Entity:     newEntity(KindBoss, x, y, spec.Width, spec.Height, spec.Health),
		Name:       spec.Name,
		BaseAttack: spec.BaseAttack,
		spec:       spec,
		phase:      Phase1,
		melee:      component.NewCooldown(spec.MeleeCooldown()),
		aoe:        component.NewCooldown(spec.AOECooldown()),
		dash:       component.NewCooldown(spec.DashCooldown()),
	}
}

func (b *Boss) Phase() Phase {
	if b == nil {
		return Phase1
	}
	return b.phase
}

// AttackPower is the base attack scaled by the current phase.
func (b *Boss) AttackPower() int {
	if b == nil {
		return 0
	}
	return int(math.Round(float64(b.BaseAttack) * b.phase.Multiplier()))
}

// TakeDamage lowers health and recomputes the phase. A lethal hit leaves the
// phase at its last value.
func (b *Boss) TakeDamage(amount int) {
	if !b.IsAlive() || amount <= 0 {
		return
	}
	b.Life.Damage(amount)
	log := logger.For("boss").WithFields(logrus.Fields{
		"name":   b.Name,
		"health": b.Life.Current(),
	})
	if b.Life.IsDead() {
		log.Debug("boss defeated")
		return
	}
	if next := PhaseForRatio(b.Life.Percentage()); next != b.phase {
		log.WithFields(logrus.Fields{"from": b.phase, "to": next}).Info("boss phase change")
		b.phase = next
	}
}

func (b *Boss) IsAlive() bool {
	return b != nil && !b.Life.IsDead()
}

func (b *Boss) CombatBounds() common.Rect { return b.Bounds() }

func (b *Boss) Faction() component.Faction { return component.FactionEnemy }

// DashReady reports whether the dash cooldown has elapsed.
func (b *Boss) DashReady(now time.Time) bool {
	return b != nil && b.dash.Ready(now)
}

// FollowPlayer runs one AI pass against target:
//   - beyond the aggro radius the boss idles;
//   - within melee range it strikes, and also slams the area if ready and in
//     reach, without moving;
//   - far enough away with the dash ready it dashes, and holds position for
//     the tick when the first sub-step is blocked;
//   - otherwise it walks toward the target.
func (b *Boss) FollowPlayer(target BossTarget, tm *levels.TileMap, now time.Time) BossTick {
	if !b.IsAlive() || target == nil || !target.IsAlive() {
		return BossTick{Action: BossIdle}
	}
	tx, ty := target.CombatBounds().Center()
	delta := cp.Vector{X: tx, Y: ty}.Sub(b.center())
	dist := delta.Length()

	if dist > b.spec.AggroRadius {
		return BossTick{Action: BossIdle}
	}
	b.faceToward(delta.X)

	if dist <= b.spec.MeleeRange {
		tick := BossTick{Action: BossMelee}
		if b.melee.TryUse(now) {
			tick.Hits = append(tick.Hits, b.hit(target, b.AttackPower(), "melee"))
		}
		if dist <= b.spec.AOERadius && target.IsAlive() && b.aoe.TryUse(now) {
			tick.Hits = append(tick.Hits, b.hit(target, b.AttackPower()+b.spec.AOEBonus, "aoe"))
			target.LockMovement(now, b.spec.AOELock())
		}
		return tick
	}

	if dist >= b.spec.DashMinDistance && b.dash.Ready(now) {
		steps := b.dashToward(delta, tm)
		if steps > 0 {
			b.dash.Use(now)
		}
		return BossTick{Action: BossDash, DashSteps: steps}
	}

	speed := b.phase.Speed()
	if b.moveBy(stepToward(delta.X, speed), stepToward(delta.Y, speed), tm) {
		return BossTick{Action: BossChase}
	}
	return BossTick{Action: BossIdle}
}

// dashToward moves in DashSteps equal sub-steps along dir, stopping before
// the first sub-step that would overlap a solid tile.
func (b *Boss) dashToward(dir cp.Vector, tm *levels.TileMap) int {
	if tm == nil || b.spec.DashSteps <= 0 || dir.Length() == 0 {
		return 0
	}
	step := dir.Normalize().Mult(b.spec.DashDistance / float64(b.spec.DashSteps))
	taken := 0
	for i := 0; i < b.spec.DashSteps; i++ {
		next := b.Bounds().Translate(step.X, step.Y)
		if Collides(next, tm) {
			break
		}
		b.X, b.Y = next.X, next.Y
		taken++
	}
	return taken
}

func (b *Boss) hit(target BossTarget, dmg int, source string) component.HitEvent {
	target.TakeDamage(dmg)
	cx, cy := target.CombatBounds().Center()
	return component.HitEvent{
		Source:  b.Name + ":" + source,
		Target:  target,
		Damage:  dmg,
		Lethal:  !target.IsAlive(),
		PosX:    cx,
		PosY:    cy,
		Faction: component.FactionEnemy,
	}
}
