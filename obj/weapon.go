package obj

import (
	"math"
	"time"

	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/common"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/component"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/logger"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/prefabs"
	"github.com/sirupsen/logrus"
)

// Wielder is anything that can swing or fire a weapon.
type Wielder interface {
	component.Combatant
	Bounds() common.Rect
	Facing() bool
	Faction() component.Faction
}

// Arc is the half-ellipse swept by a melee swing. It is anchored on the
// wielder's facing edge at mid height and opens toward the facing side.
type Arc struct {
	CX, CY      float64
	RX, RY      float64
	FacingRight bool
}

// MeleeArc builds the swing area for a wielder of bounds b.
func MeleeArc(b common.Rect, facingRight bool, reach float64) Arc {
	_, cy := b.Center()
	edge := b.X
	if facingRight {
		edge = b.Right()
	}
	return Arc{CX: edge, CY: cy, RX: reach, RY: b.Height / 2, FacingRight: facingRight}
}

// Bounds is the arc's bounding rectangle.
func (a Arc) Bounds() common.Rect {
	x := a.CX
	if !a.FacingRight {
		x = a.CX - a.RX
	}
	return common.Rect{X: x, Y: a.CY - a.RY, Width: a.RX, Height: 2 * a.RY}
}

// Intersects reports whether r overlaps the arc's interior. The test scales
// the ellipse to a unit circle, clips r to the open half plane, and checks
// the clipped box's closest point to the center.
func (a Arc) Intersects(r common.Rect) bool {
	if a.RX <= 0 || a.RY <= 0 || r.Width <= 0 || r.Height <= 0 {
		return false
	}
	u0 := (r.X - a.CX) / a.RX
	u1 := (r.Right() - a.CX) / a.RX
	v0 := (r.Y - a.CY) / a.RY
	v1 := (r.Bottom() - a.CY) / a.RY
	if a.FacingRight {
		if u1 <= 0 {
			return false
		}
		u0 = math.Max(u0, 0)
	} else {
		if u0 >= 0 {
			return false
		}
		u1 = math.Min(u1, 0)
	}
	cu := math.Max(u0, math.Min(0, u1))
	cv := math.Max(v0, math.Min(0, v1))
	return cu*cu+cv*cv < 1
}

// Attack is the outcome of one weapon use.
type Attack struct {
	Weapon     string
	Arc        *Arc
	Projectile *Projectile
	Hits       []component.HitEvent
}

// attackFunc is the per-kind strategy behind Weapon.Use. Strategies run
// after the cooldown gate and never consult it themselves.
type attackFunc func(w *Weapon, attacker Wielder, targets []component.Combatant, boss component.Combatant, now time.Time) Attack

var strategies = map[prefabs.WeaponKind]attackFunc{
	prefabs.WeaponMelee: func(w *Weapon, attacker Wielder, targets []component.Combatant, boss component.Combatant, _ time.Time) Attack {
		arc := MeleeArc(attacker.Bounds(), attacker.Facing(), w.Range)
		return Attack{Weapon: w.Name, Arc: &arc, Hits: w.PerformAttack(attacker, targets, boss)}
	},
	prefabs.WeaponRanged: func(w *Weapon, attacker Wielder, _ []component.Combatant, _ component.Combatant, now time.Time) Attack {
		proj, _ := w.Fire(attacker, now)
		return Attack{Weapon: w.Name, Projectile: proj}
	},
}

// Weapon is a flat descriptor: kind, damage, cooldown and range. Ranged
// weapons also carry projectile tuning.
type Weapon struct {
	Name   string
	Kind   prefabs.WeaponKind
	Damage int
	Range  float64

	spec     prefabs.WeaponSpec
	cooldown component.Cooldown
}

func NewWeapon(spec prefabs.WeaponSpec) *Weapon {
	spec = spec.WithDefaults()
	return &Weapon{
		Name:     spec.Name,
		Kind:     spec.Kind,
		Damage:   spec.Damage,
		Range:    spec.Range,
		spec:     spec,
		cooldown: component.NewCooldown(spec.Cooldown()),
	}
}

// NewArmory builds weapons for the named loadout, skipping unknown names.
func NewArmory(armory prefabs.Armory, names []string) []*Weapon {
	out := make([]*Weapon, 0, len(names))
	for _, name := range names {
		spec, err := armory.Weapon(name)
		if err != nil {
			logger.For("weapon").WithError(err).Warn("loadout weapon skipped")
			continue
		}
		out = append(out, NewWeapon(spec))
	}
	return out
}

func (w *Weapon) Ready(now time.Time) bool {
	return w != nil && w.cooldown.Ready(now)
}

func (w *Weapon) CooldownRemaining(now time.Time) time.Duration {
	if w == nil {
		return 0
	}
	return w.cooldown.Remaining(now)
}

func (w *Weapon) resetCooldown() {
	if w != nil {
		w.cooldown.Reset()
	}
}

// Use performs the weapon's attack if its cooldown has elapsed. It is the
// only place the cooldown is consumed. Melee swings test targets and boss;
// ranged shots ignore both and spawn a projectile.
func (w *Weapon) Use(attacker Wielder, targets []component.Combatant, boss component.Combatant, now time.Time) (Attack, bool) {
	if w == nil || attacker == nil {
		return Attack{}, false
	}
	fn, ok := strategies[w.Kind]
	if !ok || !w.cooldown.TryUse(now) {
		return Attack{}, false
	}
	return fn(w, attacker, targets, boss, now), true
}

// PerformAttack swings a melee weapon: every live target whose combat bounds
// overlap the arc takes weapon damage plus the attacker's attack power. The
// boss, when present and alive, is tested like any other target and hit at
// most once. Cooldown is not consulted.
func (w *Weapon) PerformAttack(attacker Wielder, targets []component.Combatant, boss component.Combatant) []component.HitEvent {
	if w == nil || attacker == nil {
		return nil
	}
	all := targets
	if boss != nil && boss.IsAlive() && !containsCombatant(targets, boss) {
		all = append(append(make([]component.Combatant, 0, len(targets)+1), targets...), boss)
	}
	arc := MeleeArc(attacker.Bounds(), attacker.Facing(), w.Range)
	return w.strike(attacker, arc, all)
}

func (w *Weapon) strike(attacker Wielder, arc Arc, targets []component.Combatant) []component.HitEvent {
	damage := w.Damage + attacker.AttackPower()
	var hits []component.HitEvent
	for _, t := range targets {
		if t == nil || t == component.Combatant(attacker) || !t.IsAlive() {
			continue
		}
		b := t.CombatBounds()
		if !arc.Intersects(b) {
			continue
		}
		t.TakeDamage(damage)
		cx, cy := b.Center()
		hits = append(hits, component.HitEvent{
			Source:  w.Name,
			Target:  t,
			Damage:  damage,
			Lethal:  !t.IsAlive(),
			PosX:    cx,
			PosY:    cy,
			Faction: attacker.Faction(),
		})
	}
	return hits
}

// Fire spawns a projectile from a ranged weapon at the attacker's facing
// edge. It reports false for other kinds. Cooldown is not consulted.
func (w *Weapon) Fire(attacker Wielder, now time.Time) (*Projectile, bool) {
	if w == nil || attacker == nil || w.Kind != prefabs.WeaponRanged {
		return nil, false
	}
	b := attacker.Bounds()
	size := w.spec.ProjectileSize
	_, cy := b.Center()
	x := b.Right()
	vx := w.spec.ProjectileSpeed
	if !attacker.Facing() {
		x = b.X - size
		vx = -vx
	}
	p := NewProjectile(ProjectileConfig{
		Source:   w.Name,
		X:        x,
		Y:        cy - size/2,
		Size:     size,
		VX:       vx,
		Damage:   w.Damage + attacker.AttackPower(),
		Range:    w.Range,
		Lifetime: w.spec.ProjectileLifetime(),
		Faction:  attacker.Faction(),
	}, now)
	logger.For("weapon").WithFields(logrus.Fields{
		"weapon": w.Name,
		"x":      p.X,
		"y":      p.Y,
		"vx":     vx,
	}).Debug("projectile fired")
	return p, true
}

func containsCombatant(list []component.Combatant, c component.Combatant) bool {
	for _, t := range list {
		if t == c {
			return true
		}
	}
	return false
}
