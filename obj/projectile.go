package obj

import (
	"math"
	"time"

	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/common"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/component"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/levels"
)

type ProjectileConfig struct {
	Source string
	X, Y   float64
	Size   float64
	VX, VY float64
	Damage int
	// Range caps travel distance in pixels. Zero means unlimited.
	Range    float64
	Lifetime time.Duration
	Faction  component.Faction
}

// Projectile flies on its own after being fired. It dies when its lifetime
// or range runs out, when it enters a solid tile, or when it hits something.
type Projectile struct {
	Source string
	X, Y   float64
	Size   float64
	VX, VY float64
	Damage int

	faction   component.Faction
	rangePx   float64
	travelled float64
	expiresAt time.Time
	dead      bool
}

func NewProjectile(cfg ProjectileConfig, now time.Time) *Projectile {
	if cfg.Size <= 0 {
		cfg.Size = 8
	}
	p := &Projectile{
		Source:  cfg.Source,
		X:       cfg.X,
		Y:       cfg.Y,
		Size:    cfg.Size,
		VX:      cfg.VX,
		VY:      cfg.VY,
		Damage:  cfg.Damage,
		faction: cfg.Faction,
		rangePx: cfg.Range,
	}
	if cfg.Lifetime > 0 {
		p.expiresAt = now.Add(cfg.Lifetime)
	}
	return p
}

func (p *Projectile) Bounds() common.Rect {
	if p == nil {
		return common.Rect{}
	}
	return common.Rect{X: p.X, Y: p.Y, Width: p.Size, Height: p.Size}
}

func (p *Projectile) Faction() component.Faction {
	if p == nil {
		return component.FactionNeutral
	}
	return p.faction
}

// Alive reports whether the projectile is still in flight.
func (p *Projectile) Alive() bool {
	return p != nil && !p.dead
}

// Kill removes the projectile from flight.
func (p *Projectile) Kill() {
	if p != nil {
		p.dead = true
	}
}

// Step advances the projectile one tick and reports whether it is still
// alive afterwards.
func (p *Projectile) Step(tm *levels.TileMap, now time.Time) bool {
	if !p.Alive() {
		return false
	}
	if !p.expiresAt.IsZero() && !now.Before(p.expiresAt) {
		p.dead = true
		return false
	}
	p.X += p.VX
	p.Y += p.VY
	p.travelled += math.Hypot(p.VX, p.VY)
	if p.rangePx > 0 && p.travelled >= p.rangePx {
		p.dead = true
		return false
	}
	if Collides(p.Bounds(), tm) {
		p.dead = true
		return false
	}
	if tm != nil {
		b := p.Bounds()
		if b.Right() < 0 || b.Bottom() < 0 || b.X > tm.WidthPx() || b.Y > tm.HeightPx() {
			p.dead = true
			return false
		}
	}
	return true
}

// HitFirst damages the first live, hostile target whose combat bounds overlap
// the projectile and kills the projectile.
func (p *Projectile) HitFirst(targets []component.Combatant, factionOf func(component.Combatant) component.Faction) (component.HitEvent, bool) {
	if !p.Alive() {
		return component.HitEvent{}, false
	}
	b := p.Bounds()
	for _, t := range targets {
		if t == nil || !t.IsAlive() {
			continue
		}
		if factionOf != nil && !component.CanHit(p.faction, factionOf(t)) {
			continue
		}
		tb := t.CombatBounds()
		if !b.Intersects(tb) {
			continue
		}
		t.TakeDamage(p.Damage)
		p.dead = true
		cx, cy := tb.Center()
		return component.HitEvent{
			Source:  p.Source,
			Target:  t,
			Damage:  p.Damage,
			Lethal:  !t.IsAlive(),
			PosX:    cx,
			PosY:    cy,
			Faction: p.faction,
		}, true
	}
	return component.HitEvent{}, false
}
