package system

import (
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/component"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/levels"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/logger"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/obj"
	"github.com/sirupsen/logrus"
)

// CombatManager is the single entry point for combat actions. It owns the
// live projectiles and the boss reference of the current map.
type CombatManager struct {
	clock       component.Clock
	boss        *obj.Boss
	projectiles []*obj.Projectile
	hits        []component.HitEvent
	lastArc     *obj.Arc
	log         *logrus.Entry
}

// NewCombatManager creates a manager reading time from clock. A nil clock
// uses the system clock.
func NewCombatManager(clock component.Clock) *CombatManager {
	if clock == nil {
		clock = component.SystemClock{}
	}
	return &CombatManager{clock: clock, log: logger.For("combat")}
}

// SetBoss installs the boss of the current map; nil clears it.
func (c *CombatManager) SetBoss(b *obj.Boss) {
	if c == nil {
		return
	}
	c.boss = b
}

func (c *CombatManager) Boss() *obj.Boss {
	if c == nil {
		return nil
	}
	return c.boss
}

// Projectiles returns a snapshot of the live projectiles.
func (c *CombatManager) Projectiles() []obj.Projectile {
	if c == nil {
		return nil
	}
	out := make([]obj.Projectile, 0, len(c.projectiles))
	for _, p := range c.projectiles {
		out = append(out, *p)
	}
	return out
}

// Hits returns the hits applied since the last BeginTick.
func (c *CombatManager) Hits() []component.HitEvent {
	if c == nil {
		return nil
	}
	return append([]component.HitEvent(nil), c.hits...)
}

// LastArc is the melee area of the most recent swing this tick, if any.
func (c *CombatManager) LastArc() (obj.Arc, bool) {
	if c == nil || c.lastArc == nil {
		return obj.Arc{}, false
	}
	return *c.lastArc, true
}

// BeginTick drops the previous tick's hit record.
func (c *CombatManager) BeginTick() {
	if c == nil {
		return
	}
	c.hits = c.hits[:0]
	c.lastArc = nil
}

// Record appends hits produced outside the manager, such as enemy contact
// attacks and boss abilities.
func (c *CombatManager) Record(hits ...component.HitEvent) {
	if c == nil {
		return
	}
	c.hits = append(c.hits, hits...)
}

// ApplyPlayerAttack uses the player's equipped weapon against enemies and the
// boss. It reports false when there is no weapon or it is cooling down.
func (c *CombatManager) ApplyPlayerAttack(player *obj.Player, enemies []*obj.Enemy) (obj.Attack, bool) {
	if c == nil || !player.IsAlive() {
		return obj.Attack{}, false
	}
	w := player.Weapon()
	if w == nil {
		return obj.Attack{}, false
	}
	atk, ok := w.Use(player, enemyTargets(enemies), c.bossTarget(), c.clock.Now())
	if !ok {
		return obj.Attack{}, false
	}
	if atk.Projectile != nil {
		c.projectiles = append(c.projectiles, atk.Projectile)
	}
	if atk.Arc != nil {
		arc := *atk.Arc
		c.lastArc = &arc
	}
	c.hits = append(c.hits, atk.Hits...)
	for _, h := range atk.Hits {
		if h.Lethal {
			c.log.WithFields(logrus.Fields{"weapon": h.Source, "damage": h.Damage}).Debug("target killed")
		}
	}
	return atk, true
}

// Spawn adds an externally created projectile.
func (c *CombatManager) Spawn(p *obj.Projectile) {
	if c == nil || p == nil {
		return
	}
	c.projectiles = append(c.projectiles, p)
}

// Update advances every projectile, applies projectile hits and drops
// projectiles that died.
func (c *CombatManager) Update(tm *levels.TileMap, player *obj.Player, enemies []*obj.Enemy) {
	if c == nil || len(c.projectiles) == 0 {
		return
	}
	now := c.clock.Now()
	targets := enemyTargets(enemies)
	if boss := c.bossTarget(); boss != nil {
		targets = append(targets, boss)
	}
	if player != nil {
		targets = append(targets, player)
	}
	alive := c.projectiles[:0]
	for _, p := range c.projectiles {
		if p.Step(tm, now) {
			if hit, ok := p.HitFirst(targets, factionOf); ok {
				c.hits = append(c.hits, hit)
			}
		}
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	for i := len(alive); i < len(c.projectiles); i++ {
		c.projectiles[i] = nil
	}
	c.projectiles = alive
}

// Clear forgets projectiles, hits and the boss. LevelManager calls it on
// every map change.
func (c *CombatManager) Clear() {
	if c == nil {
		return
	}
	c.projectiles = nil
	c.hits = nil
	c.lastArc = nil
	c.boss = nil
}

func enemyTargets(enemies []*obj.Enemy) []component.Combatant {
	out := make([]component.Combatant, 0, len(enemies)+2)
	for _, e := range enemies {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

// bossTarget keeps a missing boss a nil interface rather than a typed nil.
func (c *CombatManager) bossTarget() component.Combatant {
	if c.boss == nil {
		return nil
	}
	return c.boss
}

func factionOf(t component.Combatant) component.Faction {
	if f, ok := t.(interface{ Faction() component.Faction }); ok {
		return f.Faction()
	}
	return component.FactionNeutral
}
