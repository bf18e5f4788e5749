package component

import "github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/common"

// Combatant is the capability set shared by the player, regular enemies and
// the boss. Each variant owns its own hitbox and attack semantics.
type Combatant interface {
	// AttackPower is the damage dealt after phase or upgrade modifiers.
	AttackPower() int
	TakeDamage(amount int)
	IsAlive() bool
	// CombatBounds is the rectangle used for hit tests. It may be narrower
	// than the render box.
	CombatBounds() common.Rect
}
