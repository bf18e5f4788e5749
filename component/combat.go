package component

// Faction identifies teams for friendly-fire checks.
type Faction int

const (
	FactionNeutral Faction = iota
	FactionPlayer
	FactionEnemy
)

// CanHit reports whether an attack from attacker may damage target.
func CanHit(attacker, target Faction) bool {
	if attacker == FactionNeutral || target == FactionNeutral {
		return true
	}
	return attacker != target
}

// HitEvent records one applied hit. CombatManager keeps the last tick's hits
// so UI collaborators can flash or shake without touching combat state.
type HitEvent struct {
	Source  string
	Target  Combatant
	Damage  int
	Lethal  bool
	PosX    float64
	PosY    float64
	Faction Faction
}
