package obj

import (
	"time"

	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/common"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/component"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/levels"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/prefabs"
)

// Player is the controlled hero. Its combat hitbox is narrower than the
// sprite and centered horizontally in it.
type Player struct {
	Entity

	Name           string
	HitboxWidth    float64
	BaseAttack     int
	AttackModifier float64
	Speed          float64

	weapons  []*Weapon
	current  int
	moveLock component.TimedEffect
}

func NewPlayer(spec prefabs.PlayerSpec, weapons []*Weapon, x, y float64) *Player {
	spec = spec.WithDefaults()
	return &Player{
		Entity:         newEntity(KindPlayer, x, y, spec.Width, spec.Height, spec.Health),
		Name:           spec.Name,
		HitboxWidth:    spec.HitboxWidth,
		BaseAttack:     spec.BaseAttack,
		AttackModifier: spec.AttackModifier,
		Speed:          spec.MoveSpeed,
		weapons:        weapons,
	}
}

// CombatBounds is the narrower hitbox used by attacks.
func (p *Player) CombatBounds() common.Rect {
	if p == nil {
		return common.Rect{}
	}
	return common.Rect{
		X:      p.X + (p.Width-p.HitboxWidth)/2,
		Y:      p.Y,
		Width:  p.HitboxWidth,
		Height: p.Height,
	}
}

// AttackPower is the base attack after the upgrade modifier.
func (p *Player) AttackPower() int {
	if p == nil {
		return 0
	}
	return int(float64(p.BaseAttack) * p.AttackModifier)
}

func (p *Player) TakeDamage(amount int) {
	if !p.IsAlive() {
		return
	}
	p.Life.Damage(amount)
}

func (p *Player) IsAlive() bool {
	return p != nil && !p.Life.IsDead()
}

func (p *Player) Faction() component.Faction { return component.FactionPlayer }

// Move walks the player Speed pixels along the sign of each direction
// component. Nothing happens while a movement lock is active.
func (p *Player) Move(dirX, dirY float64, tm *levels.TileMap, now time.Time) bool {
	if !p.IsAlive() || p.moveLock.Active(now) {
		return false
	}
	dirX, dirY = common.Sign(dirX), common.Sign(dirY)
	p.faceToward(dirX)
	if dirX == 0 && dirY == 0 {
		return false
	}
	return p.moveBy(dirX*p.Speed, dirY*p.Speed, tm)
}

// LockMovement blocks Move for d. A later lock overwrites the expiry.
func (p *Player) LockMovement(now time.Time, d time.Duration) {
	if p == nil {
		return
	}
	p.moveLock.Start(now, d)
}

func (p *Player) MovementLocked(now time.Time) bool {
	return p != nil && p.moveLock.Active(now)
}

// Weapon returns the equipped weapon, or nil with an empty loadout.
func (p *Player) Weapon() *Weapon {
	if p == nil || len(p.weapons) == 0 {
		return nil
	}
	return p.weapons[p.current]
}

// Weapons returns a copy of the loadout.
func (p *Player) Weapons() []*Weapon {
	if p == nil {
		return nil
	}
	return append([]*Weapon(nil), p.weapons...)
}

// CycleWeapon equips the next (step > 0) or previous (step < 0) weapon.
func (p *Player) CycleWeapon(step int) {
	if p == nil || len(p.weapons) == 0 || step == 0 {
		return
	}
	n := len(p.weapons)
	p.current = ((p.current+step)%n + n) % n
}

// Revive restores full health and clears weapon cooldowns and locks.
func (p *Player) Revive() {
	if p == nil {
		return
	}
	p.Life.Restore()
	p.moveLock.Clear()
	for _, w := range p.weapons {
		w.resetCooldown()
	}
}
