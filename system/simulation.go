package system

import (
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/component"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/levels"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/obj"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/prefabs"
)

// Intent is one tick of player input, already decoded from keys.
type Intent struct {
	MoveX, MoveY float64
	Attack       bool
	// WeaponStep cycles the loadout: +1 next, -1 previous.
	WeaponStep int
	Restart    bool
}

// Simulation runs one logic pass per Tick. Renderers read its state only
// between ticks.
type Simulation struct {
	Player *obj.Player
	Levels *LevelManager
	Combat *CombatManager

	clock component.Clock
	ticks uint64
}

// NewSimulation builds the player, combat and level managers and loads the
// first map. Nil arguments take their defaults.
func NewSimulation(catalog *prefabs.Catalog, loader *levels.Loader, world *levels.WorldConfig, clock component.Clock) *Simulation {
	if catalog == nil {
		catalog = prefabs.DefaultCatalog()
	}
	if clock == nil {
		clock = component.SystemClock{}
	}
	player := obj.NewPlayer(catalog.Player, obj.NewArmory(catalog.Armory, catalog.Player.Weapons), 0, 0)
	combat := NewCombatManager(clock)
	s := &Simulation{
		Player: player,
		Combat: combat,
		Levels: NewLevelManager(loader, world, catalog, player, combat),
		clock:  clock,
	}
	s.Levels.LoadInitialMap()
	return s
}

// Tick advances the world once: player input, enemy AI, boss AI,
// projectiles, then level bookkeeping.
func (s *Simulation) Tick(in Intent) {
	if s == nil {
		return
	}
	now := s.clock.Now()
	s.Combat.BeginTick()
	s.ticks++

	if s.GameOver() {
		if in.Restart {
			s.Levels.Reset()
		}
		return
	}

	tm := s.Levels.TileMap()
	s.Player.CycleWeapon(in.WeaponStep)
	s.Player.Move(in.MoveX, in.MoveY, tm, now)

	enemies := s.Levels.Enemies()
	if in.Attack {
		s.Combat.ApplyPlayerAttack(s.Player, enemies)
	}

	for _, e := range enemies {
		if hit, ok := e.Update(s.Player, tm, now); ok {
			s.Combat.Record(hit)
		}
	}
	if boss := s.Levels.Boss(); boss != nil {
		s.Combat.Record(boss.FollowPlayer(s.Player, tm, now).Hits...)
	}

	s.Combat.Update(tm, s.Player, enemies)
	s.Levels.Update()
}

// GameOver reports whether the player died.
func (s *Simulation) GameOver() bool {
	return s == nil || !s.Player.IsAlive()
}

// Cleared reports whether the boss on the final map has been defeated.
func (s *Simulation) Cleared() bool {
	if s == nil {
		return false
	}
	boss := s.Levels.Boss()
	if boss == nil || boss.IsAlive() {
		return false
	}
	_, hasNext := s.Levels.world.NextOf(s.Levels.CurrentMapName())
	return !hasNext
}

// Ticks counts logic passes since start.
func (s *Simulation) Ticks() uint64 {
	if s == nil {
		return 0
	}
	return s.ticks
}
