package system

import (
	"testing"
	"time"

	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/component"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/levels"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/obj"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulation(t *testing.T) (*Simulation, *component.ManualClock) {
	t.Helper()
	clock := component.NewManualClock(epoch)
	cat := prefabs.DefaultCatalog()
	sim := NewSimulation(cat, levels.NewLoader(testFS()), testWorld(), clock)
	require.Equal(t, "a", sim.Levels.CurrentMapName())
	return sim, clock
}

func TestSimulationMovesPlayer(t *testing.T) {
	sim, clock := newTestSimulation(t)
	x := sim.Player.X
	sim.Tick(Intent{MoveX: 1})
	clock.Advance(16 * time.Millisecond)
	assert.Equal(t, x+sim.Player.Speed, sim.Player.X)
	assert.Equal(t, uint64(1), sim.Ticks())
}

func TestSimulationWalksThroughTrigger(t *testing.T) {
	sim, clock := newTestSimulation(t)
	for i := 0; i < 200 && sim.Levels.CurrentMapName() == "a"; i++ {
		sim.Tick(Intent{MoveX: 1})
		clock.Advance(16 * time.Millisecond)
	}
	assert.Equal(t, "b", sim.Levels.CurrentMapName())
	assert.Len(t, sim.Levels.Enemies(), 2)
}

func TestSimulationAttackKillsEnemy(t *testing.T) {
	sim, clock := newTestSimulation(t)
	require.True(t, sim.Levels.SwitchToNextMap())
	enemies := sim.Levels.Enemies()
	require.NotEmpty(t, enemies)
	e := enemies[0]

	// stand just left of the first enemy, facing it
	sim.Player.SetPosition(e.X-sim.Player.Width-2, e.Y)
	sim.Player.FacingRight = true
	for i := 0; i < 400 && e.IsAlive(); i++ {
		sim.Tick(Intent{Attack: true})
		clock.Advance(50 * time.Millisecond)
	}
	require.False(t, e.IsAlive())
	for i := 0; i < 100 && len(sim.Levels.Enemies()) == 2; i++ {
		sim.Tick(Intent{})
	}
	assert.Len(t, sim.Levels.Enemies(), 1, "dead enemy pruned")
}

func TestSimulationGameOverAndRestart(t *testing.T) {
	sim, _ := newTestSimulation(t)
	require.True(t, sim.Levels.SwitchToNextMap())
	sim.Player.TakeDamage(10_000)
	assert.True(t, sim.GameOver())

	x := sim.Player.X
	sim.Tick(Intent{MoveX: 1})
	assert.Equal(t, x, sim.Player.X, "no input while dead")

	sim.Tick(Intent{Restart: true})
	assert.False(t, sim.GameOver())
	assert.Equal(t, "a", sim.Levels.CurrentMapName())
}

func TestSimulationCleared(t *testing.T) {
	sim, _ := newTestSimulation(t)
	assert.False(t, sim.Cleared())
	require.True(t, sim.Levels.SwitchToNextMap())
	require.True(t, sim.Levels.SwitchToNextMap())
	require.NotNil(t, sim.Levels.Boss())
	assert.False(t, sim.Cleared())

	sim.Levels.Boss().TakeDamage(1 << 20)
	assert.True(t, sim.Cleared())
}

func TestSimulationWeaponCycle(t *testing.T) {
	clock := component.NewManualClock(epoch)
	cat := prefabs.DefaultCatalog()
	cat.Player.Weapons = []string{"sword", "bow"}
	cat.Armory.Weapons = append(cat.Armory.Weapons, prefabs.WeaponSpec{Name: "bow", Kind: prefabs.WeaponRanged, Damage: 4})
	sim := NewSimulation(cat, levels.NewLoader(testFS()), testWorld(), clock)

	assert.Equal(t, "sword", sim.Player.Weapon().Name)
	sim.Tick(Intent{WeaponStep: 1, Attack: true})
	assert.Equal(t, "bow", sim.Player.Weapon().Name)
	assert.Len(t, sim.Combat.Projectiles(), 1)
	assert.Equal(t, obj.KindPlayer, sim.Player.Kind)
}
