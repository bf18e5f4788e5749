package obj

import (
	"testing"
	"time"

	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/component"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/levels"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func testEnemy(x, y float64) *Enemy {
	return NewEnemy(prefabs.EnemySpec{
		Width: 20, Height: 20, Health: 30, Attack: 7, Speed: 1,
		HurtFrames: 2, DyingFrames: 3, AttackCooldownMs: 500,
	}, x, y)
}

func testPlayer(x, y float64) *Player {
	return NewPlayer(prefabs.PlayerSpec{
		Width: 24, Height: 30, HitboxWidth: 12, Health: 100, BaseAttack: 5, MoveSpeed: 3,
	}, nil, x, y)
}

func TestEnemyLethalDamage(t *testing.T) {
	for _, dmg := range []int{30, 31, 1000} {
		e := testEnemy(0, 0)
		e.TakeDamage(dmg)
		assert.False(t, e.IsAlive(), "damage %d", dmg)
		assert.Equal(t, EnemyDying, e.State())
		assert.Equal(t, 0, e.Life.Current())

		e.TakeDamage(5)
		assert.Equal(t, EnemyDying, e.State(), "damage while dying is ignored")
	}
}

func TestEnemyLifecycle(t *testing.T) {
	tm := levels.FlatMap("open", 10, 10, levels.TileFloor)
	e := testEnemy(100, 100)

	e.TakeDamage(10)
	require.Equal(t, EnemyHurt, e.State())
	assert.True(t, e.IsAlive())

	x, y := e.X, e.Y
	e.Update(testPlayer(0, 0), tm, epoch)
	assert.Equal(t, EnemyHurt, e.State())
	assert.Equal(t, x, e.X, "hurt enemies do not chase")
	assert.Equal(t, y, e.Y)
	e.Update(testPlayer(0, 0), tm, epoch)
	assert.Equal(t, EnemyRunning, e.State())

	e.TakeDamage(25)
	require.Equal(t, EnemyDying, e.State())
	assert.False(t, e.Removable())
	for i := 0; i < 3; i++ {
		e.Update(nil, tm, epoch)
	}
	assert.Equal(t, EnemyDead, e.State())
	assert.True(t, e.Removable())
	assert.False(t, e.IsAlive())

	e.TakeDamage(10)
	assert.Equal(t, EnemyDead, e.State())
}

func TestEnemyChasesAndFaces(t *testing.T) {
	tm := levels.FlatMap("open", 20, 20, levels.TileFloor)
	e := testEnemy(200, 200)
	p := testPlayer(40, 300)

	e.Update(p, tm, epoch)
	assert.Equal(t, 199.0, e.X)
	assert.Equal(t, 201.0, e.Y)
	assert.False(t, e.FacingRight)

	p.SetPosition(400, 300)
	e.Update(p, tm, epoch)
	assert.True(t, e.FacingRight)
}

func TestEnemyContactAttackCooldown(t *testing.T) {
	tm := levels.FlatMap("open", 20, 20, levels.TileFloor)
	clock := component.NewManualClock(epoch)
	p := testPlayer(100, 100)
	e := testEnemy(100, 104)

	hit, ok := e.Update(p, tm, clock.Now())
	require.True(t, ok)
	assert.Equal(t, 7, hit.Damage)
	assert.Equal(t, 93, p.Life.Current())

	_, ok = e.Update(p, tm, clock.Now())
	assert.False(t, ok, "attack is on cooldown")

	clock.Advance(500 * time.Millisecond)
	_, ok = e.Update(p, tm, clock.Now())
	assert.True(t, ok)
	assert.Equal(t, 86, p.Life.Current())
}

func TestEnemyScriptDrivesRunningStep(t *testing.T) {
	tm := levels.FlatMap("open", 20, 20, levels.TileFloor)
	// flee far and never strike; the step is still capped at Speed
	script, err := CompileChaseScript("coward", []byte(`
move_x = -dx * 10
move_y = -dy * 10
attack = false
`))
	require.NoError(t, err)
	spec := prefabs.EnemySpec{Width: 20, Height: 20, Health: 30, Attack: 7, Speed: 2, AttackCooldownMs: 500}
	e := NewEnemyWithScript(spec, script, 100, 104)
	p := testPlayer(100, 100)

	_, ok := e.Update(p, tm, epoch)
	assert.False(t, ok, "script declined to attack while touching")
	assert.Equal(t, 100, p.Life.Current())
	assert.Equal(t, 98.0, e.X)
	assert.Equal(t, 102.0, e.Y)

	p.SetPosition(300, 106)
	e.Update(p, tm, epoch)
	assert.Equal(t, 96.0, e.X)
	assert.Equal(t, 100.0, e.Y)
	assert.True(t, e.FacingRight, "facing still tracks the target")
}

func TestEnemyWithoutScriptHoldsStill(t *testing.T) {
	tm := levels.FlatMap("open", 20, 20, levels.TileFloor)
	_, err := CompileChaseScript("broken", []byte("move_x = nope"))
	require.Error(t, err)

	e := NewEnemyWithScript(prefabs.EnemySpec{}, nil, 200, 200)
	p := testPlayer(40, 300)
	_, ok := e.Update(p, tm, epoch)
	assert.False(t, ok)
	assert.Equal(t, 200.0, e.X)
	assert.Equal(t, 200.0, e.Y)
	assert.Equal(t, EnemyRunning, e.State())

	e.TakeDamage(1)
	assert.Equal(t, EnemyHurt, e.State(), "lifecycle runs without a script")
}

func TestChaseScriptClonesAreIndependent(t *testing.T) {
	base, err := LoadChaseScript(prefabs.DefaultEnemyScript)
	require.NoError(t, err)
	a, b := base.Clone(), base.Clone()

	da, err := a.decide(chaseInput{DX: 5, DY: -0.5, Speed: 1, AttackReady: true})
	require.NoError(t, err)
	db, err := b.decide(chaseInput{DX: -5, DY: 0, Speed: 1})
	require.NoError(t, err)

	assert.Equal(t, chaseDecision{MoveX: 1, MoveY: -0.5, Attack: true}, da)
	assert.Equal(t, chaseDecision{MoveX: -1, MoveY: 0, Attack: false}, db)
}
