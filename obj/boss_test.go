package obj

import (
	"math"
	"testing"
	"time"

	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/component"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/levels"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBoss(x, y float64) *Boss {
	return NewBoss(prefabs.BossSpec{
		Width: 56, Height: 56, Health: 1000, BaseAttack: 100,
		AggroRadius: 400, MeleeRange: 60, MeleeCooldownMs: 1000,
		AOERadius: 90, AOEBonus: 20, AOECooldownMs: 5000, AOELockMs: 400,
		DashMinDistance: 180, DashDistance: 128, DashSteps: 8, DashCooldownMs: 3000,
	}, x, y)
}

func distance(b *Boss, p *Player) float64 {
	bx, by := b.Bounds().Center()
	px, py := p.CombatBounds().Center()
	return math.Hypot(px-bx, py-by)
}

func TestPhaseForRatio(t *testing.T) {
	cases := []struct {
		ratio float64
		want  Phase
	}{
		{1, Phase1},
		{0.67, Phase1},
		{0.66, Phase2},
		{0.34, Phase2},
		{0.33, Phase3},
		{0, Phase3},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, PhaseForRatio(c.ratio), "ratio %v", c.ratio)
	}
}

func TestBossAttackPowerByPhase(t *testing.T) {
	b := testBoss(0, 0)
	assert.Equal(t, Phase1, b.Phase())
	assert.Equal(t, 100, b.AttackPower())

	b.TakeDamage(340)
	require.Equal(t, 660, b.Life.Current())
	assert.Equal(t, Phase2, b.Phase())
	assert.Equal(t, 125, b.AttackPower())
	assert.Equal(t, 3.0, b.Phase().Speed())

	b.TakeDamage(330)
	require.Equal(t, 330, b.Life.Current())
	assert.Equal(t, Phase3, b.Phase())
	assert.Equal(t, 150, b.AttackPower())
	assert.Equal(t, 4.0, b.Phase().Speed())
}

func TestBossPhaseFrozenOnDeath(t *testing.T) {
	b := testBoss(0, 0)
	b.TakeDamage(2000)
	assert.False(t, b.IsAlive())
	assert.Equal(t, Phase1, b.Phase())

	b.TakeDamage(10)
	assert.Equal(t, 0, b.Life.Current())
	assert.Equal(t, Phase1, b.Phase())
}

func TestBossIdlesOutsideAggro(t *testing.T) {
	tm := levels.FlatMap("open", 60, 60, levels.TileFloor)
	for _, pos := range [][2]float64{{1500, 800}, {0, 800}, {800, 0}, {800, 1800}} {
		b := testBoss(800, 800)
		p := testPlayer(pos[0], pos[1])
		require.Greater(t, distance(b, p), 400.0)
		tick := b.FollowPlayer(p, tm, epoch)
		assert.Equal(t, BossIdle, tick.Action)
		assert.Equal(t, 800.0, b.X)
		assert.Equal(t, 800.0, b.Y)
	}
}

func TestBossClosesDistance(t *testing.T) {
	tm := levels.FlatMap("open", 40, 40, levels.TileFloor)
	clock := component.NewManualClock(epoch)
	b := testBoss(300, 300)
	p := testPlayer(560, 420)

	for i := 0; i < 10; i++ {
		before := distance(b, p)
		if before <= 60 {
			break
		}
		b.FollowPlayer(p, tm, clock.Now())
		assert.Less(t, distance(b, p), before, "tick %d", i)
		clock.Advance(16 * time.Millisecond)
	}
}

func TestBossDoesNotMoveOnSolidMap(t *testing.T) {
	tm := levels.FlatMap("rock", 40, 40, levels.TileWall)
	b := testBoss(300, 300)
	p := testPlayer(500, 300)
	for i := 0; i < 5; i++ {
		b.FollowPlayer(p, tm, epoch)
	}
	assert.Equal(t, 300.0, b.X)
	assert.Equal(t, 300.0, b.Y)
	assert.True(t, b.DashReady(epoch))
}

func TestBossDash(t *testing.T) {
	tm := levels.FlatMap("open", 40, 40, levels.TileFloor)
	b := testBoss(100, 300)
	p := testPlayer(400, 313)

	tick := b.FollowPlayer(p, tm, epoch)
	assert.Equal(t, BossDash, tick.Action)
	assert.Equal(t, 8, tick.DashSteps)
	assert.InDelta(t, 228.0, b.X, 1e-9)
	assert.False(t, b.DashReady(epoch))
	assert.True(t, b.DashReady(epoch.Add(3*time.Second)))
}

func TestBossPartialDash(t *testing.T) {
	// wall column 10 (x 320..351)
	ids := make([][]int, 20)
	for y := range ids {
		ids[y] = make([]int, 20)
		for x := range ids[y] {
			ids[y][x] = levels.TileFloor
		}
		ids[y][10] = levels.TileWall
	}
	tm := levels.NewTileMap("partial", ids)
	b := testBoss(200, 300)
	p := testPlayer(600, 313)

	tick := b.FollowPlayer(p, tm, epoch)
	assert.Equal(t, BossDash, tick.Action)
	assert.Equal(t, 4, tick.DashSteps)
	assert.Equal(t, 264.0, b.X)
	assert.False(t, b.DashReady(epoch))
}

func TestBossBlockedDashKeepsCooldown(t *testing.T) {
	ids := make([][]int, 20)
	for y := range ids {
		ids[y] = make([]int, 20)
		for x := range ids[y] {
			ids[y][x] = levels.TileFloor
		}
		ids[y][3] = levels.TileWall
	}
	tm := levels.NewTileMap("blocked", ids)
	cases := []struct {
		name   string
		px, py float64
	}{
		{"level", 400, 313},
		{"diagonal", 400, 500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// right edge flush with the wall at x=96
			b := testBoss(40, 300)
			p := testPlayer(tc.px, tc.py)
			require.GreaterOrEqual(t, distance(b, p), 180.0)

			tick := b.FollowPlayer(p, tm, epoch)
			assert.Equal(t, BossDash, tick.Action)
			assert.Zero(t, tick.DashSteps)
			assert.Equal(t, 40.0, b.X)
			assert.Equal(t, 300.0, b.Y)
			assert.True(t, b.DashReady(epoch))
		})
	}
}

func TestBossMeleeAndAOE(t *testing.T) {
	tm := levels.FlatMap("open", 40, 40, levels.TileFloor)
	clock := component.NewManualClock(epoch)
	b := testBoss(300, 300)
	p := NewPlayer(prefabs.PlayerSpec{Width: 24, Height: 30, HitboxWidth: 12, Health: 1000}, nil, 360, 313)
	require.LessOrEqual(t, distance(b, p), 60.0)

	tick := b.FollowPlayer(p, tm, clock.Now())
	assert.Equal(t, BossMelee, tick.Action)
	require.Len(t, tick.Hits, 2)
	assert.Equal(t, 100, tick.Hits[0].Damage)
	assert.Equal(t, 120, tick.Hits[1].Damage)
	assert.Equal(t, 780, p.Life.Current())
	assert.Equal(t, 300.0, b.X, "no movement during melee")
	assert.True(t, p.MovementLocked(clock.Now()))

	clock.Advance(time.Second)
	tick = b.FollowPlayer(p, tm, clock.Now())
	require.Len(t, tick.Hits, 1, "aoe still cooling down")
	assert.False(t, p.MovementLocked(clock.Now()))
}
