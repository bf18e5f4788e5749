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

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func loadout(names ...string) []*obj.Weapon {
	armory := prefabs.Armory{Weapons: []prefabs.WeaponSpec{
		{Name: "sword", Kind: prefabs.WeaponMelee, Damage: 10, CooldownMs: 300, Range: 40},
		{Name: "bow", Kind: prefabs.WeaponRanged, Damage: 8, CooldownMs: 500, Range: 300,
			ProjectileSpeed: 10, ProjectileLifetimeMs: 2000, ProjectileSize: 8},
	}}
	return obj.NewArmory(armory, names)
}

func TestApplyPlayerAttackMelee(t *testing.T) {
	clock := component.NewManualClock(epoch)
	cm := NewCombatManager(clock)
	player := obj.NewPlayer(prefabs.PlayerSpec{BaseAttack: 5}, loadout("sword"), 100, 100)
	near := obj.NewEnemy(prefabs.EnemySpec{}, 126, 100)
	far := obj.NewEnemy(prefabs.EnemySpec{}, 400, 100)
	boss := obj.NewBoss(prefabs.BossSpec{}, 124, 90)
	cm.SetBoss(boss)

	atk, ok := cm.ApplyPlayerAttack(player, []*obj.Enemy{near, far})
	require.True(t, ok)
	assert.Len(t, atk.Hits, 2)
	assert.Equal(t, 15, near.Life.Max()-near.Life.Current())
	assert.Equal(t, far.Life.Max(), far.Life.Current())
	assert.Equal(t, 985, boss.Life.Current())
	assert.Len(t, cm.Hits(), 2)
	_, ok = cm.LastArc()
	assert.True(t, ok)

	_, ok = cm.ApplyPlayerAttack(player, []*obj.Enemy{near})
	assert.False(t, ok, "weapon cooling down")

	cm.BeginTick()
	assert.Empty(t, cm.Hits())
	_, ok = cm.LastArc()
	assert.False(t, ok)
}

func TestApplyPlayerAttackWithoutWeapon(t *testing.T) {
	cm := NewCombatManager(component.NewManualClock(epoch))
	player := obj.NewPlayer(prefabs.PlayerSpec{}, nil, 0, 0)
	_, ok := cm.ApplyPlayerAttack(player, nil)
	assert.False(t, ok)
}

func TestProjectilesFlyAndHit(t *testing.T) {
	clock := component.NewManualClock(epoch)
	cm := NewCombatManager(clock)
	tm := levels.FlatMap("open", 20, 10, levels.TileFloor)
	player := obj.NewPlayer(prefabs.PlayerSpec{BaseAttack: 2}, loadout("bow"), 32, 100)
	target := obj.NewEnemy(prefabs.EnemySpec{Health: 30}, 200, 100)

	_, ok := cm.ApplyPlayerAttack(player, nil)
	require.True(t, ok)
	require.Len(t, cm.Projectiles(), 1)

	snapshot := cm.Projectiles()
	snapshot[0].X = -1000
	assert.NotEqual(t, -1000.0, cm.Projectiles()[0].X, "snapshot is a copy")

	for i := 0; i < 30 && len(cm.Projectiles()) > 0; i++ {
		cm.Update(tm, player, []*obj.Enemy{target})
	}
	assert.Empty(t, cm.Projectiles())
	assert.Equal(t, 20, target.Life.Current())
	assert.Equal(t, player.Life.Max(), player.Life.Current(), "own projectile never hits the shooter")
}

func TestProjectileStopsOnWall(t *testing.T) {
	cm := NewCombatManager(component.NewManualClock(epoch))
	tm := levels.NewTileMap("wall", [][]int{
		{1, 1, 1, 2},
		{1, 1, 1, 2},
	})
	cm.Spawn(obj.NewProjectile(obj.ProjectileConfig{X: 4, Y: 4, Size: 8, VX: 10}, epoch))
	for i := 0; i < 20; i++ {
		cm.Update(tm, nil, nil)
	}
	assert.Empty(t, cm.Projectiles())
}

func TestCombatClear(t *testing.T) {
	cm := NewCombatManager(nil)
	cm.SetBoss(obj.NewBoss(prefabs.BossSpec{}, 0, 0))
	cm.Spawn(obj.NewProjectile(obj.ProjectileConfig{X: 4, Y: 4}, time.Now()))
	cm.Record(component.HitEvent{Damage: 1})

	cm.Clear()
	assert.Nil(t, cm.Boss())
	assert.Empty(t, cm.Projectiles())
	assert.Empty(t, cm.Hits())
}
