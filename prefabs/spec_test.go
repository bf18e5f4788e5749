package prefabs

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalogFromEmbedded(t *testing.T) {
	cat, err := LoadCatalog()
	require.NoError(t, err)

	assert.Equal(t, 14.0, cat.Player.HitboxWidth)
	assert.Less(t, cat.Player.HitboxWidth, cat.Player.Width)
	assert.Equal(t, 1000, cat.Boss.Health)
	assert.Equal(t, 100, cat.Boss.BaseAttack)
	assert.Equal(t, 3*time.Second, cat.Boss.DashCooldown())

	for _, name := range cat.Player.Weapons {
		w, err := cat.Armory.Weapon(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, w.Kind)
	}
}

func TestArmoryUnknownWeapon(t *testing.T) {
	_, err := DefaultCatalog().Armory.Weapon("trebuchet")
	assert.True(t, errors.Is(err, ErrNoSpec))
}

func TestWithDefaults(t *testing.T) {
	p := PlayerSpec{Width: 20, HitboxWidth: 40}.WithDefaults()
	assert.Equal(t, 10.0, p.HitboxWidth, "hitbox wider than body falls back to half width")
	assert.Equal(t, 1.0, p.AttackModifier)

	w := WeaponSpec{Kind: "RANGED"}.WithDefaults()
	assert.Equal(t, WeaponRanged, w.Kind)
	assert.Positive(t, w.ProjectileSpeed)
	assert.Equal(t, 1500*time.Millisecond, w.ProjectileLifetime())

	m := WeaponSpec{Kind: "spear"}.WithDefaults()
	assert.Equal(t, WeaponMelee, m.Kind)
	assert.Zero(t, m.ProjectileSpeed)
}

func TestClassifyChanges(t *testing.T) {
	kind, ok := classify("levels/maps/forest.txt")
	require.True(t, ok)
	assert.Equal(t, ChangeMap, kind)
	assert.Equal(t, "forest", Change{Path: "levels/maps/forest.txt", Kind: kind}.MapName())

	kind, ok = classify("prefabs/boss.YAML")
	require.True(t, ok)
	assert.Equal(t, ChangeSpec, kind)
	assert.Empty(t, Change{Path: "prefabs/boss.yaml", Kind: kind}.MapName())

	kind, ok = classify("prefabs/scripts/chaser.tengo")
	require.True(t, ok)
	assert.Equal(t, ChangeSpec, kind)

	_, ok = classify("assets/boss.png")
	assert.False(t, ok)
}

func TestEnemyScriptEmbedded(t *testing.T) {
	spec := EnemySpec{}.WithDefaults()
	assert.Equal(t, DefaultEnemyScript, spec.Script)

	src, err := Load(spec.Script)
	require.NoError(t, err)
	assert.Contains(t, string(src), "move_x")

	cat, err := LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, DefaultEnemyScript, cat.Enemy.Script)
}
