package prefabs

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrNoSpec = errors.New("prefabs: no such spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func ms(v int) time.Duration { return time.Duration(v) * time.Millisecond }

type PlayerSpec struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// HitboxWidth is the combat hitbox width, centered in the render box.
	HitboxWidth    float64  `yaml:"hitbox_width"`
	Health         int      `yaml:"health"`
	BaseAttack     int      `yaml:"base_attack"`
	AttackModifier float64  `yaml:"attack_modifier"`
	MoveSpeed      float64  `yaml:"move_speed"`
	Weapons        []string `yaml:"weapons"`
}

// WithDefaults fills zero fields.
func (s PlayerSpec) WithDefaults() PlayerSpec {
	if s.Name == "" {
		s.Name = "player"
	}
	if s.Width <= 0 {
		s.Width = 24
	}
	if s.Height <= 0 {
		s.Height = 30
	}
	if s.HitboxWidth <= 0 || s.HitboxWidth > s.Width {
		s.HitboxWidth = s.Width / 2
	}
	if s.Health <= 0 {
		s.Health = 100
	}
	if s.BaseAttack < 0 {
		s.BaseAttack = 0
	}
	if s.AttackModifier <= 0 {
		s.AttackModifier = 1
	}
	if s.MoveSpeed <= 0 {
		s.MoveSpeed = 3
	}
	return s
}

type EnemySpec struct {
	Name             string  `yaml:"name"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Health           int     `yaml:"health"`
	Attack           int     `yaml:"attack"`
	Speed            float64 `yaml:"speed"`
	HurtFrames       int     `yaml:"hurt_frames"`
	DyingFrames      int     `yaml:"dying_frames"`
	AttackCooldownMs int     `yaml:"attack_cooldown_ms"`
	// Script is the tengo program driving the RUNNING step.
	Script string `yaml:"script"`
}

// DefaultEnemyScript ships embedded and is used when a spec names none.
const DefaultEnemyScript = "scripts/chaser.tengo"

func (s EnemySpec) WithDefaults() EnemySpec {
	if s.Name == "" {
		s.Name = "enemy"
	}
	if s.Width <= 0 {
		s.Width = 28
	}
	if s.Height <= 0 {
		s.Height = 28
	}
	if s.Health <= 0 {
		s.Health = 30
	}
	if s.Attack <= 0 {
		s.Attack = 10
	}
	if s.Speed <= 0 {
		s.Speed = 1
	}
	if s.HurtFrames <= 0 {
		s.HurtFrames = 12
	}
	if s.DyingFrames <= 0 {
		s.DyingFrames = 30
	}
	if s.AttackCooldownMs <= 0 {
		s.AttackCooldownMs = 1000
	}
	if s.Script == "" {
		s.Script = DefaultEnemyScript
	}
	return s
}

func (s EnemySpec) AttackCooldown() time.Duration { return ms(s.AttackCooldownMs) }

type BossSpec struct {
	Name            string  `yaml:"name"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Health          int     `yaml:"health"`
	BaseAttack      int     `yaml:"base_attack"`
	AggroRadius     float64 `yaml:"aggro_radius"`
	MeleeRange      float64 `yaml:"melee_range"`
	MeleeCooldownMs int     `yaml:"melee_cooldown_ms"`
	AOERadius       float64 `yaml:"aoe_radius"`
	AOEBonus        int     `yaml:"aoe_bonus"`
	AOECooldownMs   int     `yaml:"aoe_cooldown_ms"`
	AOELockMs       int     `yaml:"aoe_lock_ms"`
	DashMinDistance float64 `yaml:"dash_min_distance"`
	DashDistance    float64 `yaml:"dash_distance"`
	DashSteps       int     `yaml:"dash_steps"`
	DashCooldownMs  int     `yaml:"dash_cooldown_ms"`
}

func (s BossSpec) WithDefaults() BossSpec {
	if s.Name == "" {
		s.Name = "boss"
	}
	if s.Width <= 0 {
		s.Width = 56
	}
	if s.Height <= 0 {
		s.Height = 56
	}
	if s.Health <= 0 {
		s.Health = 1000
	}
	if s.BaseAttack <= 0 {
		s.BaseAttack = 100
	}
	if s.AggroRadius <= 0 {
		s.AggroRadius = 400
	}
	if s.MeleeRange <= 0 {
		s.MeleeRange = 60
	}
	if s.MeleeCooldownMs <= 0 {
		s.MeleeCooldownMs = 1000
	}
	if s.AOERadius <= 0 {
		s.AOERadius = 90
	}
	if s.AOEBonus <= 0 {
		s.AOEBonus = 20
	}
	if s.AOECooldownMs <= 0 {
		s.AOECooldownMs = 5000
	}
	if s.AOELockMs <= 0 {
		s.AOELockMs = 400
	}
	if s.DashMinDistance <= 0 {
		s.DashMinDistance = 180
	}
	if s.DashDistance <= 0 {
		s.DashDistance = 128
	}
	if s.DashSteps <= 0 {
		s.DashSteps = 8
	}
	if s.DashCooldownMs <= 0 {
		s.DashCooldownMs = 3000
	}
	return s
}

func (s BossSpec) MeleeCooldown() time.Duration { return ms(s.MeleeCooldownMs) }
func (s BossSpec) AOECooldown() time.Duration   { return ms(s.AOECooldownMs) }
func (s BossSpec) AOELock() time.Duration       { return ms(s.AOELockMs) }
func (s BossSpec) DashCooldown() time.Duration  { return ms(s.DashCooldownMs) }

// WeaponKind selects the attack strategy of a weapon.
type WeaponKind string

const (
	WeaponMelee  WeaponKind = "melee"
	WeaponRanged WeaponKind = "ranged"
)

type WeaponSpec struct {
	Name                 string     `yaml:"name"`
	Kind                 WeaponKind `yaml:"kind"`
	Damage               int        `yaml:"damage"`
	CooldownMs           int        `yaml:"cooldown_ms"`
	Range                float64    `yaml:"range"`
	ProjectileSpeed      float64    `yaml:"projectile_speed"`
	ProjectileLifetimeMs int        `yaml:"projectile_lifetime_ms"`
	ProjectileSize       float64    `yaml:"projectile_size"`
}

func (s WeaponSpec) WithDefaults() WeaponSpec {
	s.Kind = WeaponKind(strings.ToLower(string(s.Kind)))
	if s.Kind != WeaponRanged {
		s.Kind = WeaponMelee
	}
	if s.Damage < 0 {
		s.Damage = 0
	}
	if s.Range <= 0 {
		s.Range = 40
	}
	if s.Kind == WeaponRanged {
		if s.ProjectileSpeed <= 0 {
			s.ProjectileSpeed = 6
		}
		if s.ProjectileLifetimeMs <= 0 {
			s.ProjectileLifetimeMs = 1500
		}
		if s.ProjectileSize <= 0 {
			s.ProjectileSize = 8
		}
	}
	return s
}

func (s WeaponSpec) Cooldown() time.Duration           { return ms(s.CooldownMs) }
func (s WeaponSpec) ProjectileLifetime() time.Duration { return ms(s.ProjectileLifetimeMs) }

// Armory is the weapons.yaml catalogue.
type Armory struct {
	Weapons []WeaponSpec `yaml:"weapons"`
}

// Weapon returns the named weapon spec with defaults applied.
func (a Armory) Weapon(name string) (WeaponSpec, error) {
	for _, w := range a.Weapons {
		if strings.EqualFold(w.Name, name) {
			return w.WithDefaults(), nil
		}
	}
	return WeaponSpec{}, fmt.Errorf("prefabs: weapon %q: %w", name, ErrNoSpec)
}

// Catalog is the full set of actor and weapon specs.
type Catalog struct {
	Player PlayerSpec
	Enemy  EnemySpec
	Boss   BossSpec
	Armory Armory
}

// LoadCatalog reads player, enemy, boss and weapon specs.
func LoadCatalog() (*Catalog, error) {
	player, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	enemy, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	boss, err := LoadSpec[BossSpec]("boss.yaml")
	if err != nil {
		return nil, err
	}
	armory, err := LoadSpec[Armory]("weapons.yaml")
	if err != nil {
		return nil, err
	}
	return &Catalog{
		Player: player.WithDefaults(),
		Enemy:  enemy.WithDefaults(),
		Boss:   boss.WithDefaults(),
		Armory: armory,
	}, nil
}

// DefaultCatalog returns built-in specs without reading any file.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Player: PlayerSpec{Weapons: []string{"sword"}}.WithDefaults(),
		Enemy:  EnemySpec{}.WithDefaults(),
		Boss:   BossSpec{}.WithDefaults(),
		Armory: Armory{Weapons: []WeaponSpec{
			{Name: "sword", Kind: WeaponMelee, Damage: 10, CooldownMs: 300, Range: 40},
		}},
	}
}
