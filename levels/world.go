package levels

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoMaps     = errors.New("levels: world has no maps")
	ErrUnknownMap = errors.New("levels: unknown map")
)

const worldFile = "world.yaml"

// MapEntry describes one map in the world.
type MapEntry struct {
	Name       string `yaml:"name"`
	Background string `yaml:"background"`
}

// FacingOverride forces the player's facing on arrival for one from->to pair.
type FacingOverride struct {
	From        string `yaml:"from"`
	To          string `yaml:"to"`
	FacingRight bool   `yaml:"facing_right"`
}

// WorldConfig is the directed transition graph between maps. Forward and
// backward edges are independent; a missing edge means there is no map in
// that direction.
type WorldConfig struct {
	Maps     []MapEntry        `yaml:"maps"`
	Next     map[string]string `yaml:"next"`
	Previous map[string]string `yaml:"previous"`
	Facing   []FacingOverride  `yaml:"facing"`
	// SealWhileBossAlive refuses forward transitions while a map's boss lives.
	SealWhileBossAlive bool `yaml:"seal_while_boss_alive"`
}

// LoadWorldConfig reads world.yaml from fsys.
func LoadWorldConfig(fsys fs.FS) (*WorldConfig, error) {
	data, err := fs.ReadFile(fsys, worldFile)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", worldFile, err)
	}
	var cfg WorldConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", worldFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the graph only references declared maps.
func (c *WorldConfig) Validate() error {
	if c == nil || len(c.Maps) == 0 {
		return ErrNoMaps
	}
	check := func(kind string, edges map[string]string) error {
		for from, to := range edges {
			if !c.Has(from) {
				return fmt.Errorf("levels: %s edge from %q: %w", kind, from, ErrUnknownMap)
			}
			if !c.Has(to) {
				return fmt.Errorf("levels: %s edge to %q: %w", kind, to, ErrUnknownMap)
			}
		}
		return nil
	}
	if err := check("next", c.Next); err != nil {
		return err
	}
	return check("previous", c.Previous)
}

// Has reports whether name is a declared map.
func (c *WorldConfig) Has(name string) bool {
	if c == nil {
		return false
	}
	for _, m := range c.Maps {
		if m.Name == name {
			return true
		}
	}
	return false
}

// First returns the starting map.
func (c *WorldConfig) First() string {
	if c == nil || len(c.Maps) == 0 {
		return ""
	}
	return c.Maps[0].Name
}

func (c *WorldConfig) NextOf(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	to, ok := c.Next[name]
	return to, ok && to != ""
}

func (c *WorldConfig) PreviousOf(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	to, ok := c.Previous[name]
	return to, ok && to != ""
}

// FacingFor returns the forced facing for a from->to transition, if any.
func (c *WorldConfig) FacingFor(from, to string) (facingRight bool, ok bool) {
	if c == nil {
		return false, false
	}
	for _, f := range c.Facing {
		if f.From == from && f.To == to {
			return f.FacingRight, true
		}
	}
	return false, false
}

// Background returns the background reference of a map.
func (c *WorldConfig) Background(name string) string {
	if c == nil {
		return ""
	}
	for _, m := range c.Maps {
		if m.Name == name {
			return m.Background
		}
	}
	return ""
}
