package obj

import (
	"fmt"

	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/prefabs"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ChaseScript is a compiled tengo program that decides a RUNNING enemy's
// step and whether it strikes on contact. The lifecycle around it stays in
// Go; the script only sees these globals:
//
//	in:  dx, dy, speed (float), attack_ready (bool)
//	out: move_x, move_y (float), attack (bool)
type ChaseScript struct {
	name     string
	compiled *tengo.Compiled
}

type chaseInput struct {
	DX, DY, Speed float64
	AttackReady   bool
}

type chaseDecision struct {
	MoveX, MoveY float64
	Attack       bool
}

// CompileChaseScript compiles src. Only the math module may be imported.
func CompileChaseScript(name string, src []byte) (*ChaseScript, error) {
	script := tengo.NewScript(src)
	for _, g := range []string{"dx", "dy", "speed", "move_x", "move_y"} {
		_ = script.Add(g, 0.0)
	}
	_ = script.Add("attack_ready", false)
	_ = script.Add("attack", false)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("obj: compile script %s: %w", name, err)
	}
	return &ChaseScript{name: name, compiled: compiled}, nil
}

// LoadChaseScript reads a script through prefabs.Load and compiles it.
func LoadChaseScript(name string) (*ChaseScript, error) {
	src, err := prefabs.Load(name)
	if err != nil {
		return nil, fmt.Errorf("obj: load script %s: %w", name, err)
	}
	return CompileChaseScript(name, src)
}

// Clone gives an enemy its own copy of the compiled globals.
func (s *ChaseScript) Clone() *ChaseScript {
	if s == nil {
		return nil
	}
	return &ChaseScript{name: s.name, compiled: s.compiled.Clone()}
}

func (s *ChaseScript) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

func (s *ChaseScript) decide(in chaseInput) (chaseDecision, error) {
	if s == nil || s.compiled == nil {
		return chaseDecision{}, fmt.Errorf("obj: no chase script")
	}
	c := s.compiled
	vars := []struct {
		name  string
		value any
	}{
		{"dx", in.DX}, {"dy", in.DY}, {"speed", in.Speed}, {"attack_ready", in.AttackReady},
		{"move_x", 0.0}, {"move_y", 0.0}, {"attack", false},
	}
	for _, v := range vars {
		if err := c.Set(v.name, v.value); err != nil {
			return chaseDecision{}, fmt.Errorf("obj: script %s: set %s: %w", s.name, v.name, err)
		}
	}
	if err := c.Run(); err != nil {
		return chaseDecision{}, fmt.Errorf("obj: script %s: %w", s.name, err)
	}
	return chaseDecision{
		MoveX:  c.Get("move_x").Float(),
		MoveY:  c.Get("move_y").Float(),
		Attack: c.Get("attack").Bool(),
	}, nil
}
