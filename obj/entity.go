package obj

import (
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/common"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/component"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/levels"
	"github.com/jakecoffman/cp"
)

// Kind tags the concrete actor behind an Entity.
type Kind int

const (
	KindPlayer Kind = iota + 1
	KindEnemy
	KindBoss
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBoss:
		return "boss"
	}
	return "unknown"
}

// Entity is the positional record shared by every animate actor.
type Entity struct {
	Kind        Kind
	X, Y        float64
	Width       float64
	Height      float64
	FacingRight bool
	Life        *component.LifeComponent
}

func newEntity(kind Kind, x, y, w, h float64, health int) Entity {
	return Entity{
		Kind:        kind,
		X:           x,
		Y:           y,
		Width:       w,
		Height:      h,
		FacingRight: true,
		Life:        component.NewLife(health),
	}
}

// Bounds is the render rectangle.
func (e *Entity) Bounds() common.Rect {
	if e == nil {
		return common.Rect{}
	}
	return common.Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

func (e *Entity) SetPosition(x, y float64) {
	if e == nil {
		return
	}
	e.X = x
	e.Y = y
}

// Facing reports whether the entity looks right.
func (e *Entity) Facing() bool {
	return e != nil && e.FacingRight
}

// HealthRatio is current/max health, for health bars.
func (e *Entity) HealthRatio() float64 {
	if e == nil {
		return 0
	}
	return e.Life.Percentage()
}

// center returns the midpoint of the render box as a vector.
func (e *Entity) center() cp.Vector {
	cx, cy := e.Bounds().Center()
	return cp.Vector{X: cx, Y: cy}
}

// faceToward turns the entity toward a horizontal offset. Zero keeps facing.
func (e *Entity) faceToward(dx float64) {
	if dx > 0 {
		e.FacingRight = true
	} else if dx < 0 {
		e.FacingRight = false
	}
}

// moveBy runs the collision resolver and reports whether the entity moved.
func (e *Entity) moveBy(dx, dy float64, tm *levels.TileMap) bool {
	nx, ny := MoveWithCollision(e.X, e.Y, dx, dy, e.Width, e.Height, tm)
	moved := nx != e.X || ny != e.Y
	e.X, e.Y = nx, ny
	return moved
}

// stepToward returns a step of at most speed along d.
func stepToward(d, speed float64) float64 {
	if d > speed {
		return speed
	}
	if d < -speed {
		return -speed
	}
	return d
}
