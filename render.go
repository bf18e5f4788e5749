package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/common"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/levels"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/obj"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/system"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// tileColors is the placeholder palette until tile sprites are wired in.
var tileColors = tilePalette()

// tileAccents marks ids whose role is not visible from their flags.
var tileAccents = map[int]color.Color{
	levels.TileFloorAlt:     colornames.Olivedrab,
	levels.TileShop:         colornames.Goldenrod,
	levels.TileSpecial:      colornames.Slateblue,
	levels.TileReturnPortal: colornames.Mediumpurple,
	levels.TileNextMap:      colornames.Deepskyblue,
}

func tilePalette() map[int]color.Color {
	cat := levels.Catalogue()
	out := make(map[int]color.Color, len(cat))
	for id, t := range cat {
		switch accent, ok := tileAccents[id]; {
		case ok:
			out[id] = accent
		case t.Solid:
			out[id] = colornames.Dimgray
		case t.Walkable:
			out[id] = colornames.Darkolivegreen
		default:
			out[id] = colornames.Black
		}
	}
	return out
}

// renderer draws simulation state. It only reads; it never mutates the core.
type renderer struct {
	camera *Camera
	debug  bool
}

func (r *renderer) draw(screen *ebiten.Image, sim *system.Simulation) {
	camX, camY := r.camera.ViewTopLeft()
	zoom := r.camera.Zoom()
	toScreen := func(b common.Rect) (float32, float32, float32, float32) {
		return float32((b.X - camX) * zoom), float32((b.Y - camY) * zoom),
			float32(b.Width * zoom), float32(b.Height * zoom)
	}
	fill := func(b common.Rect, c color.Color) {
		x, y, w, h := toScreen(b)
		vector.DrawFilledRect(screen, x, y, w, h, c, false)
	}
	stroke := func(b common.Rect, c color.Color) {
		x, y, w, h := toScreen(b)
		vector.StrokeRect(screen, x, y, w, h, 1, c, false)
	}

	tm := sim.Levels.TileMap()
	for row := 0; row < tm.Rows(); row++ {
		for col := 0; col < tm.Cols(); col++ {
			t := tm.At(col, row)
			if t == nil {
				continue
			}
			c, ok := tileColors[t.ID]
			if !ok {
				c = colornames.Magenta
			}
			fill(levels.Cell{Col: col, Row: row}.Rect(), c)
		}
	}

	for _, e := range sim.Levels.Enemies() {
		c := colornames.Indianred
		switch e.State() {
		case obj.EnemyHurt:
			c = colornames.White
		case obj.EnemyDying:
			c = colornames.Gray
		}
		fill(e.Bounds(), c)
		r.healthBar(screen, e.Bounds(), e.HealthRatio(), camX, camY, zoom)
	}

	if boss := sim.Levels.Boss(); boss != nil && boss.IsAlive() {
		fill(boss.Bounds(), bossColor(boss.Phase()))
		r.healthBar(screen, boss.Bounds(), boss.HealthRatio(), camX, camY, zoom)
	}

	p := sim.Player
	fill(p.Bounds(), colornames.Crimson)
	if r.debug {
		stroke(p.CombatBounds(), colornames.Yellow)
	}

	for _, pr := range sim.Combat.Projectiles() {
		fill(pr.Bounds(), colornames.Lightgoldenrodyellow)
	}

	if arc, ok := sim.Combat.LastArc(); ok {
		r.arc(screen, arc, camX, camY, zoom)
	}

	r.hud(screen, sim)
}

func (r *renderer) healthBar(screen *ebiten.Image, b common.Rect, ratio, camX, camY, zoom float64) {
	x := float32((b.X - camX) * zoom)
	y := float32((b.Y-camY)*zoom) - 6
	w := float32(b.Width * zoom)
	vector.DrawFilledRect(screen, x, y, w, 3, colornames.Darkred, false)
	vector.DrawFilledRect(screen, x, y, w*float32(ratio), 3, colornames.Lime, false)
}

// arc outlines the half-ellipse of a melee swing with line segments.
func (r *renderer) arc(screen *ebiten.Image, a obj.Arc, camX, camY, zoom float64) {
	const segments = 16
	dir := 1.0
	if !a.FacingRight {
		dir = -1
	}
	point := func(i int) (float32, float32) {
		theta := -math.Pi/2 + math.Pi*float64(i)/segments
		x := a.CX + dir*a.RX*math.Cos(theta)
		y := a.CY + a.RY*math.Sin(theta)
		return float32((x - camX) * zoom), float32((y - camY) * zoom)
	}
	px, py := point(0)
	for i := 1; i <= segments; i++ {
		x, y := point(i)
		vector.StrokeLine(screen, px, py, x, y, 2, colornames.Lightgrey, true)
		px, py = x, y
	}
}

func (r *renderer) hud(screen *ebiten.Image, sim *system.Simulation) {
	p := sim.Player
	weapon := "-"
	if w := p.Weapon(); w != nil {
		weapon = fmt.Sprintf("%s (%d/%d)", w.Name, slotOf(p.Weapons(), w)+1, len(p.Weapons()))
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  HP %d/%d  weapon %s  FPS %.1f",
		sim.Levels.CurrentMapName(), p.Life.Current(), p.Life.Max(), weapon, ebiten.ActualFPS()))

	if boss := sim.Levels.Boss(); boss != nil && boss.IsAlive() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  phase %d  HP %d", boss.Name, boss.Phase(), boss.Life.Current()), 0, 16)
	}
	switch {
	case sim.GameOver():
		ebitenutil.DebugPrintAt(screen, "YOU DIED - press R to restart", 0, 32)
	case sim.Cleared():
		ebitenutil.DebugPrintAt(screen, "The bald king has fallen", 0, 32)
	}
	if r.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tick %d  pos %.0f,%.0f  enemies %d  projectiles %d  hits %d",
			sim.Ticks(), p.X, p.Y, len(sim.Levels.Enemies()), len(sim.Combat.Projectiles()), len(sim.Combat.Hits())), 0, 48)
	}
}

func slotOf(loadout []*obj.Weapon, w *obj.Weapon) int {
	for i, lw := range loadout {
		if lw == w {
			return i
		}
	}
	return 0
}

func bossColor(p obj.Phase) color.Color {
	switch p {
	case obj.Phase2:
		return colornames.Darkorange
	case obj.Phase3:
		return colornames.Red
	}
	return colornames.Purple
}
