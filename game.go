package main

import (
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/logger"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/prefabs"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/system"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

const (
	baseWidth  = 960
	baseHeight = 540
	zoom       = 1.5
)

type Game struct {
	sim      *system.Simulation
	input    *Input
	camera   *Camera
	renderer *renderer
	watcher  *prefabs.Watcher
	pauseUI  *ebitenui.UI
	debug    bool
	paused   bool
	quit     bool

	mapName string
	log     *logrus.Entry
}

func NewGame(sim *system.Simulation, watcher *prefabs.Watcher, debug bool) *Game {
	camera := NewCamera(baseWidth, baseHeight, zoom)
	g := &Game{
		sim:      sim,
		input:    NewInput(),
		camera:   camera,
		renderer: &renderer{camera: camera, debug: debug},
		watcher:  watcher,
		debug:    debug,
		log:      logger.For("game"),
	}
	g.pauseUI = NewPauseUI(g)
	g.followMap()
	return g
}

func (g *Game) Update() error {
	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
		g.renderer.debug = g.debug
	}

	g.applyReloads()
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.sim.Tick(g.input.Poll())

	if g.sim.Levels.CurrentMapName() != g.mapName {
		g.followMap()
	} else {
		cx, cy := g.sim.Player.Bounds().Center()
		g.camera.Update(cx, cy)
	}
	return nil
}

// followMap snaps the camera after a map change.
func (g *Game) followMap() {
	tm := g.sim.Levels.TileMap()
	g.mapName = g.sim.Levels.CurrentMapName()
	g.camera.SetWorldBounds(tm.WidthPx(), tm.HeightPx())
	cx, cy := g.sim.Player.Bounds().Center()
	g.camera.SnapTo(cx, cy)
}

// applyReloads picks up edited map files between ticks.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for _, c := range g.watcher.Poll() {
		switch c.Kind {
		case prefabs.ChangeMap:
			if c.MapName() == g.sim.Levels.CurrentMapName() {
				g.sim.Levels.ReloadTiles()
			}
		case prefabs.ChangeSpec:
			g.log.WithField("file", c.Path).Info("spec changed, restart to apply")
		}
	}
	for {
		select {
		case err := <-g.watcher.Errors:
			g.log.WithError(err).Warn("watcher error")
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.draw(screen, g.sim)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
