package main

import (
	"flag"
	"path/filepath"

	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/component"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/levels"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/logger"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/prefabs"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/system"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay")
	mapName := flag.String("map", "", "start on this map instead of the first one in world.yaml")
	watch := flag.Bool("watch", false, "reload edited maps from disk while running")
	flag.Parse()

	logger.Init()
	log := logger.For("main")

	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		log.WithError(err).Warn("using built-in specs")
		catalog = prefabs.DefaultCatalog()
	}

	loader := levels.NewLoader(nil)
	world, err := levels.LoadWorldConfig(loader.FS())
	if err != nil {
		log.WithError(err).Fatal("load world")
	}

	sim := system.NewSimulation(catalog, loader, world, component.SystemClock{})
	if *mapName != "" && !sim.Levels.LoadMap(*mapName) {
		log.WithField("map", *mapName).Warn("unknown map, staying on the first one")
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(prefabs.DiskDir, filepath.Join(levels.DiskDir, "maps"))
		if err != nil {
			log.WithError(err).Warn("file watching disabled")
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("The Legend of Bald")

	if err := ebiten.RunGame(NewGame(sim, watcher, *debug)); err != nil {
		log.WithError(err).Fatal("game exited")
	}
}
