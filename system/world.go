package system

import (
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/common"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/levels"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/logger"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/obj"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/prefabs"
	"github.com/sirupsen/logrus"
)

// PendingEntry asks the next map load to place the player on the Index-th
// cell (row-major) holding TileID. It is consumed by exactly one load.
type PendingEntry struct {
	TileID int
	Index  int
	// FacingRight, when set, forces the player's facing on arrival.
	FacingRight *bool
}

// LevelManager owns map loading, the transition graph, and the enemies and
// boss spawned from tile data.
type LevelManager struct {
	loader  *levels.Loader
	world   *levels.WorldConfig
	catalog *prefabs.Catalog
	combat  *CombatManager
	player  *obj.Player

	current string
	tm      *levels.TileMap
	enemies []*obj.Enemy
	boss    *obj.Boss
	pending *PendingEntry

	// nextEnemyID is the last ID handed out; it never resets.
	nextEnemyID int
	// triggerLock suppresses transition triggers until the player has
	// stepped off every trigger tile it arrived on.
	triggerLock bool

	log *logrus.Entry
}

// NewLevelManager wires a manager. Nothing is loaded until LoadInitialMap.
func NewLevelManager(loader *levels.Loader, world *levels.WorldConfig, catalog *prefabs.Catalog, player *obj.Player, combat *CombatManager) *LevelManager {
	if loader == nil {
		loader = levels.NewLoader(nil)
	}
	if catalog == nil {
		catalog = prefabs.DefaultCatalog()
	}
	if combat == nil {
		combat = NewCombatManager(nil)
	}
	return &LevelManager{
		loader:  loader,
		world:   world,
		catalog: catalog,
		combat:  combat,
		player:  player,
		log:     logger.For("levels"),
	}
}

// LoadInitialMap loads the first map of the world.
func (lm *LevelManager) LoadInitialMap() {
	if lm == nil {
		return
	}
	lm.pending = nil
	lm.load(lm.world.First(), "")
}

// LoadMap jumps straight to name, as the -map flag does.
func (lm *LevelManager) LoadMap(name string) bool {
	if lm == nil {
		return false
	}
	if !lm.world.Has(name) {
		lm.log.WithField("map", name).Warn("unknown map")
		return false
	}
	lm.pending = nil
	lm.load(name, "")
	return true
}

// SwitchToNextMap follows the forward edge of the current map. With no edge,
// or while the arena is sealed, nothing changes.
func (lm *LevelManager) SwitchToNextMap() bool {
	if lm == nil {
		return false
	}
	next, ok := lm.world.NextOf(lm.current)
	if !ok {
		lm.log.WithField("map", lm.current).Info("no next map")
		return false
	}
	if lm.world.SealWhileBossAlive && lm.boss.IsAlive() {
		lm.log.WithField("map", lm.current).Info("arena sealed while boss is alive")
		return false
	}
	lm.load(next, lm.current)
	return true
}

// SwitchToPreviousMap follows the backward edge of the current map and
// arrives on the door the player originally left through.
func (lm *LevelManager) SwitchToPreviousMap() bool {
	if lm == nil {
		return false
	}
	prev, ok := lm.world.PreviousOf(lm.current)
	if !ok {
		lm.log.WithField("map", lm.current).Info("no previous map")
		return false
	}
	lm.SetPendingEntry(PendingEntry{TileID: levels.TileNextMap})
	lm.load(prev, lm.current)
	return true
}

// SetPendingEntry records where the player appears on the next load. A later
// call replaces an earlier one.
func (lm *LevelManager) SetPendingEntry(p PendingEntry) {
	if lm == nil {
		return
	}
	lm.pending = &p
}

// Reset returns to the first map with a revived player and fresh actors.
func (lm *LevelManager) Reset() {
	if lm == nil {
		return
	}
	if lm.player != nil {
		lm.player.Revive()
		lm.player.FacingRight = true
	}
	lm.LoadInitialMap()
}

func (lm *LevelManager) CurrentMapName() string {
	if lm == nil {
		return ""
	}
	return lm.current
}

func (lm *LevelManager) TileMap() *levels.TileMap {
	if lm == nil {
		return nil
	}
	return lm.tm
}

// Enemies returns a copy of the live enemy list.
func (lm *LevelManager) Enemies() []*obj.Enemy {
	if lm == nil {
		return nil
	}
	return append([]*obj.Enemy(nil), lm.enemies...)
}

func (lm *LevelManager) Boss() *obj.Boss {
	if lm == nil {
		return nil
	}
	return lm.boss
}

// IsEntityTouchingTile reports whether the player's box occupies or borders
// a cell holding id.
func (lm *LevelManager) IsEntityTouchingTile(id int) bool {
	if lm == nil || lm.player == nil {
		return false
	}
	return lm.tm.TouchesTile(lm.player.Bounds(), id)
}

// Update prunes dead enemies and fires transition triggers.
func (lm *LevelManager) Update() {
	if lm == nil {
		return
	}
	lm.pruneEnemies()

	onNext := lm.IsEntityTouchingTile(levels.TileNextMap)
	onBack := lm.IsEntityTouchingTile(levels.TileReturnPortal)
	if lm.triggerLock {
		if !onNext && !onBack {
			lm.triggerLock = false
		}
		return
	}
	switch {
	case onNext:
		if !lm.SwitchToNextMap() {
			// stay locked so a refused transition is not retried every tick
			lm.triggerLock = true
		}
	case onBack:
		if !lm.SwitchToPreviousMap() {
			lm.triggerLock = true
		}
	}
}

// ReloadTiles re-reads the grid of the current map, keeping actors in place.
func (lm *LevelManager) ReloadTiles() {
	if lm == nil || lm.tm == nil {
		return
	}
	fresh, err := lm.loader.Read(lm.current)
	if err != nil {
		lm.log.WithError(err).WithField("map", lm.current).Warn("reload failed")
		return
	}
	lm.tm.ReplaceCells(fresh)
	lm.log.WithField("map", lm.current).Info("map tiles reloaded")
}

func (lm *LevelManager) load(name, from string) {
	tm := lm.loader.Load(name)
	tm.Background = lm.world.Background(name)

	lm.current = name
	lm.tm = tm
	lm.enemies = lm.spawnEnemies(tm)
	lm.boss = lm.spawnBoss(tm)
	lm.combat.Clear()
	lm.combat.SetBoss(lm.boss)

	lm.placePlayer(from)
	lm.triggerLock = true

	lm.log.WithFields(logrus.Fields{
		"map":     name,
		"from":    from,
		"enemies": len(lm.enemies),
		"boss":    lm.boss != nil,
	}).Info("map loaded")
}

// placePlayer resolves the entry cell: a pending request first, then a
// return portal, then the map's spawn tile.
func (lm *LevelManager) placePlayer(from string) {
	p := lm.player
	if p == nil {
		lm.pending = nil
		return
	}
	pending := lm.pending
	lm.pending = nil

	cell, ok := levels.Cell{}, false
	if pending != nil {
		if cells := lm.tm.Find(pending.TileID); pending.Index >= 0 && pending.Index < len(cells) {
			cell, ok = cells[pending.Index], true
		}
	}
	if !ok {
		if cells := lm.tm.Find(levels.TileReturnPortal); len(cells) > 0 {
			cell, ok = cells[0], true
		}
	}
	if !ok {
		if cells := lm.tm.Find(levels.TilePlayerSpawn); len(cells) > 0 {
			cell, ok = cells[0], true
		}
	}
	if ok {
		p.SetPosition(feetOnTile(cell, p.Width, p.Height))
	} else {
		lm.log.WithField("map", lm.current).Warn("no entry tile, placing player at map center")
		p.SetPosition((lm.tm.WidthPx()-p.Width)/2, (lm.tm.HeightPx()-p.Height)/2)
	}

	switch {
	case pending != nil && pending.FacingRight != nil:
		p.FacingRight = *pending.FacingRight
	default:
		if right, ok := lm.world.FacingFor(from, lm.current); ok {
			p.FacingRight = right
		}
	}
}

// feetOnTile centers a w x h box horizontally on cell with its bottom on the
// cell's bottom edge.
func feetOnTile(c levels.Cell, w, h float64) (float64, float64) {
	r := c.Rect()
	return r.X + (common.TileSize-w)/2, r.Bottom() - h
}
