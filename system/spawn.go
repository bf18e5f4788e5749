package system

import (
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/levels"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/obj"
)

// spawnEnemies creates one enemy per enemy tile. The chase script is compiled
// once per pass and cloned for each enemy; IDs keep counting across maps.
func (lm *LevelManager) spawnEnemies(tm *levels.TileMap) []*obj.Enemy {
	cells := tm.Find(levels.TileEnemySpawn)
	if len(cells) == 0 {
		return nil
	}
	spec := lm.catalog.Enemy.WithDefaults()
	script, err := obj.LoadChaseScript(spec.Script)
	if err != nil {
		lm.log.WithError(err).Error("enemies spawned without a chase script")
	}
	enemies := make([]*obj.Enemy, 0, len(cells))
	for _, c := range cells {
		x, y := centerOnTile(c, spec.Width, spec.Height)
		e := obj.NewEnemyWithScript(spec, script.Clone(), x, y)
		lm.nextEnemyID++
		e.ID = lm.nextEnemyID
		enemies = append(enemies, e)
	}
	return enemies
}

// spawnBoss creates the map's boss from its first boss tile. A map has at
// most one boss; further boss tiles are ignored.
func (lm *LevelManager) spawnBoss(tm *levels.TileMap) *obj.Boss {
	cells := tm.Find(levels.TileBossSpawn)
	if len(cells) == 0 {
		return nil
	}
	if len(cells) > 1 {
		lm.log.WithField("tiles", len(cells)).Debug("extra boss tiles ignored")
	}
	spec := lm.catalog.Boss.WithDefaults()
	x, y := centerOnTile(cells[0], spec.Width, spec.Height)
	return obj.NewBoss(spec, x, y)
}

func (lm *LevelManager) pruneEnemies() {
	alive := lm.enemies[:0]
	for _, e := range lm.enemies {
		if !e.Removable() {
			alive = append(alive, e)
		}
	}
	for i := len(alive); i < len(lm.enemies); i++ {
		lm.enemies[i] = nil
	}
	lm.enemies = alive
}

func centerOnTile(c levels.Cell, w, h float64) (float64, float64) {
	r := c.Rect()
	cx, cy := r.Center()
	return cx - w/2, cy - h/2
}
