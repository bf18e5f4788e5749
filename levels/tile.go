package levels

import "github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/common"

// Tile ids with fixed gameplay meaning.
const (
	TileEmpty        = 0
	TileFloor        = 1
	TileWall         = 2
	TileEnemySpawn   = 3
	TileFloorAlt     = 4
	TilePlayerSpawn  = 5
	TileShop         = 6
	TileSpecial      = 7
	TileReturnPortal = 8
	TileBossSpawn    = 9
	TileNextMap      = 10
)

// Tile is an immutable catalogue entry. Two tiles are equal when their ids are.
type Tile struct {
	ID       int
	Solid    bool
	Walkable bool
	Spawn    bool
	Width    int
	Height   int
}

// Equal compares tiles by id only.
func (t Tile) Equal(other Tile) bool {
	return t.ID == other.ID
}

func newTile(id int, solid, walkable, spawn bool) *Tile {
	return &Tile{
		ID:       id,
		Solid:    solid,
		Walkable: walkable,
		Spawn:    spawn,
		Width:    common.TileSize,
		Height:   common.TileSize,
	}
}

// catalogue holds one shared instance per id so grids can store references.
var catalogue = map[int]*Tile{
	TileEmpty:        newTile(TileEmpty, false, false, false),
	TileFloor:        newTile(TileFloor, false, true, false),
	TileWall:         newTile(TileWall, true, false, false),
	TileEnemySpawn:   newTile(TileEnemySpawn, false, true, true),
	TileFloorAlt:     newTile(TileFloorAlt, false, true, false),
	TilePlayerSpawn:  newTile(TilePlayerSpawn, false, true, true),
	TileShop:         newTile(TileShop, false, true, false),
	TileSpecial:      newTile(TileSpecial, false, true, false),
	TileReturnPortal: newTile(TileReturnPortal, false, true, false),
	TileBossSpawn:    newTile(TileBossSpawn, false, true, true),
	TileNextMap:      newTile(TileNextMap, false, true, false),
}

// TileByID returns the catalogue tile for id.
func TileByID(id int) (*Tile, bool) {
	t, ok := catalogue[id]
	return t, ok
}

// Catalogue returns a copy of every known tile keyed by id.
func Catalogue() map[int]Tile {
	out := make(map[int]Tile, len(catalogue))
	for id, t := range catalogue {
		out[id] = *t
	}
	return out
}
