package levels

import "github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/common"

// Cell addresses one grid position.
type Cell struct {
	Col, Row int
}

// Rect returns the cell's world rectangle.
func (c Cell) Rect() common.Rect {
	return common.Rect{
		X:      float64(c.Col * common.TileSize),
		Y:      float64(c.Row * common.TileSize),
		Width:  common.TileSize,
		Height: common.TileSize,
	}
}

// TileMap is a per-map grid of catalogue tile references. Cells may be nil
// (absent), which is distinct from the empty tile.
type TileMap struct {
	Name string
	// Background is an optional image reference for the renderer.
	Background string

	cols  int
	rows  int
	cells [][]*Tile
}

// NewTileMap builds a grid from rows of tile ids. Unknown ids and the padding
// of short rows become absent cells.
func NewTileMap(name string, ids [][]int) *TileMap {
	cols := 0
	for _, row := range ids {
		if len(row) > cols {
			cols = len(row)
		}
	}
	m := &TileMap{Name: name, cols: cols, rows: len(ids)}
	m.cells = make([][]*Tile, len(ids))
	for y, row := range ids {
		m.cells[y] = make([]*Tile, cols)
		for x, id := range row {
			if t, ok := TileByID(id); ok {
				m.cells[y][x] = t
			}
		}
	}
	return m
}

// FlatMap returns a cols x rows map filled with id.
func FlatMap(name string, cols, rows, id int) *TileMap {
	ids := make([][]int, rows)
	for y := range ids {
		ids[y] = make([]int, cols)
		for x := range ids[y] {
			ids[y][x] = id
		}
	}
	return NewTileMap(name, ids)
}

func (m *TileMap) Cols() int {
	if m == nil {
		return 0
	}
	return m.cols
}

func (m *TileMap) Rows() int {
	if m == nil {
		return 0
	}
	return m.rows
}

// WidthPx and HeightPx return the map size in world pixels.
func (m *TileMap) WidthPx() float64  { return float64(m.Cols() * common.TileSize) }
func (m *TileMap) HeightPx() float64 { return float64(m.Rows() * common.TileSize) }

// At returns the tile at (col, row), or nil when absent or out of range.
func (m *TileMap) At(col, row int) *Tile {
	if m == nil || col < 0 || row < 0 || row >= m.rows || col >= m.cols {
		return nil
	}
	return m.cells[row][col]
}

// WorldToTile floors world pixels into a cell.
func WorldToTile(x, y float64) Cell {
	return Cell{Col: common.TileIndex(x), Row: common.TileIndex(y)}
}

// AtWorld returns the tile under world pixel (x, y).
func (m *TileMap) AtWorld(x, y float64) *Tile {
	c := WorldToTile(x, y)
	return m.At(c.Col, c.Row)
}

// IsSolidAt reports whether the cell holds a solid tile. Absent cells are not solid.
func (m *TileMap) IsSolidAt(col, row int) bool {
	t := m.At(col, row)
	return t != nil && t.Solid
}

// Find returns every cell holding id in row-major order.
func (m *TileMap) Find(id int) []Cell {
	if m == nil {
		return nil
	}
	var out []Cell
	for y := 0; y < m.rows; y++ {
		for x := 0; x < m.cols; x++ {
			if t := m.cells[y][x]; t != nil && t.ID == id {
				out = append(out, Cell{Col: x, Row: y})
			}
		}
	}
	return out
}

// TouchesTile reports whether r occupies, or sits flush against, a cell
// holding id. The rectangle is grown by one pixel so contact along an edge
// counts even when the boxes do not overlap.
func (m *TileMap) TouchesTile(r common.Rect, id int) bool {
	if m == nil || r.Width <= 0 || r.Height <= 0 {
		return false
	}
	grown := r.Inset(1)
	left, right := common.TileSpan(grown.X, grown.Width)
	top, bottom := common.TileSpan(grown.Y, grown.Height)

	// occupied cells plus edge neighbours; the four diagonal corners are skipped
	occLeft, occRight := common.TileSpan(r.X, r.Width)
	occTop, occBottom := common.TileSpan(r.Y, r.Height)

	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			outsideX := col < occLeft || col > occRight
			outsideY := row < occTop || row > occBottom
			if outsideX && outsideY {
				continue
			}
			if t := m.At(col, row); t != nil && t.ID == id {
				return true
			}
		}
	}
	return false
}

// ReplaceCells swaps in the grid of other, keeping name and background.
func (m *TileMap) ReplaceCells(other *TileMap) {
	if m == nil || other == nil {
		return
	}
	m.cols = other.cols
	m.rows = other.rows
	m.cells = other.cells
}
