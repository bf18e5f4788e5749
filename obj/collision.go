package obj

import (
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/common"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/levels"
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/logger"
	"github.com/sirupsen/logrus"
)

// MoveWithCollision moves a w x h box at (x, y) by (dx, dy) and returns the
// new position. X and Y resolve independently: an axis whose candidate box
// covers any solid cell does not advance at all, so a diagonal move into a
// wall still slides along it. A nil map leaves the position unchanged.
func MoveWithCollision(x, y, dx, dy, w, h float64, tm *levels.TileMap) (float64, float64) {
	if tm == nil {
		logger.For("collision").WithFields(logrus.Fields{
			"x": x, "y": y, "dx": dx, "dy": dy,
		}).Warn("move without tile map ignored")
		return x, y
	}
	box := common.Rect{X: x, Y: y, Width: w, Height: h}
	if dx != 0 && !Collides(box.Translate(dx, 0), tm) {
		box = box.Translate(dx, 0)
	}
	if dy != 0 && !Collides(box.Translate(0, dy), tm) {
		box = box.Translate(0, dy)
	}
	return box.X, box.Y
}

// Collides reports whether r covers any part of a solid cell. A box ending
// exactly on a tile boundary does not reach into the next tile, but one
// ending a fraction past it does.
func Collides(r common.Rect, tm *levels.TileMap) bool {
	if tm == nil {
		return false
	}
	left, right := common.TileSpan(r.X, r.Width)
	top, bottom := common.TileSpan(r.Y, r.Height)
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			if tm.IsSolidAt(col, row) {
				return true
			}
		}
	}
	return false
}
