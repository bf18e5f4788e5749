package common

import "math"

// TileSize is the edge length of a map cell in world pixels.
const TileSize = 32

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// TileIndex converts a world coordinate into a tile index, flooring so negative
// coordinates land in negative cells.
func TileIndex(coord float64) int {
	return int(math.Floor(coord / TileSize))
}

// TileSpan returns the first and last tile indices covered by the half-open
// interval [coord, coord+size). A fractional overlap of a cell counts, while an
// edge ending exactly on a boundary does not reach the next cell.
func TileSpan(coord, size float64) (int, int) {
	first := TileIndex(coord)
	last := int(math.Ceil((coord+size)/TileSize)) - 1
	if last < first {
		last = first
	}
	return first, last
}
