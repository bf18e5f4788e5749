package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"touching_edge", Rect{X: 10, Y: 0, Width: 5, Height: 5}, false},
		{"inside", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"apart", Rect{X: 20, Y: 20, Width: 1, Height: 1}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, base.Intersects(c.other))
			assert.Equal(t, c.want, c.other.Intersects(base))
		})
	}
}

func TestTileIndex(t *testing.T) {
	assert.Equal(t, 0, TileIndex(0))
	assert.Equal(t, 0, TileIndex(31.9))
	assert.Equal(t, 1, TileIndex(32))
	assert.Equal(t, -1, TileIndex(-0.5))
}

func TestRectTranslateAndInset(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	assert.Equal(t, Rect{X: 15, Y: 17, Width: 30, Height: 40}, r.Translate(5, -3))
	assert.Equal(t, Rect{X: 9, Y: 19, Width: 32, Height: 42}, r.Inset(1))
	assert.Equal(t, Rect{X: 12, Y: 22, Width: 26, Height: 36}, r.Inset(-2))
	assert.Equal(t, Rect{X: 10, Y: 20, Width: 30, Height: 40}, r, "value receiver leaves r unchanged")
}
