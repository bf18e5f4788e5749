package levels

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWorld = `
maps:
  - name: a
    background: a.png
  - name: b
  - name: c
next:
  a: b
  b: c
previous:
  c: b
facing:
  - from: c
    to: b
    facing_right: true
`

func TestWorldConfigGraph(t *testing.T) {
	cfg, err := LoadWorldConfig(fstest.MapFS{"world.yaml": {Data: []byte(testWorld)}})
	require.NoError(t, err)

	assert.Equal(t, "a", cfg.First())
	next, ok := cfg.NextOf("a")
	assert.True(t, ok)
	assert.Equal(t, "b", next)

	_, ok = cfg.NextOf("c")
	assert.False(t, ok, "terminal map has no forward edge")

	_, ok = cfg.PreviousOf("b")
	assert.False(t, ok, "backward edges are defined independently")

	right, ok := cfg.FacingFor("c", "b")
	assert.True(t, ok)
	assert.True(t, right)
	_, ok = cfg.FacingFor("b", "c")
	assert.False(t, ok)

	assert.Equal(t, "a.png", cfg.Background("a"))
	assert.Empty(t, cfg.Background("b"))
}

func TestWorldConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{"no_maps", "maps: []\n", ErrNoMaps},
		{"unknown_target", "maps:\n  - name: a\nnext:\n  a: zz\n", ErrUnknownMap},
		{"unknown_source", "maps:\n  - name: a\nprevious:\n  zz: a\n", ErrUnknownMap},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := LoadWorldConfig(fstest.MapFS{"world.yaml": {Data: []byte(c.yaml)}})
			assert.True(t, errors.Is(err, c.want), "got %v", err)
		})
	}
}
