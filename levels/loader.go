package levels

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/logger"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyMap = errors.New("levels: map has no rows")
	ErrBadTile  = errors.New("levels: tile id is not an integer")
)

// Fallback map size used when a map file is missing or unparseable.
const (
	FallbackCols = 25
	FallbackRows = 15
)

const mapDir = "maps"

// Parse reads the text map format: one row per line, tile ids separated by
// whitespace and/or commas. Blank lines are skipped.
func Parse(name string, r io.Reader) (*TileMap, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.FieldsFunc(sc.Text(), func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t' || c == '\r'
		})
		if len(fields) == 0 {
			continue
		}
		row := make([]int, 0, len(fields))
		for _, f := range fields {
			id, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("levels: parse %s line %d: %q: %w", name, line, f, ErrBadTile)
			}
			row = append(row, id)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("levels: parse %s: %w", name, ErrEmptyMap)
	}
	return NewTileMap(name, rows), nil
}

// Loader resolves named maps from a filesystem holding maps/<name>.txt.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader over fsys. A nil fsys uses FS().
func NewLoader(fsys fs.FS) *Loader {
	if fsys == nil {
		fsys = FS()
	}
	return &Loader{fsys: fsys}
}

// MapPath returns the filesystem path of a named map.
func MapPath(name string) string {
	return path.Join(mapDir, strings.TrimSuffix(name, ".txt")+".txt")
}

// Load returns the named map. It never fails: a missing or unparseable file
// yields a flat map of empty tiles and a warning.
func (l *Loader) Load(name string) *TileMap {
	m, err := l.Read(name)
	if err != nil {
		logger.For("levels").WithFields(logrus.Fields{
			"map":   name,
			"error": err,
		}).Warn("map unavailable, using flat fallback")
		return FlatMap(name, FallbackCols, FallbackRows, TileEmpty)
	}
	return m
}

// Read loads and parses the named map, returning any error.
func (l *Loader) Read(name string) (*TileMap, error) {
	if l == nil || l.fsys == nil {
		return nil, fmt.Errorf("levels: load %s: no filesystem", name)
	}
	f, err := l.fsys.Open(MapPath(name))
	if err != nil {
		return nil, fmt.Errorf("levels: open %s: %w", name, err)
	}
	defer f.Close()
	return Parse(strings.TrimSuffix(name, ".txt"), f)
}

// FS exposes the loader's filesystem for related assets (world.yaml).
func (l *Loader) FS() fs.FS {
	if l == nil {
		return nil
	}
	return l.fsys
}
