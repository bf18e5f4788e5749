package levels

import (
	"embed"
	"errors"
	"io/fs"
	"os"
)

//go:embed maps/*.txt world.yaml
var LevelsFS embed.FS

// DiskDir is checked before the embedded copies so edited maps load without
// rebuilding.
const DiskDir = "levels"

// FS returns the level data filesystem: files under DiskDir shadow the
// embedded ones.
func FS() fs.FS {
	return overlayFS{upper: os.DirFS(DiskDir), lower: LevelsFS}
}

type overlayFS struct {
	upper fs.FS
	lower fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	if o.upper != nil {
		f, err := o.upper.Open(name)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return o.lower.Open(name)
}
