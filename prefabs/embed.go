package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml scripts/*.tengo
var PrefabsFS embed.FS

// DiskDir holds editable spec overrides. A file here wins over the embedded
// copy with the same name.
const DiskDir = "prefabs"

// Load returns the named spec file from DiskDir or, failing that, the binary.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name)
	if data, err := os.ReadFile(filepath.Join(DiskDir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func cleanPath(name string) string {
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, DiskDir+"/"); ok {
		return after
	}
	return s
}
