package prefabs

import (
	"embed"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Load returns the raw bytes of an embedded prefab.
func Load(name string) ([]byte, error) {
	return PrefabsFS.ReadFile(cleanPrefabPath(name))
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}
	return s
}
