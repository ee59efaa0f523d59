package prefabs

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var prefabFS embed.FS

//go:embed scripts/*.tengo
var scriptFS embed.FS

// DiskDir is read before the embedded copies, so edits under ./prefabs take
// effect without a rebuild.
var DiskDir = "prefabs"

// Load returns a prefab by file name, e.g. "player.yaml".
func Load(name string) ([]byte, error) {
	return readOverlay(prefabFS, prefabName(name))
}

// LoadScript returns a tengo script. "demo", "demo.tengo", "scripts/demo"
// and "prefabs/scripts/demo.tengo" all name the same file.
func LoadScript(name string) ([]byte, error) {
	return readOverlay(scriptFS, scriptName(name))
}

// ScriptFile is the base file name a script reference resolves to, as
// reported by Watcher events.
func ScriptFile(name string) string {
	return path.Base(scriptName(name))
}

func readOverlay(embedded fs.FS, rel string) ([]byte, error) {
	if rel == "" {
		return nil, fmt.Errorf("empty file name")
	}
	if data, err := os.ReadFile(filepath.Join(DiskDir, filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	data, err := fs.ReadFile(embedded, rel)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rel, err)
	}
	return data, nil
}

func prefabName(name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimPrefix(filepath.ToSlash(name), "prefabs/")
}

func scriptName(name string) string {
	base := prefabName(name)
	if base == "" {
		return ""
	}
	base = strings.TrimPrefix(base, "scripts/")
	if !strings.HasSuffix(base, ".tengo") {
		base += ".tengo"
	}
	return "scripts/" + base
}
