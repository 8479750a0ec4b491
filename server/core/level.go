package core

import (
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/automoto/starfall/assets"
	cfg "github.com/automoto/starfall/config"
	"github.com/automoto/starfall/shared/leveldata"
)

// LevelSource returns the filesystem levels are read from: assetsDir on disk
// when set, otherwise the levels embedded in the binary.
func LevelSource(assetsDir string) fs.FS {
	if assetsDir == "" {
		return assets.FS()
	}
	return os.DirFS(assetsDir)
}

// LoadLevel loads the named arena from fsys.
func LoadLevel(fsys fs.FS, name string) (*leveldata.Arena, error) {
	levels, names, err := leveldata.LoadAllLevels(fsys, cfg.Level.Dir)
	if err != nil {
		return nil, fmt.Errorf("load all levels: %w", err)
	}

	arena, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("unknown level %q (have %v)", name, names)
	}

	log.Printf("Loaded level %s: %d enemies, %d spawners, %.0fx%.0f arena",
		arena.Name, len(arena.Enemies), len(arena.Spawners), arena.Width, arena.Height)
	return arena, nil
}
