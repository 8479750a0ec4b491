package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// FS returns the embedded asset filesystem.
func FS() fs.FS {
	return assetFS
}

// LevelNames lists the embedded arena names in sorted order.
func LevelNames() ([]string, error) {
	return leveldata.LevelNames(assetFS, config.Level.Dir)
}

// MustLoadArena loads an embedded arena by name and panics if it is missing
// or malformed. Embedded levels ship with the binary, so a failure here is a
// build problem.
func MustLoadArena(name string) *leveldata.Arena {
	arena, err := leveldata.LoadArena(assetFS, fmt.Sprintf("%s/%s.tmx", config.Level.Dir, name))
	if err != nil {
		panic(err)
	}
	return arena
}
