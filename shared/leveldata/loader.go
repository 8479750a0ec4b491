package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names used by arena maps.
const (
	GroupPlayerSpawn = "PlayerSpawn"
	GroupEnemies     = "Enemies"
	GroupSpawners    = "Spawners"
)

// LoadArena parses a TMX file into an Arena. It takes an fs.FS so callers can
// pass embed.FS (client) or os.DirFS (headless runner).
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	arena := &Arena{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width),
		Height: float64(levelMap.Height),
		PlayerSpawn: Point{
			X: float64(levelMap.Width) / 2,
			Y: float64(levelMap.Height) / 4,
		},
	}

	// Tiled uses pixels with Y down; arenas use one unit per tile with Y up.
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	toWorld := func(o *tiled.Object) Point {
		return Point{
			X: (o.X + o.Width/2) / tileW,
			Y: arena.Height - (o.Y+o.Height/2)/tileH,
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlayerSpawn:
			if len(og.Objects) > 0 {
				arena.PlayerSpawn = toWorld(og.Objects[0])
			}
		case GroupEnemies:
			for _, o := range og.Objects {
				placement := EnemyPlacement{
					Type:         o.Name,
					Position:     toWorld(o),
					MovementMode: o.Properties.GetString("movementMode"),
					ShootMode:    o.Properties.GetString("shootMode"),
				}
				if hasProperty(o.Properties, "scrollX") || hasProperty(o.Properties, "scrollY") {
					placement.HasScroll = true
					placement.ScrollX = o.Properties.GetFloat("scrollX")
					placement.ScrollY = o.Properties.GetFloat("scrollY")
				}
				arena.Enemies = append(arena.Enemies, placement)
			}
		case GroupSpawners:
			for _, o := range og.Objects {
				zone := SpawnerZone{Position: toWorld(o)}
				if types := o.Properties.GetString("enemyTypes"); types != "" {
					zone.EnemyTypes = splitList(types)
				}
				arena.Spawners = append(arena.Spawners, zone)
			}
		}
	}

	// Stable order regardless of editor object IDs
	sort.SliceStable(arena.Spawners, func(i, j int) bool {
		return arena.Spawners[i].Position.X < arena.Spawners[j].Position.X
	})

	return arena, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each
// arena, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Arena, []string, error) {
	names, err := LevelNames(fsys, levelsDir)
	if err != nil {
		return nil, nil, err
	}

	levels := make(map[string]*Arena, len(names))
	for _, name := range names {
		path := levelsDir + "/" + name + ".tmx"
		arena, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[name] = arena
	}
	return levels, names, nil
}

// LevelNames returns the sorted stems of the .tmx files in levelsDir.
func LevelNames(fsys fs.FS, levelsDir string) ([]string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	names := make([]string, 0, len(matches))
	for _, path := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(path), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}

func hasProperty(props tiled.Properties, name string) bool {
	for _, p := range props {
		if p.Name == name {
			return true
		}
	}
	return false
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
