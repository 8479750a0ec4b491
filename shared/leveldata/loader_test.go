package leveldata

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArena(t *testing.T) {
	arena, err := LoadArena(os.DirFS("testdata"), "levels/small.tmx")
	require.NoError(t, err)

	assert.Equal(t, "small", arena.Name)
	assert.Equal(t, 20.0, arena.Width)
	assert.Equal(t, 10.0, arena.Height)

	// Centre of a 32px object at (304, 256) on a 10-tile-high map
	assert.InDelta(t, 10, arena.PlayerSpawn.X, 1e-9)
	assert.InDelta(t, 1.5, arena.PlayerSpawn.Y, 1e-9)

	require.Len(t, arena.Enemies, 2)
	turret := arena.Enemies[0]
	assert.Equal(t, "Turret", turret.Type)
	assert.InDelta(t, 3.5, turret.Position.X, 1e-9)
	assert.InDelta(t, 8.5, turret.Position.Y, 1e-9)
	assert.Empty(t, turret.MovementMode)
	assert.False(t, turret.HasScroll)

	scroller := arena.Enemies[1]
	assert.Equal(t, "Scroller", scroller.Type)
	assert.Equal(t, "Scroll", scroller.MovementMode)
	assert.Equal(t, "None", scroller.ShootMode)
	assert.True(t, scroller.HasScroll)
	assert.InDelta(t, -4, scroller.ScrollX, 1e-9)
	assert.InDelta(t, 0, scroller.ScrollY, 1e-9)

	require.Len(t, arena.Spawners, 2)
	assert.InDelta(t, 2.5, arena.Spawners[0].Position.X, 1e-9, "spawners sorted left to right")
	assert.Equal(t, []string{"Drone", "Rock"}, arena.Spawners[0].EnemyTypes)
	assert.Nil(t, arena.Spawners[1].EnemyTypes)
}

func TestLoadArenaDefaultsPlayerSpawn(t *testing.T) {
	arena, err := LoadArena(os.DirFS("testdata"), "levels/other.tmx")
	require.NoError(t, err)

	assert.InDelta(t, 5, arena.PlayerSpawn.X, 1e-9)
	assert.InDelta(t, 2.5, arena.PlayerSpawn.Y, 1e-9)
	assert.Empty(t, arena.Enemies)
}

func TestLoadArenaMissingFile(t *testing.T) {
	_, err := LoadArena(os.DirFS("testdata"), "levels/missing.tmx")
	assert.Error(t, err)
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(os.DirFS("testdata"), "levels")
	require.NoError(t, err)

	assert.Equal(t, []string{"other", "small"}, names)
	assert.Len(t, levels, 2)
	assert.Equal(t, "small", levels["small"].Name)
}

func TestLevelNamesEmptyDir(t *testing.T) {
	_, err := LevelNames(os.DirFS("testdata"), "nowhere")
	assert.Error(t, err)
}
