package systems

import (
	"testing"

	"github.com/automoto/starfall/components"
	cfg "github.com/automoto/starfall/config"
	"github.com/automoto/starfall/shared/behavior"
	"github.com/automoto/starfall/systems/factory"
	"github.com/automoto/starfall/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func runSpawnerAt(e *ecs.ECS, elapsed float64) {
	GetClock(e).Elapsed = elapsed
	UpdateSpawners(e)
}

func TestSpawnerIntervalAndCap(t *testing.T) {
	e := newTestECS(t)
	cfg.Spawner.Infinite = false
	cfg.Spawner.MaxEnemies = 2
	center := behavior.Vec3{X: 20, Y: 12}
	spawner := factory.CreateSpawner(e, center, []string{"Rock"})

	runSpawnerAt(e, 4.9)
	assert.Equal(t, 0, count(e.World, tags.Enemy))

	runSpawnerAt(e, 5)
	assert.Equal(t, 1, count(e.World, tags.Enemy))

	runSpawnerAt(e, 9)
	assert.Equal(t, 1, count(e.World, tags.Enemy))

	runSpawnerAt(e, 10)
	runSpawnerAt(e, 15)
	runSpawnerAt(e, 20)
	assert.Equal(t, 2, count(e.World, tags.Enemy))
	assert.Equal(t, 2, components.Spawner.Get(spawner).Spawned)

	tags.Enemy.Each(e.World, func(enemy *donburi.Entry) {
		assert.Equal(t, "Rock", components.Enemy.Get(enemy).TypeName)
		pos := components.Transform.Get(enemy).Position
		assert.LessOrEqual(t, pos.Sub(center).X, cfg.Spawner.RangeX)
		assert.GreaterOrEqual(t, pos.Sub(center).X, -cfg.Spawner.RangeX)
		assert.LessOrEqual(t, pos.Sub(center).Y, cfg.Spawner.RangeY)
		assert.GreaterOrEqual(t, pos.Sub(center).Y, -cfg.Spawner.RangeY)
	})
}

func TestSpawnerTargetsPlayer(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 20, 2)
	factory.CreateSpawner(e, behavior.Vec3{X: 20, Y: 12}, []string{"Drone"})

	runSpawnerAt(e, 5)
	enemy, ok := tags.Enemy.First(e.World)
	require.True(t, ok)
	assert.Equal(t, components.RefTo(player.Entity()), components.Enemy.Get(enemy).Target)
}

func TestSpawnerWithoutTypesSpawnsNothing(t *testing.T) {
	e := newTestECS(t)
	factory.CreateSpawner(e, behavior.Vec3{X: 20, Y: 12}, []string{})

	runSpawnerAt(e, 5)
	runSpawnerAt(e, 10)
	assert.Equal(t, 0, count(e.World, tags.Enemy))
}

func TestSpawnerIsDeterministicPerSeed(t *testing.T) {
	positions := func() []behavior.Vec3 {
		e := newTestECS(t)
		factory.CreateSpawner(e, behavior.Vec3{X: 20, Y: 12}, nil)
		for i := 1; i <= 4; i++ {
			runSpawnerAt(e, float64(i)*5)
		}
		var out []behavior.Vec3
		tags.Enemy.Each(e.World, func(enemy *donburi.Entry) {
			out = append(out, components.Transform.Get(enemy).Position)
		})
		return out
	}

	first := positions()
	require.Len(t, first, 4)
	assert.ElementsMatch(t, first, positions())
}
