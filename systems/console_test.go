package systems

import (
	"testing"

	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/console"
	"github.com/automoto/starfall/shared/behavior"
	"github.com/automoto/starfall/systems/factory"
	"github.com/automoto/starfall/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

func submit(e *ecs.ECS, host *ConsoleHost, line string) *components.ConsoleData {
	SubmitConsoleInput(e, console.DefaultRegistry(), host, line)
	return getConsole(e)
}

func TestConsoleSpawnAndKillAll(t *testing.T) {
	e := newTestECS(t)
	factory.CreatePlayer(e, 20, 5)
	factory.CreateConsole(e)
	host := NewConsoleHost(e, nil)

	c := submit(e, host, "Spawn Drone")
	assert.Equal(t, "Spawned Drone", c.Output)
	assert.Equal(t, []string{"> Spawn Drone", "Spawned Drone"}, c.History)

	enemy, ok := tags.Enemy.First(e.World)
	require.True(t, ok)
	assert.Equal(t, behavior.Vec3{X: 20, Y: 11}, components.Transform.Get(enemy).Position)

	submit(e, host, "Spawn Rock 3 4")
	assert.Equal(t, 2, count(e.World, tags.Enemy))

	c = submit(e, host, "Spawn Nope")
	assert.Contains(t, c.Output, "unknown enemy type")

	c = submit(e, host, "KillAll")
	assert.Equal(t, "Removed 2 enemies", c.Output)
	assert.Equal(t, 0, count(e.World, tags.Enemy))
	assert.Equal(t, 1, count(e.World, tags.Gun), "only the player's gun remains")
	assert.Equal(t, 0, GetSession(e).Score)
}

func TestConsoleListScenesScoreClear(t *testing.T) {
	e := newTestECS(t)
	factory.CreateConsole(e)
	host := NewConsoleHost(e, func() ([]string, error) {
		return []string{"arena", "gauntlet"}, nil
	})
	GetSession(e).Score = 12

	c := submit(e, host, "ListScenes")
	assert.Equal(t, "0 | arena\n1 | gauntlet", c.Output)

	c = submit(e, host, "Score")
	assert.Equal(t, "Score: 12 (0 defeated)", c.Output)

	c = submit(e, host, "ListScenes now")
	assert.Contains(t, c.Output, "Invalid Use of command |ListScenes|")

	c = submit(e, host, "Clear")
	assert.Empty(t, c.History)
	assert.Empty(t, c.Output)
}

func TestConsoleToggleAndBlankInput(t *testing.T) {
	e := newTestECS(t)
	assert.False(t, IsConsoleOpen(e), "no console entity")
	ToggleConsole(e)

	factory.CreateConsole(e)
	ToggleConsole(e)
	assert.True(t, IsConsoleOpen(e))

	c := submit(e, NewConsoleHost(e, nil), "   ")
	assert.Empty(t, c.History, "blank lines are not recorded")

	ToggleConsole(e)
	assert.False(t, IsConsoleOpen(e))
}

func TestConsolePausesGameplay(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 5, 5)
	factory.CreateConsole(e)
	ToggleConsole(e)

	GetInput(e).Move = behavior.Vec3{X: 1}
	setDelta(e, 1)
	WithGameplayChecks(UpdatePlayer)(e)
	assert.Equal(t, behavior.Vec3{X: 5, Y: 5}, components.Transform.Get(player).Position)

	ToggleConsole(e)
	WithGameplayChecks(UpdatePlayer)(e)
	assert.InDelta(t, 5+components.Player.Get(player).MoveSpeed, components.Transform.Get(player).Position.X, tolerance)

	GetSession(e).GameOver = true
	WithGameplayChecks(UpdatePlayer)(e)
	assert.InDelta(t, 5+components.Player.Get(player).MoveSpeed, components.Transform.Get(player).Position.X, tolerance)
}
