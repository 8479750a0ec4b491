package systems

import (
	"testing"

	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/shared/behavior"
	"github.com/automoto/starfall/systems/factory"
	"github.com/automoto/starfall/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func timedDrone(t *testing.T, e *ecs.ECS, destroyChildren bool) *donburi.Entry {
	t.Helper()
	drone, err := factory.CreateEnemy(e, "Drone", behavior.Vec3{X: 5, Y: 5}, nil)
	require.NoError(t, err)
	drone.AddComponent(components.Lifetime)
	components.Lifetime.SetValue(drone, components.LifetimeData{
		Lifetime:        1,
		DestroyChildren: destroyChildren,
	})
	return drone
}

func TestLifetimeExpiresAfterExceeding(t *testing.T) {
	e := newTestECS(t)
	drone := timedDrone(t, e, true)
	gun := e.World.Entry(firstChild(t, drone))

	setDelta(e, 0.6)
	UpdateLifetimes(e) // 0 -> 0.6
	UpdateLifetimes(e) // 0.6 -> 1.2
	require.True(t, alive(e, drone))

	UpdateLifetimes(e)
	assert.False(t, alive(e, drone))
	assert.False(t, alive(e, gun), "children destroyed with the parent")
}

func TestLifetimeDetachesChildren(t *testing.T) {
	e := newTestECS(t)
	drone := timedDrone(t, e, false)
	gun := e.World.Entry(firstChild(t, drone))

	setDelta(e, 2)
	UpdateLifetimes(e)
	UpdateLifetimes(e)

	assert.False(t, alive(e, drone))
	require.True(t, alive(e, gun))
	assert.False(t, components.Parent.Get(gun).Parent.Set)

	// A detached gun is left alone
	UpdateGuns(e)
	assert.Empty(t, gunEmitters(e, gun))
}

func TestQuittingDetachesChildren(t *testing.T) {
	e := newTestECS(t)
	drone := timedDrone(t, e, true)
	gun := e.World.Entry(firstChild(t, drone))
	GetSession(e).Quitting = true

	setDelta(e, 2)
	UpdateLifetimes(e)
	UpdateLifetimes(e)

	assert.False(t, alive(e, drone))
	assert.True(t, alive(e, gun))
}

func TestProjectilesExpire(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 5, 5)
	GetInput(e).Fire = true
	GetInput(e).Pointer = behavior.Vec3{X: 5, Y: 20}

	setDelta(e, 0)
	UpdatePlayer(e)
	require.Equal(t, 1, count(e.World, tags.Projectile))
	assert.InDelta(t, 180, components.Transform.Get(player).Rotation, 1e-9)

	setDelta(e, 1.5)
	for i := 0; i < 3; i++ {
		UpdateLifetimes(e)
	}
	assert.Equal(t, 0, count(e.World, tags.Projectile))
}
