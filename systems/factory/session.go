package factory

import (
	"math/rand"

	"github.com/automoto/starfall/archetypes"
	"github.com/automoto/starfall/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession creates the per-world score, clock and input holder.
func CreateSession(ecs *ecs.ECS, seed int64) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Clock.SetValue(session, components.ClockData{
		Rand: rand.New(rand.NewSource(seed)),
	})
	return session
}
