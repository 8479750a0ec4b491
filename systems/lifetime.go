package systems

import (
	"github.com/automoto/starfall/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLifetimes destroys entities that have outlived their lifetime.
func UpdateLifetimes(ecs *ecs.ECS) {
	dt := GetClock(ecs).Delta

	var expired []*donburi.Entry
	components.Lifetime.Each(ecs.World, func(e *donburi.Entry) {
		lifetime := components.Lifetime.Get(e)
		if lifetime.TimeAlive > lifetime.Lifetime {
			expired = append(expired, e)
			return
		}
		lifetime.TimeAlive += dt
	})

	for _, e := range expired {
		DestroyEntity(ecs, e, components.Lifetime.Get(e).DestroyChildren)
	}
}
