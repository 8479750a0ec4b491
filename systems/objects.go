package systems

import (
	"github.com/automoto/starfall/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves every hitbox to its entity's position.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		syncObject(e)
	})
}

func syncObject(e *donburi.Entry) {
	if !e.HasComponent(components.Transform) {
		return
	}
	obj := components.Object.Get(e)
	pos := components.Transform.Get(e).Position
	obj.X = pos.X - obj.W/2
	obj.Y = pos.Y - obj.H/2
	obj.Update()
}

// overlaps is the exact box test run after the space's cell check.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// entityOf returns the live entry a hitbox belongs to.
func entityOf(w donburi.World, obj *resolv.Object) (*donburi.Entry, bool) {
	entity, ok := obj.Data.(donburi.Entity)
	if !ok || !w.Valid(entity) {
		return nil, false
	}
	return w.Entry(entity), true
}
