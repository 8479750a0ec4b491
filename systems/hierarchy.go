package systems

import (
	"github.com/automoto/starfall/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DestroyEntity removes e and its hitbox from the world. Mounted children are
// destroyed with it when destroyChildren is set and the session is not
// quitting; otherwise they are detached and left in place.
func DestroyEntity(ecs *ecs.ECS, e *donburi.Entry, destroyChildren bool) {
	if e == nil || !ecs.World.Valid(e.Entity()) {
		return
	}

	if e.HasComponent(components.Children) {
		quitting := GetSession(ecs).Quitting
		for _, child := range components.Children.Get(e).Entities {
			if !ecs.World.Valid(child) {
				continue
			}
			childEntry := ecs.World.Entry(child)
			if destroyChildren && !quitting {
				DestroyEntity(ecs, childEntry, true)
			} else {
				detach(childEntry)
			}
		}
	}

	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}

	ecs.World.Remove(e.Entity())
}

func detach(e *donburi.Entry) {
	if e.HasComponent(components.Parent) {
		components.Parent.Get(e).Parent = components.Ref{}
	}
}

// parentOf returns the live entry e is mounted on.
func parentOf(w donburi.World, e *donburi.Entry) (*donburi.Entry, bool) {
	if !e.HasComponent(components.Parent) {
		return nil, false
	}
	return components.Parent.Get(e).Parent.Resolve(w)
}
