package archetypes

import (
	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Object,
		components.Health,
		components.Children,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Transform,
		components.Object,
		components.Health,
		components.Children,
	)
	Gun = newArchetype(
		tags.Gun,
		components.Gun,
		components.Transform,
		components.Parent,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Transform,
		components.Object,
		components.Lifetime,
	)
	Spawner = newArchetype(
		tags.Spawner,
		components.Spawner,
		components.Transform,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Space = newArchetype(
		components.Space,
	)
	Session = newArchetype(
		components.Session,
		components.Clock,
		components.Input,
	)
	HeartDisplay = newArchetype(
		components.HeartDisplay,
	)
	Console = newArchetype(
		components.Console,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.World.Create(all...))
}
