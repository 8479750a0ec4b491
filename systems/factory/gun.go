package factory

import (
	"github.com/automoto/starfall/archetypes"
	"github.com/automoto/starfall/components"
	cfg "github.com/automoto/starfall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGun mounts a gun on owner. The gun is appended to the owner's
// children, so guns fire in mount order.
func CreateGun(ecs *ecs.ECS, owner *donburi.Entry, gun cfg.GunConfig, team components.Team) *donburi.Entry {
	g := archetypes.Gun.Spawn(ecs)

	components.Gun.SetValue(g, components.GunData{
		Config: gun,
		Team:   team,
		Ammo:   gun.Ammo,
	})
	components.Transform.SetValue(g, *components.Transform.Get(owner))
	components.Parent.SetValue(g, components.ParentData{
		Parent: components.RefTo(owner.Entity()),
	})

	if owner.HasComponent(components.Children) {
		children := components.Children.Get(owner)
		children.Entities = append(children.Entities, g.Entity())
	}
	return g
}
