package factory

import (
	"github.com/automoto/starfall/archetypes"
	"github.com/automoto/starfall/components"
	cfg "github.com/automoto/starfall/config"
	"github.com/automoto/starfall/shared/behavior"
	"github.com/automoto/starfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a projectile fired by gun from pos along dir.
func CreateProjectile(ecs *ecs.ECS, gun cfg.GunConfig, team components.Team, owner components.Ref, pos, dir behavior.Vec3) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	components.Transform.SetValue(p, components.TransformData{
		Transform: behavior.Transform{
			Position: pos,
			Rotation: behavior.SignedAngle(behavior.Down, dir, behavior.Forward),
		},
	})
	newObject(ecs, p, pos.X, pos.Y, gun.ProjectileSize, tags.ResolvProjectile)

	components.Projectile.SetValue(p, components.ProjectileData{
		Velocity: dir.Normalized().Scale(gun.ProjectileSpeed),
		Damage:   gun.ProjectileDamage,
		Team:     team,
		Owner:    owner,
	})

	lifetime := gun.ProjectileLifetime
	if lifetime <= 0 {
		lifetime = cfg.Lifetime.Default
	}
	components.Lifetime.SetValue(p, components.LifetimeData{
		Lifetime: lifetime,
	})
	return p
}
