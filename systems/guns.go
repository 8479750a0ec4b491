package systems

import (
	"errors"

	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/shared/behavior"
	"github.com/automoto/starfall/systems/factory"
	"github.com/automoto/starfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrOnCooldown = errors.New("gun on cooldown")
	ErrOutOfAmmo  = errors.New("gun out of ammo")
)

// UpdateGuns ticks gun cooldowns and keeps mounted guns at their muzzle
// position on the owner.
func UpdateGuns(ecs *ecs.ECS) {
	dt := GetClock(ecs).Delta

	tags.Gun.Each(ecs.World, func(e *donburi.Entry) {
		gun := components.Gun.Get(e)
		if gun.Cooldown > 0 {
			gun.Cooldown -= dt
			if gun.Cooldown < 0 {
				gun.Cooldown = 0
			}
		}

		owner, ok := parentOf(ecs.World, e)
		if !ok || !owner.HasComponent(components.Transform) {
			return
		}
		ownerTransform := components.Transform.Get(owner).Transform
		tr := components.Transform.Get(e)
		tr.Position = muzzlePosition(ownerTransform, gun)
		tr.Rotation = ownerTransform.Rotation
	})
}

func muzzlePosition(owner behavior.Transform, gun *components.GunData) behavior.Vec3 {
	offset := behavior.RotateZ(behavior.Vec3{X: gun.Config.OffsetX, Y: gun.Config.OffsetY}, owner.Rotation)
	return owner.Position.Add(offset)
}

// gunEmitter lets a mounted gun take part in TriggerEmitters.
type gunEmitter struct {
	ecs   *ecs.ECS
	gun   *donburi.Entry
	owner *donburi.Entry
}

// Fire spawns one projectile along the owner's facing.
func (g gunEmitter) Fire() error {
	gun := components.Gun.Get(g.gun)
	if gun.Cooldown > 0 {
		return ErrOnCooldown
	}
	if gun.Ammo == 0 {
		return ErrOutOfAmmo
	}

	owner := components.Transform.Get(g.owner).Transform
	factory.CreateProjectile(
		g.ecs,
		gun.Config,
		gun.Team,
		components.RefTo(g.owner.Entity()),
		muzzlePosition(owner, gun),
		behavior.Facing(owner.Rotation),
	)

	gun.Cooldown = gun.Config.Cooldown
	if gun.Ammo > 0 {
		gun.Ammo--
	}
	gun.ShotsFired++
	return nil
}

// gunEmitters returns the guns mounted on owner in mount order.
func gunEmitters(ecs *ecs.ECS, owner *donburi.Entry) []behavior.Emitter {
	if !owner.HasComponent(components.Children) {
		return nil
	}
	children := components.Children.Get(owner).Entities
	emitters := make([]behavior.Emitter, 0, len(children))
	for _, child := range children {
		if !ecs.World.Valid(child) {
			continue
		}
		entry := ecs.World.Entry(child)
		if !entry.HasComponent(components.Gun) {
			continue
		}
		emitters = append(emitters, gunEmitter{ecs: ecs, gun: entry, owner: owner})
	}
	return emitters
}
