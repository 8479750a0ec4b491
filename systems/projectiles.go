package systems

import (
	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves projectiles and applies damage to the first
// opposing hitbox each one overlaps. A projectile that hits is destroyed.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := GetClock(ecs).Delta

	var projectiles []*donburi.Entry
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		projectiles = append(projectiles, e)
	})

	var spent []*donburi.Entry
	for _, e := range projectiles {
		projectile := components.Projectile.Get(e)
		tr := components.Transform.Get(e)
		if dt > 0 {
			tr.Position = tr.Position.Add(projectile.Velocity.Scale(dt))
		}
		syncObject(e)

		if target, ok := findHit(ecs, e, projectile.Team.Opponent()); ok {
			ApplyDamage(target, projectile.Damage, projectile.Owner)
			spent = append(spent, e)
		}
	}

	for _, e := range spent {
		DestroyEntity(ecs, e, true)
	}
}

func findHit(ecs *ecs.ECS, e *donburi.Entry, team components.Team) (*donburi.Entry, bool) {
	obj := components.Object.Get(e).Object
	targetTag := resolvTag(team)

	check := obj.Check(0, 0, targetTag)
	if check == nil {
		return nil, false
	}
	for _, other := range check.ObjectsByTags(targetTag) {
		if !overlaps(obj, other) {
			continue
		}
		if target, ok := entityOf(ecs.World, other); ok && target.HasComponent(components.Health) {
			return target, true
		}
	}
	return nil, false
}

func resolvTag(team components.Team) string {
	if team == components.TeamPlayer {
		return tags.ResolvPlayer
	}
	return tags.ResolvEnemy
}

// ApplyDamage queues damage on target for the health system. Hits in the
// same tick add up.
func ApplyDamage(target *donburi.Entry, amount int, source components.Ref) {
	if amount <= 0 {
		return
	}
	if target.HasComponent(components.DamageEvent) {
		components.DamageEvent.Get(target).Amount += amount
		return
	}
	target.AddComponent(components.DamageEvent)
	components.DamageEvent.SetValue(target, components.DamageEventData{
		Amount: amount,
		Source: source,
	})
}
