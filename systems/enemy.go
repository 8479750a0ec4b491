package systems

import (
	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/shared/behavior"
	"github.com/automoto/starfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs each enemy's movement policy, applies the result and
// asks its guns to fire.
func UpdateEnemies(ecs *ecs.ECS) {
	dt := GetClock(ecs).Delta

	var enemies []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})

	for _, e := range enemies {
		if !ecs.World.Valid(e.Entity()) {
			continue
		}
		enemy := components.Enemy.Get(e)
		tr := components.Transform.Get(e)

		move := behavior.ComputeMovement(&enemy.Movement, tr.Transform, targetPosition(ecs.World, enemy.Target), dt)
		tr.Position = tr.Position.Add(move.Delta)
		tr.Rotation = move.Rotation

		behavior.TriggerEmitters(enemy.ShootMode, gunEmitters(ecs, e))
	}
}

// targetPosition resolves a target reference to a position, or nil when the
// target is gone.
func targetPosition(w donburi.World, ref components.Ref) *behavior.Vec3 {
	target, ok := ref.Resolve(w)
	if !ok || !target.HasComponent(components.Transform) {
		return nil
	}
	pos := components.Transform.Get(target).Position
	return &pos
}
