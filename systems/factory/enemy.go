package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/starfall/archetypes"
	"github.com/automoto/starfall/components"
	cfg "github.com/automoto/starfall/config"
	"github.com/automoto/starfall/shared/behavior"
	"github.com/automoto/starfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrUnknownEnemyType = errors.New("unknown enemy type")

// CreateEnemy spawns an enemy of the named type at pos. The target is the
// entity it follows; when nil the player is used if there is one.
func CreateEnemy(ecs *ecs.ECS, typeName string, pos behavior.Vec3, target *donburi.Entry) (*donburi.Entry, error) {
	enemyType, exists := cfg.Enemy.Types[typeName]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnemyType, typeName)
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	components.Transform.SetValue(enemy, components.TransformData{
		Transform: behavior.Transform{Position: pos},
	})
	newObject(ecs, enemy, pos.X, pos.Y, enemyType.Size, tags.ResolvEnemy)

	if target == nil {
		target, _ = components.Player.First(ecs.World)
	}

	enemyData := components.EnemyData{
		TypeName:   typeName,
		ScoreValue: enemyType.ScoreValue,
		Movement: behavior.MovementState{
			Mode:            enemyType.MovementMode,
			Speed:           enemyType.MoveSpeed,
			FollowRange:     enemyType.FollowRange,
			ScrollDirection: enemyType.ScrollDirection,
		},
		ShootMode: enemyType.ShootMode,
		TintColor: enemyType.TintColor,
	}
	if target != nil {
		enemyData.Target = components.RefTo(target.Entity())
	}
	enemyData.Movement.Activate(pos)
	components.Enemy.SetValue(enemy, enemyData)

	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})

	if enemyType.Lifetime > 0 {
		enemy.AddComponent(components.Lifetime)
		components.Lifetime.SetValue(enemy, components.LifetimeData{
			Lifetime:        enemyType.Lifetime,
			DestroyChildren: cfg.Lifetime.DestroyChildren,
		})
	}

	for _, gun := range enemyType.Guns {
		CreateGun(ecs, enemy, gun, components.TeamEnemy)
	}
	return enemy, nil
}
