package factory

import (
	"github.com/automoto/starfall/archetypes"
	"github.com/automoto/starfall/components"
	cfg "github.com/automoto/starfall/config"
	"github.com/automoto/starfall/shared/behavior"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpawner places a random enemy spawner at pos using the configured
// defaults. A nil enemyTypes uses the configured list.
func CreateSpawner(ecs *ecs.ECS, pos behavior.Vec3, enemyTypes []string) *donburi.Entry {
	s := archetypes.Spawner.Spawn(ecs)

	if enemyTypes == nil {
		enemyTypes = append([]string(nil), cfg.Spawner.EnemyTypes...)
	}

	components.Transform.SetValue(s, components.TransformData{
		Transform: behavior.Transform{Position: pos},
	})
	components.Spawner.SetValue(s, components.SpawnerData{
		EnemyTypes: enemyTypes,
		Interval:   cfg.Spawner.Interval,
		RangeX:     cfg.Spawner.RangeX,
		RangeY:     cfg.Spawner.RangeY,
		Infinite:   cfg.Spawner.Infinite,
		MaxEnemies: cfg.Spawner.MaxEnemies,
		NextSpawn:  cfg.Spawner.Interval,
	})
	return s
}
