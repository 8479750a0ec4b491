package systems

import (
	"log"

	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/shared/behavior"
	"github.com/automoto/starfall/systems/factory"
	"github.com/automoto/starfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawners spawns a random enemy from each due spawner, somewhere in
// the spawner's range.
func UpdateSpawners(ecs *ecs.ECS) {
	clock := GetClock(ecs)

	var due []*donburi.Entry
	tags.Spawner.Each(ecs.World, func(e *donburi.Entry) {
		spawner := components.Spawner.Get(e)
		if !spawner.Infinite && spawner.Spawned >= spawner.MaxEnemies {
			return
		}
		if clock.Elapsed < spawner.NextSpawn {
			return
		}
		spawner.NextSpawn = clock.Elapsed + spawner.Interval
		due = append(due, e)
	})

	for _, e := range due {
		spawner := components.Spawner.Get(e)
		if len(spawner.EnemyTypes) == 0 {
			log.Printf("Warning: spawner %v has no enemy types", e.Entity())
			continue
		}

		typeName := spawner.EnemyTypes[clock.Rand.Intn(len(spawner.EnemyTypes))]
		offset := behavior.Vec3{
			X: (clock.Rand.Float64()*2 - 1) * spawner.RangeX,
			Y: (clock.Rand.Float64()*2 - 1) * spawner.RangeY,
		}
		pos := components.Transform.Get(e).Position.Add(offset)

		if _, err := factory.CreateEnemy(ecs, typeName, pos, nil); err != nil {
			log.Printf("Warning: spawner: %v", err)
			continue
		}
		spawner.Spawned++
	}
}
