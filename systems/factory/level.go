package factory

import (
	"log"
	"math"

	"github.com/automoto/starfall/components"
	cfg "github.com/automoto/starfall/config"
	"github.com/automoto/starfall/shared/behavior"
	"github.com/automoto/starfall/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena populates the world from an arena layout: collision space,
// player, camera, health display, placed enemies and spawners. It returns
// the player entry.
func CreateArena(ecs *ecs.ECS, arena *leveldata.Arena) *donburi.Entry {
	width, height := arena.Width, arena.Height
	if width <= 0 || height <= 0 {
		width, height = cfg.C.ArenaWidth, cfg.C.ArenaHeight
	}
	CreateSpace(ecs, int(math.Ceil(width)), int(math.Ceil(height)), 1, 1)
	if session, ok := components.Session.First(ecs.World); ok {
		s := components.Session.Get(session)
		s.ArenaWidth, s.ArenaHeight = width, height
	}

	player := CreatePlayer(ecs, arena.PlayerSpawn.X, arena.PlayerSpawn.Y)
	CreateCamera(ecs, player)
	CreateHeartDisplay(ecs, player)

	for _, placement := range arena.Enemies {
		createPlacedEnemy(ecs, placement, player)
	}

	for _, zone := range arena.Spawners {
		CreateSpawner(ecs, behavior.Vec3{X: zone.Position.X, Y: zone.Position.Y}, zone.EnemyTypes)
	}
	return player
}

func createPlacedEnemy(ecs *ecs.ECS, placement leveldata.EnemyPlacement, player *donburi.Entry) {
	pos := behavior.Vec3{X: placement.Position.X, Y: placement.Position.Y}

	typeName := placement.Type
	if _, ok := cfg.EnemyType(typeName); !ok {
		log.Printf("Warning: unknown enemy type %q in level, using %q", typeName, cfg.Enemy.DefaultType)
		typeName = cfg.Enemy.DefaultType
	}

	enemy, err := CreateEnemy(ecs, typeName, pos, player)
	if err != nil {
		log.Printf("Warning: failed to place enemy: %v", err)
		return
	}

	data := components.Enemy.Get(enemy)
	if placement.MovementMode != "" {
		if mode, err := behavior.ParseMovementMode(placement.MovementMode); err == nil {
			data.Movement.Mode = mode
		} else {
			log.Printf("Warning: %v", err)
		}
	}
	if placement.ShootMode != "" {
		if mode, err := behavior.ParseShootMode(placement.ShootMode); err == nil {
			data.ShootMode = mode
		} else {
			log.Printf("Warning: %v", err)
		}
	}
	if placement.HasScroll {
		data.Movement.ScrollDirection = behavior.Vec3{X: placement.ScrollX, Y: placement.ScrollY}
		data.Movement.Activate(pos)
	}
}
