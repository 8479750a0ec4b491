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

// CreatePlayer spawns the player ship at (x, y) with its gun mounted.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Transform.SetValue(player, components.TransformData{
		Transform: behavior.Transform{Position: behavior.Vec3{X: x, Y: y}},
	})
	newObject(ecs, player, x, y, cfg.Player.Size, tags.ResolvPlayer)

	components.Player.SetValue(player, components.PlayerData{
		MoveSpeed: cfg.Player.MoveSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current:       cfg.Player.Health,
		Max:           cfg.Player.Health,
		InvulnSeconds: cfg.Player.InvulnSeconds,
	})

	CreateGun(ecs, player, cfg.Player.Gun, components.TeamPlayer)
	return player
}
