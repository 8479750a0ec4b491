package factory

import (
	"github.com/automoto/starfall/archetypes"
	"github.com/automoto/starfall/components"
	cfg "github.com/automoto/starfall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHeartDisplay creates a health display tracking the given entity.
func CreateHeartDisplay(ecs *ecs.ECS, tracked *donburi.Entry) *donburi.Entry {
	hud := archetypes.HeartDisplay.Spawn(ecs)

	data := components.HeartDisplayData{
		Size:    cfg.UI.HeartSize,
		Spacing: cfg.UI.HeartSpacing,
		Dirty:   true,
	}
	if tracked != nil {
		data.Tracked = components.RefTo(tracked.Entity())
	}
	components.HeartDisplay.SetValue(hud, data)
	return hud
}

func CreateConsole(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Console.Spawn(ecs)
}
