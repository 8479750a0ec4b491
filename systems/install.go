package systems

import (
	"github.com/automoto/starfall/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Install registers the simulation systems in tick order and subscribes the
// event handlers. Hosts call it once per world, then drive the world with Step.
func Install(ecs *ecs.ECS) {
	RegisterEventHandlers(ecs.World)

	ecs.AddSystem(WithConsoleCheck(UpdateGuns))
	ecs.AddSystem(WithGameplayChecks(UpdatePlayer))
	ecs.AddSystem(WithConsoleCheck(UpdateEnemies))
	ecs.AddSystem(UpdateObjects)
	ecs.AddSystem(WithConsoleCheck(UpdateProjectiles))
	ecs.AddSystem(UpdateHealth)
	ecs.AddSystem(WithConsoleCheck(UpdateLifetimes))
	ecs.AddSystem(WithGameplayChecks(UpdateSpawners))
	ecs.AddSystem(UpdateCamera)
	ecs.AddSystem(UpdateHearts)
	ecs.AddSystem(ProcessEvents)
}

// RegisterEventHandlers subscribes the score keeping and HUD handlers.
func RegisterEventHandlers(w donburi.World) {
	components.EnemyDefeatedEvent.Subscribe(w, onEnemyDefeated)
	components.HealthChangedEvent.Subscribe(w, onHealthChanged)
}

// ProcessEvents delivers the events published during this tick.
func ProcessEvents(ecs *ecs.ECS) {
	components.HealthChangedEvent.ProcessEvents(ecs.World)
	components.EnemyDefeatedEvent.ProcessEvents(ecs.World)
}
