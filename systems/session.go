package systems

import (
	"math/rand"

	"github.com/automoto/starfall/components"
	cfg "github.com/automoto/starfall/config"
	"github.com/automoto/starfall/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSession returns the singleton session entry, creating it if needed.
func GetOrCreateSession(ecs *ecs.ECS) *donburi.Entry {
	if entry, ok := components.Session.First(ecs.World); ok {
		return entry
	}
	return factory.CreateSession(ecs, cfg.Debug.RandSeed)
}

func GetSession(ecs *ecs.ECS) *components.SessionData {
	return components.Session.Get(GetOrCreateSession(ecs))
}

// GetClock returns the tick clock. Its Rand is always usable.
func GetClock(ecs *ecs.ECS) *components.ClockData {
	clock := components.Clock.Get(GetOrCreateSession(ecs))
	if clock.Rand == nil {
		clock.Rand = rand.New(rand.NewSource(cfg.Debug.RandSeed))
	}
	return clock
}

func GetInput(ecs *ecs.ECS) *components.InputData {
	return components.Input.Get(GetOrCreateSession(ecs))
}

// Step advances the world by dt seconds and runs every system once.
// Negative or NaN deltas are passed through as zero.
func Step(ecs *ecs.ECS, dt float64) {
	clock := GetClock(ecs)
	if !(dt > 0) {
		dt = 0
	}
	clock.Delta = dt
	clock.Elapsed += dt
	clock.Tick++
	ecs.Update()
}

// WithGameplayChecks wraps a system to skip execution when the game is over
// or the console is open.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetSession(e).GameOver || IsConsoleOpen(e) {
			return
		}
		system(e)
	}
}

// WithConsoleCheck wraps a system to skip execution while the console is open.
func WithConsoleCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsConsoleOpen(e) {
			return
		}
		system(e)
	}
}
