package systems

import (
	"testing"

	"github.com/automoto/starfall/components"
	cfg "github.com/automoto/starfall/config"
	"github.com/automoto/starfall/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const tolerance = 1e-9

// newTestECS returns a world with a session and a 40x24 collision space.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(e, 1)
	factory.CreateSpace(e, 40, 24, 1, 1)
	RegisterEventHandlers(e.World)
	return e
}

func count(w donburi.World, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w)
}

func setDelta(e *ecs.ECS, dt float64) {
	GetClock(e).Delta = dt
}

func alive(e *ecs.ECS, entry *donburi.Entry) bool {
	return e.World.Valid(entry.Entity())
}

func firstChild(t *testing.T, entry *donburi.Entry) donburi.Entity {
	t.Helper()
	children := components.Children.Get(entry).Entities
	if len(children) == 0 {
		t.Fatal("entity has no children")
	}
	return children[0]
}
