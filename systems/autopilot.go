package systems

import (
	"math"

	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/shared/behavior"
	"github.com/automoto/starfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// autopilotWeave is the period, in seconds, of the autopilot's side to side strafe.
const autopilotWeave = 4.0

// UpdateAutopilot fills the input snapshot for an unattended player: it
// strafes side to side, aims at the nearest enemy and fires whenever one is
// alive. Used by the headless runner in place of a human.
// Must run BEFORE the systems installed by Install.
func UpdateAutopilot(e *ecs.ECS) {
	input := GetInput(e)
	clock := GetClock(e)

	player, ok := components.Player.First(e.World)
	if !ok {
		*input = components.InputData{}
		return
	}
	pos := components.Transform.Get(player).Position

	input.Move = behavior.Vec3{X: math.Sin(clock.Elapsed * 2 * math.Pi / autopilotWeave)}
	input.Fire = false

	nearest := math.Inf(1)
	tags.Enemy.Each(e.World, func(enemy *donburi.Entry) {
		enemyPos := components.Transform.Get(enemy).Position
		if d := enemyPos.Distance(pos); d < nearest {
			nearest = d
			input.Pointer = enemyPos
			input.Fire = true
		}
	})
}
