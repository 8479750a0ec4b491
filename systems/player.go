package systems

import (
	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/shared/behavior"
	"github.com/automoto/starfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves the player from the input snapshot, turns it toward the
// pointer and fires its guns while the fire input is held.
func UpdatePlayer(ecs *ecs.ECS) {
	input := GetInput(ecs)
	dt := GetClock(ecs).Delta
	session := GetSession(ecs)

	var players []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		players = append(players, e)
	})

	for _, e := range players {
		player := components.Player.Get(e)
		tr := components.Transform.Get(e)

		move := behavior.Vec3{X: input.Move.X, Y: input.Move.Y}
		if move.Magnitude() > 1 {
			move = move.Normalized()
		}
		if dt > 0 {
			tr.Position = tr.Position.Add(move.Scale(player.MoveSpeed * dt))
		}
		tr.Position = clampToArena(tr.Position, session)

		aim := input.Pointer.Sub(tr.Position).WithZ(0)
		if aim.Magnitude() > 0 {
			tr.Rotation = behavior.SignedAngle(behavior.Down, aim, behavior.Forward)
		}

		if input.Fire {
			behavior.TriggerEmitters(behavior.ShootAll, gunEmitters(ecs, e))
		}
	}
}

func clampToArena(pos behavior.Vec3, session *components.SessionData) behavior.Vec3 {
	if session.ArenaWidth > 0 {
		pos.X = clamp(pos.X, 0, session.ArenaWidth)
	}
	if session.ArenaHeight > 0 {
		pos.Y = clamp(pos.Y, 0, session.ArenaHeight)
	}
	return pos
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
