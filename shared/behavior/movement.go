package behavior

import (
	"fmt"
	"math"
)

// MovementMode selects how an entity moves each tick.
type MovementMode int

const (
	NoMovement MovementMode = iota
	FollowTarget
	Scroll
)

var movementModeNames = map[MovementMode]string{
	NoMovement:   "NoMovement",
	FollowTarget: "FollowTarget",
	Scroll:       "Scroll",
}

func (m MovementMode) String() string {
	if name, ok := movementModeNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseMovementMode maps a mode name (as written in config and level files)
// to its MovementMode.
func ParseMovementMode(s string) (MovementMode, error) {
	for m, name := range movementModeNames {
		if name == s {
			return m, nil
		}
	}
	return NoMovement, fmt.Errorf("unknown movement mode %q", s)
}

// ScrollEpsilon is the distance under which an axis counts as having
// reached the scroll turn point.
const ScrollEpsilon = 1e-4

// Transform is an entity's position plus its planar rotation in degrees
// about the view axis.
type Transform struct {
	Position Vec3
	Rotation float64
}

// MovementState is the per-entity configuration and patrol bookkeeping.
type MovementState struct {
	Mode        MovementMode
	Speed       float64
	FollowRange float64

	ScrollDirection Vec3
	ScrollOrigin    Vec3
	ScrollTurnPoint Vec3
}

// Activate derives the patrol segment from the spawn point. It must be
// called once when the entity enters the world.
func (s *MovementState) Activate(spawn Vec3) {
	s.ScrollOrigin = spawn
	s.ScrollTurnPoint = spawn.Add(s.ScrollDirection)
}

// Movement is the output of one tick of the movement policy.
type Movement struct {
	Delta    Vec3
	Rotation float64
}

// ComputeMovement decides how far the entity moves this tick and which way
// it faces. target may be nil when there is nothing to follow. Scroll mode
// updates the patrol bookkeeping in s when a boundary is reached.
func ComputeMovement(s *MovementState, tr Transform, target *Vec3, dt float64) Movement {
	out := Movement{Rotation: tr.Rotation}
	if s == nil {
		return out
	}

	switch s.Mode {
	case FollowTarget:
		dir, ok := followDirection(s, tr.Position, target)
		if !ok {
			return out
		}
		out.Rotation = SignedAngle(Down, dir, Forward)
		if dt > 0 && s.Speed > 0 {
			out.Delta = dir.Scale(s.Speed * dt)
		}
	case Scroll:
		out.Rotation = 0
		if dt > 0 && s.Speed > 0 {
			out.Delta = scrollStep(s, tr.Position, dt).Sub(tr.Position)
		}
	}
	return out
}

// followDirection returns the unit direction toward target when the target
// exists and is strictly inside the follow range. A target on top of the
// entity yields the zero vector, which faces the entity down with no movement.
func followDirection(s *MovementState, pos Vec3, target *Vec3) (Vec3, bool) {
	if target == nil {
		return Zero, false
	}
	toTarget := target.Sub(pos)
	if toTarget.Magnitude() >= s.FollowRange {
		return Zero, false
	}
	return toTarget.Normalized(), true
}

// scrollStep returns the entity's position after this tick. Axes that have
// reached the turn point are snapped onto it; once every axis has, the
// direction reverses and origin and turn point swap roles. The step is
// clamped so it never passes the turn point, which allows at most one
// reversal per tick.
func scrollStep(s *MovementState, pos Vec3, dt float64) Vec3 {
	if s.ScrollDirection.Normalized() == Zero {
		return pos
	}

	pos, reached := snapToTurnPoint(pos, s.ScrollTurnPoint, s.ScrollDirection)
	if reached {
		s.ScrollOrigin, s.ScrollTurnPoint = s.ScrollTurnPoint, s.ScrollOrigin
		s.ScrollDirection = s.ScrollDirection.Scale(-1)
	}

	step := s.ScrollDirection.Normalized().Scale(s.Speed * dt)
	remaining := s.ScrollTurnPoint.Sub(pos)
	if step.Magnitude() >= remaining.Magnitude() {
		return s.ScrollTurnPoint
	}
	return pos.Add(step)
}

func snapToTurnPoint(pos, turn, dir Vec3) (Vec3, bool) {
	overX := axisReached(turn.X-pos.X, dir.X)
	overY := axisReached(turn.Y-pos.Y, dir.Y)
	overZ := axisReached(turn.Z-pos.Z, dir.Z)
	if overX {
		pos.X = turn.X
	}
	if overY {
		pos.Y = turn.Y
	}
	if overZ {
		pos.Z = turn.Z
	}
	return pos, overX && overY && overZ
}

// axisReached reports whether the remaining distance on one axis is within
// epsilon or points against the travel direction on that axis.
func axisReached(remaining, dir float64) bool {
	if math.Abs(remaining) <= ScrollEpsilon {
		return true
	}
	return sign(remaining) != sign(dir)
}

// sign treats zero as positive.
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
