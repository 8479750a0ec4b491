package behavior

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func vecPtr(v Vec3) *Vec3 { return &v }

func TestComputeMovement_NonPositiveDtNeverMoves(t *testing.T) {
	target := vecPtr(Vec3{X: 3, Y: 4})
	for _, mode := range []MovementMode{NoMovement, FollowTarget, Scroll} {
		for _, dt := range []float64{0, -0.016, -10} {
			s := &MovementState{Mode: mode, Speed: 5, FollowRange: 20, ScrollDirection: Right}
			s.Activate(Zero)
			got := ComputeMovement(s, Transform{}, target, dt)
			assert.Equal(t, Zero, got.Delta, "mode %s dt %v", mode, dt)
		}
	}
}

func TestComputeMovement_NoMovementKeepsRotation(t *testing.T) {
	s := &MovementState{Mode: NoMovement, Speed: 5, FollowRange: 20}
	got := ComputeMovement(s, Transform{Rotation: 33}, vecPtr(Vec3{X: 1}), 1)
	assert.Equal(t, Zero, got.Delta)
	assert.Equal(t, 33.0, got.Rotation)
}

func TestComputeMovement_FollowRightward(t *testing.T) {
	s := &MovementState{Mode: FollowTarget, Speed: 5, FollowRange: 20}
	got := ComputeMovement(s, Transform{}, vecPtr(Vec3{X: 10}), 1)
	assert.InDelta(t, 5, got.Delta.X, tolerance)
	assert.InDelta(t, 0, got.Delta.Y, tolerance)
	assert.InDelta(t, 0, got.Delta.Z, tolerance)
	assert.InDelta(t, 90, got.Rotation, tolerance)
}

func TestComputeMovement_FollowRotationConvention(t *testing.T) {
	tests := []struct {
		name   string
		target Vec3
		want   float64
	}{
		{"down is reference", Vec3{Y: -1}, 0},
		{"right", Vec3{X: 1}, 90},
		{"left", Vec3{X: -1}, -90},
		{"up", Vec3{Y: 1}, 180},
		{"down-right", Vec3{X: 1, Y: -1}, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &MovementState{Mode: FollowTarget, Speed: 1, FollowRange: 10}
			got := ComputeMovement(s, Transform{}, vecPtr(tt.target), 0.1)
			assert.InDelta(t, tt.want, got.Rotation, 1e-6)
		})
	}
}

func TestComputeMovement_FollowRange(t *testing.T) {
	s := &MovementState{Mode: FollowTarget, Speed: 4, FollowRange: 10}
	from := Transform{Position: Vec3{X: 1, Y: 1}, Rotation: 12}

	atRange := ComputeMovement(s, from, vecPtr(Vec3{X: 11, Y: 1}), 0.5)
	assert.Equal(t, Zero, atRange.Delta)
	assert.Equal(t, 12.0, atRange.Rotation)

	outside := ComputeMovement(s, from, vecPtr(Vec3{X: 40, Y: -3}), 0.5)
	assert.Equal(t, Zero, outside.Delta)

	inside := ComputeMovement(s, from, vecPtr(Vec3{X: 4, Y: 5}), 0.5)
	assert.InDelta(t, 2, inside.Delta.Magnitude(), tolerance)
}

func TestComputeMovement_FollowDegradesWithoutTarget(t *testing.T) {
	s := &MovementState{Mode: FollowTarget, Speed: 4, FollowRange: 10}
	from := Transform{Position: Vec3{X: 2, Y: 2}, Rotation: 45}

	missing := ComputeMovement(s, from, nil, 1)
	assert.Equal(t, Zero, missing.Delta)
	assert.Equal(t, 45.0, missing.Rotation)

}

func TestComputeMovement_FollowTargetOnTopFacesDown(t *testing.T) {
	s := &MovementState{Mode: FollowTarget, Speed: 4, FollowRange: 10}
	from := Transform{Position: Vec3{X: 2, Y: 2}, Rotation: 45}

	onTop := ComputeMovement(s, from, vecPtr(from.Position), 1)
	assert.Equal(t, Zero, onTop.Delta)
	assert.Equal(t, 0.0, onTop.Rotation)
}

func TestComputeMovement_NilStateIsNoop(t *testing.T) {
	got := ComputeMovement(nil, Transform{Rotation: 7}, nil, 1)
	assert.Equal(t, Movement{Rotation: 7}, got)
}

func TestComputeMovement_ScrollPatrolsBetweenSpawnAndTurnPoint(t *testing.T) {
	s := &MovementState{Mode: Scroll, Speed: 3, ScrollDirection: Vec3{X: 2}}
	s.Activate(Zero)
	tr := Transform{Rotation: 30}

	var xs []float64
	for i := 0; i < 6; i++ {
		m := ComputeMovement(s, tr, nil, 0.5)
		assert.Equal(t, 0.0, m.Rotation)
		tr.Position = tr.Position.Add(m.Delta)
		tr.Rotation = m.Rotation
		xs = append(xs, tr.Position.X)
	}

	want := []float64{1.5, 2, 0.5, 0, 1.5, 2}
	require.Len(t, xs, len(want))
	for i := range want {
		assert.InDelta(t, want[i], xs[i], tolerance, "tick %d", i)
	}
}

func TestComputeMovement_ScrollReversalSwapsEndpoints(t *testing.T) {
	s := &MovementState{Mode: Scroll, Speed: 10, ScrollDirection: Vec3{X: 1}}
	s.Activate(Vec3{X: 5})

	pos := Vec3{X: 5}
	pos = pos.Add(ComputeMovement(s, Transform{Position: pos}, nil, 1).Delta)
	assert.Equal(t, Vec3{X: 6}, pos)
	assert.Equal(t, Vec3{X: 6}, s.ScrollTurnPoint)

	pos = pos.Add(ComputeMovement(s, Transform{Position: pos}, nil, 1).Delta)
	assert.Equal(t, Vec3{X: 5}, pos)
	assert.Equal(t, Vec3{X: -1}, s.ScrollDirection)
	assert.Equal(t, Vec3{X: 6}, s.ScrollOrigin)
	assert.Equal(t, Vec3{X: 5}, s.ScrollTurnPoint)
}

func TestComputeMovement_ScrollNeverLeavesSegment(t *testing.T) {
	dir := Vec3{X: 3, Y: -1}
	spawn := Vec3{X: -4, Y: 2, Z: 1}
	far := spawn.Add(dir)
	length := dir.Magnitude()

	s := &MovementState{Mode: Scroll, Speed: 7, ScrollDirection: dir}
	s.Activate(spawn)

	rng := rand.New(rand.NewSource(42))
	pos := spawn
	for i := 0; i < 20000; i++ {
		dt := rng.Float64() * 0.3
		pos = pos.Add(ComputeMovement(s, Transform{Position: pos}, nil, dt).Delta)

		require.LessOrEqual(t, pos.Distance(spawn), length+1e-6, "tick %d", i)
		require.LessOrEqual(t, pos.Distance(far), length+1e-6, "tick %d", i)
		require.InDelta(t, spawn.Z, pos.Z, tolerance)
	}
}

func TestComputeMovement_ScrollZeroDirectionStaysPut(t *testing.T) {
	s := &MovementState{Mode: Scroll, Speed: 3}
	s.Activate(Vec3{X: 1, Y: 1})
	got := ComputeMovement(s, Transform{Position: Vec3{X: 1, Y: 1}}, nil, 1)
	assert.Equal(t, Zero, got.Delta)
}

func TestSignedAngle_ZeroVector(t *testing.T) {
	assert.Equal(t, 0.0, SignedAngle(Down, Zero, Forward))
	assert.False(t, math.IsNaN(SignedAngle(Down, Vec3{Y: -1e-300}, Forward)))
}

func TestParseMovementMode(t *testing.T) {
	m, err := ParseMovementMode("Scroll")
	require.NoError(t, err)
	assert.Equal(t, Scroll, m)

	_, err = ParseMovementMode("Teleport")
	assert.Error(t, err)
	assert.Equal(t, "FollowTarget", FollowTarget.String())
}
