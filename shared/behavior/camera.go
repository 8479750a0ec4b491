package behavior

import (
	"fmt"
	"math"
)

// CameraMode selects how the camera frames its target.
type CameraMode int

const (
	// Locked never reacts to the target or the pointer.
	Locked CameraMode = iota
	// Overhead snaps onto the target every tick.
	Overhead
	// Free sits between the target and the pointer, within MaxOffset of the target.
	Free
)

var cameraModeNames = map[CameraMode]string{
	Locked:   "Locked",
	Overhead: "Overhead",
	Free:     "Free",
}

func (m CameraMode) String() string {
	if name, ok := cameraModeNames[m]; ok {
		return name
	}
	return "unknown"
}

func ParseCameraMode(s string) (CameraMode, error) {
	for m, name := range cameraModeNames {
		if name == s {
			return m, nil
		}
	}
	return Locked, fmt.Errorf("unknown camera mode %q", s)
}

// MaxTrackingFactor caps how far Free mode leans toward the pointer.
const MaxTrackingFactor = 0.75

// CameraSettings are the framing parameters of one camera.
type CameraSettings struct {
	Mode           CameraMode
	TrackingFactor float64
	MaxOffset      float64
	FixedDepth     float64
}

// Sanitized returns a copy with TrackingFactor clamped to
// [0, MaxTrackingFactor] and a non-negative MaxOffset.
func (c CameraSettings) Sanitized() CameraSettings {
	if math.IsNaN(c.TrackingFactor) {
		c.TrackingFactor = 0
	}
	c.TrackingFactor = math.Max(0, math.Min(MaxTrackingFactor, c.TrackingFactor))
	if !(c.MaxOffset > 0) {
		c.MaxOffset = 0
	}
	return c
}

// ComputeCameraPosition returns the camera's next position. A nil target
// leaves the camera where it is.
func ComputeCameraPosition(settings CameraSettings, current Vec3, target *Vec3, pointer Vec3) Vec3 {
	if target == nil {
		return current
	}
	c := settings.Sanitized()

	var result Vec3
	switch c.Mode {
	case Overhead:
		result = *target
	case Free:
		desired := Lerp(*target, pointer, c.TrackingFactor)
		offset := desired.Sub(*target).ClampMagnitude(c.MaxOffset)
		result = target.Add(offset)
	default:
		result = current
	}
	return result.WithZ(c.FixedDepth)
}
