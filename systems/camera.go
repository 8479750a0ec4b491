package systems

import (
	"github.com/automoto/starfall/components"
	cfg "github.com/automoto/starfall/config"
	"github.com/automoto/starfall/shared/behavior"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera frames each camera's target, leaning toward the pointer.
func UpdateCamera(ecs *ecs.ECS) {
	pointer := GetInput(ecs).Pointer

	components.Camera.Each(ecs.World, func(e *donburi.Entry) {
		camera := components.Camera.Get(e)
		camera.Position = behavior.ComputeCameraPosition(
			camera.Settings,
			camera.Position,
			targetPosition(ecs.World, camera.Target),
			pointer,
		)
	})
}

// ApplyCameraConfig copies the configured framing settings onto every
// camera. Hosts call it after config overrides are reloaded.
func ApplyCameraConfig(ecs *ecs.ECS) {
	settings := behavior.CameraSettings{
		Mode:           cfg.Camera.Mode,
		TrackingFactor: cfg.Camera.TrackingFactor,
		MaxOffset:      cfg.Camera.MaxOffset,
		FixedDepth:     cfg.Camera.FixedDepth,
	}.Sanitized()

	components.Camera.Each(ecs.World, func(e *donburi.Entry) {
		components.Camera.Get(e).Settings = settings
	})
}

// CameraPosition returns the first camera's position.
func CameraPosition(ecs *ecs.ECS) (behavior.Vec3, bool) {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return behavior.Vec3{}, false
	}
	return components.Camera.Get(entry).Position, true
}
