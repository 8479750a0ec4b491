package factory

import (
	"github.com/automoto/starfall/archetypes"
	"github.com/automoto/starfall/components"
	cfg "github.com/automoto/starfall/config"
	"github.com/automoto/starfall/shared/behavior"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera creates the camera framing target, starting on it.
func CreateCamera(ecs *ecs.ECS, target *donburi.Entry) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	data := components.CameraData{
		Settings: behavior.CameraSettings{
			Mode:           cfg.Camera.Mode,
			TrackingFactor: cfg.Camera.TrackingFactor,
			MaxOffset:      cfg.Camera.MaxOffset,
			FixedDepth:     cfg.Camera.FixedDepth,
		}.Sanitized(),
	}
	if target != nil {
		data.Target = components.RefTo(target.Entity())
		data.Position = components.Transform.Get(target).Position.WithZ(cfg.Camera.FixedDepth)
	}
	components.Camera.SetValue(camera, data)
	return camera
}
