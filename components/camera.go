package components

import (
	"github.com/automoto/starfall/shared/behavior"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Position behavior.Vec3
	Settings behavior.CameraSettings
	Target   Ref
}

var Camera = donburi.NewComponentType[CameraData]()
