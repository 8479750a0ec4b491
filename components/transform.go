package components

import (
	"github.com/automoto/starfall/shared/behavior"
	"github.com/yohamta/donburi"
)

type TransformData struct {
	behavior.Transform
}

var Transform = donburi.NewComponentType[TransformData]()
