package components

import (
	"github.com/automoto/starfall/shared/behavior"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Velocity behavior.Vec3 // World units per second
	Damage   int
	Team     Team
	Owner    Ref
}

var Projectile = donburi.NewComponentType[ProjectileData]()
