package components

import (
	"image/color"

	"github.com/automoto/starfall/shared/behavior"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string // "Drone", "Scroller", "Turret" etc...
	ScoreValue int    // Added to the session score when defeated
	Movement   behavior.MovementState
	ShootMode  behavior.ShootMode
	Target     Ref // Entity to follow, usually the player
	TintColor  color.RGBA
}

var Enemy = donburi.NewComponentType[EnemyData]()
