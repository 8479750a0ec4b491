package components

import (
	cfg "github.com/automoto/starfall/config"
	"github.com/yohamta/donburi"
)

// GunData is a weapon emitter mounted on a ship. Cooldown and ammo are kept
// here; the owner only asks it to fire.
type GunData struct {
	Config     cfg.GunConfig
	Team       Team
	Cooldown   float64 // Seconds until the gun can fire again
	Ammo       int     // Remaining rounds, -1 = unlimited
	ShotsFired int
}

var Gun = donburi.NewComponentType[GunData]()
