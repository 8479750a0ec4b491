package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Gun        = donburi.NewTag().SetName("Gun")
	Projectile = donburi.NewTag().SetName("Projectile")
	Spawner    = donburi.NewTag().SetName("Spawner")
)

// Resolv tags for hit detection
const (
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvProjectile = "Projectile"
)
