package components

import "github.com/yohamta/donburi"

// LifetimeData destroys its entity once TimeAlive exceeds Lifetime.
type LifetimeData struct {
	Lifetime        float64 // seconds
	TimeAlive       float64
	DestroyChildren bool // Destroy mounted children too, otherwise detach them
}

var Lifetime = donburi.NewComponentType[LifetimeData]()
