package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int

	InvulnSeconds   float64 // Granted after each hit
	InvulnRemaining float64
}

var Health = donburi.NewComponentType[HealthData]()

// DamageEventData is attached to an entity that was hit this tick and
// consumed by the health system.
type DamageEventData struct {
	Amount int
	Source Ref
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
