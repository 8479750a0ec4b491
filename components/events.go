package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EnemyDefeated is published just before a defeated enemy is removed, unless
// the game is already over.
type EnemyDefeated struct {
	Entity     donburi.Entity
	TypeName   string
	ScoreValue int
}

// HealthChanged is published whenever an entity's health changes.
type HealthChanged struct {
	Entity  donburi.Entity
	Current int
	Max     int
}

var EnemyDefeatedEvent = events.NewEventType[EnemyDefeated]()
var HealthChangedEvent = events.NewEventType[HealthChanged]()
