package components

import (
	"math/rand"

	"github.com/automoto/starfall/shared/behavior"
	"github.com/yohamta/donburi"
)

// SessionData is the run's score keeping. There is one per world.
type SessionData struct {
	Score           int
	EnemiesDefeated int
	GameOver        bool
	Quitting        bool // Set while the world is being torn down

	ArenaWidth  float64 // World units; the player is kept inside when set
	ArenaHeight float64
}

var Session = donburi.NewComponentType[SessionData]()

// ClockData carries the tick delta supplied by the host loop. There is one per world.
type ClockData struct {
	Delta   float64 // seconds
	Elapsed float64
	Tick    int64
	Rand    *rand.Rand
}

var Clock = donburi.NewComponentType[ClockData]()

// InputData is the host's per-tick input snapshot. Move is in [-1, 1] per
// axis; Pointer is the look position in world coordinates.
type InputData struct {
	Move    behavior.Vec3
	Pointer behavior.Vec3
	Fire    bool
}

var Input = donburi.NewComponentType[InputData]()
