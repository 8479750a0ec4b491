package core

import (
	"sync"

	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/shared/leveldata"
	"github.com/automoto/starfall/systems"
	"github.com/automoto/starfall/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Snapshot is a copy of the session state safe to read from other goroutines.
type Snapshot struct {
	Tick     int64
	Elapsed  float64
	Score    int
	Defeated int
	Enemies  int
	GameOver bool
}

// Server runs an arena without a window. The player is flown by the
// autopilot.
type Server struct {
	ecs  *ecs.ECS
	loop *GameLoop

	mu       sync.RWMutex
	snapshot Snapshot
}

// NewServer builds a world for arena ticking tickRate times per second.
func NewServer(arena *leveldata.Arena, tickRate int, seed int64) *Server {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(e, seed)

	e.AddSystem(systems.UpdateAutopilot)
	systems.Install(e)
	factory.CreateArena(e, arena)

	s := &Server{ecs: e}
	s.loop = NewGameLoop(s, tickRate)
	return s
}

// Start runs the game loop until Stop is called.
func (s *Server) Start() {
	s.loop.Run()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

// Loop exposes the game loop for tuning before Start.
func (s *Server) Loop() *GameLoop {
	return s.loop
}

// shutdown tears the world down. Runs on the loop goroutine.
func (s *Server) shutdown() {
	systems.GetSession(s.ecs).Quitting = true
	systems.KillAllEnemies(s.ecs)
}

// Step advances the simulation by dt seconds.
func (s *Server) Step(dt float64) {
	systems.Step(s.ecs, dt)

	session := systems.GetSession(s.ecs)
	clock := systems.GetClock(s.ecs)
	snap := Snapshot{
		Tick:     clock.Tick,
		Elapsed:  clock.Elapsed,
		Score:    session.Score,
		Defeated: session.EnemiesDefeated,
		GameOver: session.GameOver,
	}
	components.Enemy.Each(s.ecs.World, func(*donburi.Entry) {
		snap.Enemies++
	})

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
}

func (s *Server) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
