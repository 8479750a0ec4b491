package core

import (
	"log"
	"sync"
	"time"
)

type GameLoop struct {
	server   *Server
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once

	// ReportEvery is how often the score is logged. Zero disables it.
	ReportEvery time.Duration
	// StopOnGameOver ends the loop once the player is defeated.
	StopOnGameOver bool

	lastReport time.Time
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		server:         server,
		tickRate:       tickRate,
		stopChan:       make(chan struct{}),
		ReportEvery:    5 * time.Second,
		StopOnGameOver: true,
	}
}

func (g *GameLoop) Run() {
	g.lastReport = time.Now()
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.finish("Game loop stopped")
			return
		case <-ticker.C:
			if done := g.tick(); done {
				g.finish("Game over, game loop stopped")
				return
			}
		}
	}
}

func (g *GameLoop) finish(msg string) {
	g.report()
	g.server.shutdown()
	log.Println(msg)
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) tick() bool {
	g.server.Step(1 / float64(g.tickRate))

	if g.ReportEvery > 0 && time.Since(g.lastReport) >= g.ReportEvery {
		g.lastReport = time.Now()
		g.report()
	}
	return g.StopOnGameOver && g.server.Snapshot().GameOver
}

func (g *GameLoop) report() {
	snap := g.server.Snapshot()
	log.Printf("tick %d (%.1fs): score %d, %d defeated, %d enemies alive",
		snap.Tick, snap.Elapsed, snap.Score, snap.Defeated, snap.Enemies)
}
