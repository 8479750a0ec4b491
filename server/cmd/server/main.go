package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	cfg "github.com/automoto/starfall/config"
	"github.com/automoto/starfall/server/core"
)

func main() {
	tickRate := flag.Int("tickrate", cfg.C.TPS, "Simulation tick rate (updates per second)")
	level := flag.String("level", cfg.Level.Default, "Arena to run")
	assetsDir := flag.String("assets", "", "Directory holding levels/*.tmx (empty = embedded levels)")
	configPath := flag.String("config", "", "Optional YAML override file")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	report := flag.Duration("report", 5*time.Second, "Score log interval (0 = off)")
	duration := flag.Duration("duration", 0, "Stop after this long (0 = run until game over or signal)")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.ApplyFile(*configPath); err != nil {
			log.Fatalf("Failed to load config overrides: %v", err)
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	cfg.Debug.Headless = true
	cfg.Debug.RandSeed = *seed

	arena, err := core.LoadLevel(core.LevelSource(*assetsDir), *level)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	server := core.NewServer(arena, *tickRate, *seed)
	server.Loop().ReportEvery = *report

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		server.Stop()
	}()

	if *duration > 0 {
		time.AfterFunc(*duration, server.Stop)
	}

	log.Printf("Starting headless run of %q (tick rate: %d/s, seed: %d)", *level, *tickRate, *seed)
	server.Start()

	snap := server.Snapshot()
	log.Printf("Final score %d, %d enemies defeated in %.1fs", snap.Score, snap.Defeated, snap.Elapsed)
}
