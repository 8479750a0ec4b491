package main

import (
	"flag"
	"image"
	"log"
	"time"

	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/fonts"
	"github.com/automoto/starfall/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(level string, watcher *config.Watcher) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: using the built-in font: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewArenaScene(g, level, watcher)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	level := flag.String("level", config.Level.Default, "Arena to play")
	configPath := flag.String("config", "", "Optional YAML override file, reloaded on change")
	console := flag.Bool("console", false, "Enable the developer console (toggle with `)")
	hitboxes := flag.Bool("hitboxes", false, "Draw collision boxes")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	flag.Parse()

	config.Debug.Console = *console
	config.Debug.Hitboxes = *hitboxes
	config.Debug.RandSeed = *seed
	if config.Debug.RandSeed == 0 {
		config.Debug.RandSeed = time.Now().UnixNano()
	}

	var watcher *config.Watcher
	if *configPath != "" {
		if err := config.ApplyFile(*configPath); err != nil {
			log.Fatalf("Failed to load config overrides: %v", err)
		}
		w, err := config.NewWatcher(*configPath)
		if err != nil {
			log.Printf("Warning: config hot reload disabled: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Starfall")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(*level, watcher)); err != nil {
		log.Fatal(err)
	}
}
