package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/starfall/assets"
	"github.com/automoto/starfall/components"
	cfg "github.com/automoto/starfall/config"
	"github.com/automoto/starfall/console"
	"github.com/automoto/starfall/render"
	"github.com/automoto/starfall/systems"
	"github.com/automoto/starfall/systems/factory"
	"github.com/automoto/starfall/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene plays one arena.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	level        string
	watcher      *cfg.Watcher
	registry     *console.Registry
	host         *systems.ConsoleHost
	consoleUI    *ui.ConsoleUI
	once         sync.Once
}

// NewArenaScene creates a scene for the named level. watcher may be nil.
func NewArenaScene(sc SceneChanger, level string, watcher *cfg.Watcher) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, level: level, watcher: watcher}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	as.reloadConfig()
	as.updateConsole()

	session := systems.GetSession(as.ecs)
	if session.GameOver && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		session.Quitting = true
		as.sceneChanger.ChangeScene(NewArenaScene(as.sceneChanger, as.level, as.watcher))
		return
	}

	if !systems.IsConsoleOpen(as.ecs) {
		*systems.GetInput(as.ecs) = readInput(render.ViewFor(as.ecs))
	}
	systems.Step(as.ecs, 1/float64(ebiten.TPS()))
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
	if as.consoleUI != nil {
		as.consoleUI.Draw(screen)
	}
}

func (as *ArenaScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(e, cfg.Debug.RandSeed)
	systems.Install(e)

	e.AddRenderer(render.LayerWorld, render.DrawArena)
	e.AddRenderer(render.LayerWorld, render.DrawProjectiles)
	e.AddRenderer(render.LayerWorld, render.DrawShips)
	e.AddRenderer(render.LayerWorld, render.DrawHitboxes)
	e.AddRenderer(render.LayerHUD, render.DrawHearts)
	e.AddRenderer(render.LayerHUD, render.DrawScore)
	e.AddRenderer(render.LayerHUD, render.DrawGameOver)

	as.ecs = e

	factory.CreateArena(e, assets.MustLoadArena(as.level))

	if cfg.Debug.Console {
		factory.CreateConsole(e)
		as.registry = console.DefaultRegistry()
		as.host = systems.NewConsoleHost(e, assets.LevelNames)
		as.consoleUI = ui.NewConsoleUI(func(line string) {
			systems.SubmitConsoleInput(e, as.registry, as.host, line)
		})
	}
}

func (as *ArenaScene) updateConsole() {
	if as.consoleUI == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackquote) {
		systems.ToggleConsole(as.ecs)
	}

	if entry, ok := components.Console.First(as.ecs.World); ok {
		c := components.Console.Get(entry)
		as.consoleUI.Sync(c.Open, c.History)
	}
	as.consoleUI.Update()
}

// reloadConfig applies the override file when the watcher reports a change.
func (as *ArenaScene) reloadConfig() {
	if as.watcher == nil {
		return
	}
	select {
	case err := <-as.watcher.Errors:
		log.Printf("Warning: config watcher: %v", err)
	default:
	}

	path := as.watcher.Poll()
	if path == "" {
		return
	}
	if err := cfg.ApplyFile(path); err != nil {
		log.Printf("Warning: config reload: %v", err)
		return
	}
	systems.ApplyCameraConfig(as.ecs)
	log.Printf("Reloaded config overrides from %s", path)
}
