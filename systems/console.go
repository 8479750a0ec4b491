package systems

import (
	"log"
	"strings"

	"github.com/automoto/starfall/components"
	cfg "github.com/automoto/starfall/config"
	"github.com/automoto/starfall/console"
	"github.com/automoto/starfall/shared/behavior"
	"github.com/automoto/starfall/systems/factory"
	"github.com/automoto/starfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// maxConsoleHistory bounds the lines kept in the console output.
const maxConsoleHistory = 50

// spawnHeight is how far above the player Spawn places enemies by default.
const spawnHeight = 6

// ConsoleHost lets console commands act on a world.
type ConsoleHost struct {
	ecs        *ecs.ECS
	sceneNames func() ([]string, error)
}

func NewConsoleHost(ecs *ecs.ECS, sceneNames func() ([]string, error)) *ConsoleHost {
	return &ConsoleHost{ecs: ecs, sceneNames: sceneNames}
}

func (h *ConsoleHost) SceneNames() ([]string, error) {
	if h.sceneNames == nil {
		return nil, nil
	}
	return h.sceneNames()
}

func (h *ConsoleHost) SpawnEnemy(typeName string, pos *behavior.Vec3) error {
	at := behavior.Vec3{X: cfg.C.ArenaWidth / 2, Y: cfg.C.ArenaHeight / 2}
	if pos != nil {
		at = *pos
	} else if player, ok := components.Player.First(h.ecs.World); ok {
		at = components.Transform.Get(player).Position.Add(behavior.Vec3{Y: spawnHeight})
	}
	_, err := factory.CreateEnemy(h.ecs, typeName, at, nil)
	return err
}

func (h *ConsoleHost) Score() (int, int) {
	session := GetSession(h.ecs)
	return session.Score, session.EnemiesDefeated
}

func (h *ConsoleHost) KillAll() int {
	return KillAllEnemies(h.ecs)
}

func (h *ConsoleHost) ClearOutput() {
	if c := getConsole(h.ecs); c != nil {
		c.History = nil
		c.Output = ""
	}
}

// KillAllEnemies removes every enemy without awarding score and returns how
// many were removed.
func KillAllEnemies(ecs *ecs.ECS) int {
	var enemies []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})
	for _, e := range enemies {
		DestroyEntity(ecs, e, true)
	}
	return len(enemies)
}

func getConsole(ecs *ecs.ECS) *components.ConsoleData {
	entry, ok := components.Console.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Console.Get(entry)
}

func IsConsoleOpen(ecs *ecs.ECS) bool {
	c := getConsole(ecs)
	return c != nil && c.Open
}

// ToggleConsole opens or closes the console if the world has one.
func ToggleConsole(ecs *ecs.ECS) {
	if c := getConsole(ecs); c != nil {
		c.Open = !c.Open
	}
}

// SubmitConsoleInput runs a typed line through registry and records the
// line and its output in the console history.
func SubmitConsoleInput(ecs *ecs.ECS, registry *console.Registry, host console.Host, input string) {
	c := getConsole(ecs)
	if c == nil {
		return
	}
	line := strings.TrimSpace(input)
	if line == "" {
		return
	}

	out, err := registry.Execute(host, line)
	if err != nil {
		log.Printf("console: %v", err)
	}
	if err == nil && out == "" && c.History == nil {
		// Cleared
		return
	}

	c.History = append(c.History, "> "+line)
	if out != "" {
		c.History = append(c.History, strings.Split(out, "\n")...)
	}
	if len(c.History) > maxConsoleHistory {
		c.History = c.History[len(c.History)-maxConsoleHistory:]
	}
	c.Output = out
}
