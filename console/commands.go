package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/starfall/shared/behavior"
)

// ListScenes prints the available levels as "index | name".
type ListScenes struct{}

func (ListScenes) Name() string             { return "ListScenes" }
func (ListScenes) Matches(name string) bool { return name == "ListScenes" }
func (ListScenes) Help() string {
	return "ListScenes\n  Lists every level with its index."
}

func (ListScenes) Run(h Host, args []string) (string, error) {
	if len(args) != 0 {
		return "", ErrInvalidUse
	}
	names, err := h.SceneNames()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d | %s", i, name)
	}
	return b.String(), nil
}

// Help prints the help of one command, or lists every command.
type Help struct {
	registry *Registry
}

func (Help) Name() string             { return "Help" }
func (Help) Matches(name string) bool { return name == "Help" }
func (Help) Help() string {
	return "Help [command]\n  Shows help for a command, or lists all commands."
}

func (c Help) Run(_ Host, args []string) (string, error) {
	switch len(args) {
	case 0:
		names := make([]string, 0, len(c.registry.Commands()))
		for _, cmd := range c.registry.Commands() {
			names = append(names, cmd.Name())
		}
		return "Commands: " + strings.Join(names, ", "), nil
	case 1:
		cmd, ok := c.registry.Lookup(args[0])
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
		}
		return cmd.Help(), nil
	default:
		return "", ErrInvalidUse
	}
}

// Spawn places an enemy, optionally at a given world position.
type Spawn struct{}

func (Spawn) Name() string             { return "Spawn" }
func (Spawn) Matches(name string) bool { return name == "Spawn" }
func (Spawn) Help() string {
	return "Spawn <type> [x y]\n  Spawns an enemy of the given type, above the player unless a position is given."
}

func (Spawn) Run(h Host, args []string) (string, error) {
	var pos *behavior.Vec3
	switch len(args) {
	case 1:
	case 3:
		x, errX := strconv.ParseFloat(args[1], 64)
		y, errY := strconv.ParseFloat(args[2], 64)
		if errX != nil || errY != nil {
			return "", ErrInvalidUse
		}
		pos = &behavior.Vec3{X: x, Y: y}
	default:
		return "", ErrInvalidUse
	}

	if err := h.SpawnEnemy(args[0], pos); err != nil {
		return "", err
	}
	return "Spawned " + args[0], nil
}

// Score prints the session score.
type Score struct{}

func (Score) Name() string             { return "Score" }
func (Score) Matches(name string) bool { return name == "Score" }
func (Score) Help() string {
	return "Score\n  Shows the score and the number of enemies defeated."
}

func (Score) Run(h Host, args []string) (string, error) {
	if len(args) != 0 {
		return "", ErrInvalidUse
	}
	score, defeated := h.Score()
	return fmt.Sprintf("Score: %d (%d defeated)", score, defeated), nil
}

// KillAll removes every enemy without awarding score.
type KillAll struct{}

func (KillAll) Name() string             { return "KillAll" }
func (KillAll) Matches(name string) bool { return name == "KillAll" }
func (KillAll) Help() string {
	return "KillAll\n  Removes every enemy. No score is awarded."
}

func (KillAll) Run(h Host, args []string) (string, error) {
	if len(args) != 0 {
		return "", ErrInvalidUse
	}
	return fmt.Sprintf("Removed %d enemies", h.KillAll()), nil
}

// Clear empties the console output.
type Clear struct{}

func (Clear) Name() string             { return "Clear" }
func (Clear) Matches(name string) bool { return name == "Clear" }
func (Clear) Help() string {
	return "Clear\n  Clears the console output."
}

func (Clear) Run(h Host, args []string) (string, error) {
	if len(args) != 0 {
		return "", ErrInvalidUse
	}
	h.ClearOutput()
	return "", nil
}
