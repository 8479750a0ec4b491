// Package console implements the developer console's command table. Commands
// are registered explicitly; the console never discovers them at runtime.
package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/automoto/starfall/shared/behavior"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidUse     = errors.New("invalid use")
)

// Host is the game the console drives.
type Host interface {
	SceneNames() ([]string, error)
	SpawnEnemy(typeName string, pos *behavior.Vec3) error
	Score() (score, defeated int)
	KillAll() int
	ClearOutput()
}

// Command is one console command.
type Command interface {
	Name() string
	Matches(name string) bool
	Help() string
	// Run executes the command. Returning ErrInvalidUse makes the registry
	// print the command's help.
	Run(h Host, args []string) (string, error)
}

type Registry struct {
	commands []Command
}

// NewRegistry builds a registry from commands in the order given.
func NewRegistry(commands ...Command) *Registry {
	return &Registry{commands: commands}
}

// DefaultRegistry returns every built-in command.
func DefaultRegistry() *Registry {
	r := NewRegistry(
		ListScenes{},
		Spawn{},
		Score{},
		KillAll{},
		Clear{},
	)
	r.Register(Help{registry: r})
	return r
}

func (r *Registry) Register(c Command) {
	r.commands = append(r.commands, c)
}

func (r *Registry) Commands() []Command {
	return r.commands
}

// Lookup returns the first command matching name.
func (r *Registry) Lookup(name string) (Command, bool) {
	for _, c := range r.commands {
		if c.Matches(name) {
			return c, true
		}
	}
	return nil, false
}

// Execute splits line on whitespace and runs the command named by the first
// token. Misuse returns the invalid-use banner followed by the command's help.
func (r *Registry) Execute(h Host, line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	cmd, ok := r.Lookup(fields[0])
	if !ok {
		err := fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
		return fmt.Sprintf("Unknown command |%s|, try Help", fields[0]), err
	}

	out, err := cmd.Run(h, fields[1:])
	if errors.Is(err, ErrInvalidUse) {
		return InvalidUse(cmd), err
	}
	if err != nil {
		return fmt.Sprintf("%s failed: %v", cmd.Name(), err), err
	}
	return out, nil
}

// InvalidUse formats the usage error shown when a command is misused.
func InvalidUse(c Command) string {
	return fmt.Sprintf("Invalid Use of command |%s|\n%s", c.Name(), c.Help())
}
