package behavior

import "fmt"

// ShootMode selects whether an entity fires its emitters.
type ShootMode int

const (
	ShootNone ShootMode = iota
	ShootAll
)

var shootModeNames = map[ShootMode]string{
	ShootNone: "None",
	ShootAll:  "ShootAll",
}

func (m ShootMode) String() string {
	if name, ok := shootModeNames[m]; ok {
		return name
	}
	return "unknown"
}

func ParseShootMode(s string) (ShootMode, error) {
	for m, name := range shootModeNames {
		if name == s {
			return m, nil
		}
	}
	return ShootNone, fmt.Errorf("unknown shoot mode %q", s)
}

// Emitter is anything that can be asked to fire once. Emitters keep their
// own cooldown and ammo bookkeeping and report refusal through the error.
type Emitter interface {
	Fire() error
}

// TriggerEmitters asks each emitter to fire exactly once, in order, and
// returns how many succeeded. A nil or failing emitter never stops the
// ones after it.
func TriggerEmitters(mode ShootMode, emitters []Emitter) int {
	if mode != ShootAll {
		return 0
	}
	fired := 0
	for _, e := range emitters {
		if e == nil {
			continue
		}
		if err := e.Fire(); err == nil {
			fired++
		}
	}
	return fired
}
