package config

import (
	"fmt"
	"os"

	"github.com/automoto/starfall/shared/behavior"
	"gopkg.in/yaml.v3"
)

// Overrides is the optional YAML file that tweaks the defaults at startup
// and on hot reload. Absent fields leave the current value alone.
type Overrides struct {
	Camera   *CameraOverride          `yaml:"camera"`
	Spawner  *SpawnerOverride         `yaml:"spawner"`
	Player   *PlayerOverride          `yaml:"player"`
	Lifetime *LifetimeOverride        `yaml:"lifetime"`
	Enemies  map[string]EnemyOverride `yaml:"enemies"`
}

type CameraOverride struct {
	Mode           *string  `yaml:"mode"`
	TrackingFactor *float64 `yaml:"tracking_factor"`
	MaxOffset      *float64 `yaml:"max_offset"`
	FixedDepth     *float64 `yaml:"fixed_depth"`
}

type SpawnerOverride struct {
	Interval   *float64 `yaml:"interval"`
	RangeX     *float64 `yaml:"range_x"`
	RangeY     *float64 `yaml:"range_y"`
	Infinite   *bool    `yaml:"infinite"`
	MaxEnemies *int     `yaml:"max_enemies"`
	EnemyTypes []string `yaml:"enemy_types"`
}

type PlayerOverride struct {
	Health    *int     `yaml:"health"`
	MoveSpeed *float64 `yaml:"move_speed"`
}

type LifetimeOverride struct {
	Default         *float64 `yaml:"default"`
	DestroyChildren *bool    `yaml:"destroy_children"`
}

type EnemyOverride struct {
	MovementMode    *string    `yaml:"movement_mode"`
	ShootMode       *string    `yaml:"shoot_mode"`
	MoveSpeed       *float64   `yaml:"move_speed"`
	FollowRange     *float64   `yaml:"follow_range"`
	ScoreValue      *int       `yaml:"score_value"`
	Health          *int       `yaml:"health"`
	ScrollDirection *[]float64 `yaml:"scroll_direction"`
}

// LoadOverrides reads and parses an override file.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return ParseOverrides(data)
}

// ParseOverrides parses override YAML.
func ParseOverrides(data []byte) (*Overrides, error) {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("config: unmarshal overrides: %w", err)
	}
	return &o, nil
}

// Apply writes the overrides onto the global configuration. Nothing is
// changed if any value fails to validate.
func (o *Overrides) Apply() error {
	if o == nil {
		return nil
	}

	camera := Camera
	if c := o.Camera; c != nil {
		if c.Mode != nil {
			mode, err := behavior.ParseCameraMode(*c.Mode)
			if err != nil {
				return fmt.Errorf("config: camera: %w", err)
			}
			camera.Mode = mode
		}
		setFloat(&camera.TrackingFactor, c.TrackingFactor)
		setFloat(&camera.MaxOffset, c.MaxOffset)
		setFloat(&camera.FixedDepth, c.FixedDepth)
	}

	types := make(map[string]EnemyTypeConfig, len(Enemy.Types))
	for name, t := range Enemy.Types {
		types[name] = t
	}
	for name, e := range o.Enemies {
		t, ok := types[name]
		if !ok {
			return fmt.Errorf("config: enemies: unknown enemy type %q", name)
		}
		if err := e.apply(&t); err != nil {
			return fmt.Errorf("config: enemies.%s: %w", name, err)
		}
		types[name] = t
	}

	spawner := Spawner
	if s := o.Spawner; s != nil {
		setFloat(&spawner.Interval, s.Interval)
		setFloat(&spawner.RangeX, s.RangeX)
		setFloat(&spawner.RangeY, s.RangeY)
		if s.Infinite != nil {
			spawner.Infinite = *s.Infinite
		}
		if s.MaxEnemies != nil {
			spawner.MaxEnemies = *s.MaxEnemies
		}
		if s.EnemyTypes != nil {
			for _, name := range s.EnemyTypes {
				if _, ok := types[name]; !ok {
					return fmt.Errorf("config: spawner: unknown enemy type %q", name)
				}
			}
			spawner.EnemyTypes = append([]string(nil), s.EnemyTypes...)
		}
	}

	player := Player
	if p := o.Player; p != nil {
		if p.Health != nil {
			player.Health = *p.Health
		}
		setFloat(&player.MoveSpeed, p.MoveSpeed)
	}

	lifetime := Lifetime
	if l := o.Lifetime; l != nil {
		setFloat(&lifetime.Default, l.Default)
		if l.DestroyChildren != nil {
			lifetime.DestroyChildren = *l.DestroyChildren
		}
	}

	Camera = camera
	Enemy.Types = types
	Spawner = spawner
	Player = player
	Lifetime = lifetime
	return nil
}

func (e EnemyOverride) apply(t *EnemyTypeConfig) error {
	if e.MovementMode != nil {
		mode, err := behavior.ParseMovementMode(*e.MovementMode)
		if err != nil {
			return err
		}
		t.MovementMode = mode
	}
	if e.ShootMode != nil {
		mode, err := behavior.ParseShootMode(*e.ShootMode)
		if err != nil {
			return err
		}
		t.ShootMode = mode
	}
	if e.ScrollDirection != nil {
		d := *e.ScrollDirection
		if len(d) < 2 || len(d) > 3 {
			return fmt.Errorf("scroll_direction needs 2 or 3 components, got %d", len(d))
		}
		t.ScrollDirection = behavior.Vec3{X: d[0], Y: d[1]}
		if len(d) == 3 {
			t.ScrollDirection.Z = d[2]
		}
	}
	setFloat(&t.MoveSpeed, e.MoveSpeed)
	setFloat(&t.FollowRange, e.FollowRange)
	if e.ScoreValue != nil {
		t.ScoreValue = *e.ScoreValue
	}
	if e.Health != nil {
		t.Health = *e.Health
	}
	return nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// ApplyFile loads the override file at path and applies it.
func ApplyFile(path string) error {
	o, err := LoadOverrides(path)
	if err != nil {
		return err
	}
	if err := o.Apply(); err != nil {
		return fmt.Errorf("config: apply %s: %w", path, err)
	}
	return nil
}
