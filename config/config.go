package config

import (
	"image/color"

	"github.com/automoto/starfall/shared/behavior"
)

// GunConfig describes one weapon emitter mounted on a ship.
type GunConfig struct {
	OffsetX float64 // Muzzle offset from the owner, in world units, before rotation
	OffsetY float64

	Cooldown float64 // Seconds between shots
	Ammo     int     // Rounds available, -1 = unlimited

	ProjectileSpeed    float64 // World units per second
	ProjectileDamage   int
	ProjectileLifetime float64 // Seconds before the projectile is destroyed
	ProjectileSize     float64 // Square hitbox edge, world units
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name       string
	Health     int
	ScoreValue int
	Size       float64 // Square hitbox edge, world units

	// Movement
	MovementMode    behavior.MovementMode
	MoveSpeed       float64
	FollowRange     float64
	ScrollDirection behavior.Vec3
	Lifetime        float64 // Seconds before the enemy leaves the arena, 0 = stays

	// Shooting
	ShootMode behavior.ShootMode
	Guns      []GunConfig

	// Visual
	TintColor color.RGBA
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types       map[string]EnemyTypeConfig
	DefaultType string // Used when a requested type is unknown
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Health        int
	MoveSpeed     float64
	Size          float64
	InvulnSeconds float64
	Gun           GunConfig
}

// CameraConfig contains camera framing configuration
type CameraConfig struct {
	Mode           behavior.CameraMode
	TrackingFactor float64 // 0 = follow target, 0.75 = lean hardest toward the pointer
	MaxOffset      float64 // Max distance from the target, world units
	FixedDepth     float64
}

// SpawnerConfig contains random enemy spawner defaults
type SpawnerConfig struct {
	Interval   float64 // Seconds between spawns
	RangeX     float64 // Horizontal half-extent of the spawn area
	RangeY     float64 // Vertical half-extent of the spawn area
	Infinite   bool
	MaxEnemies int // Only used when Infinite is false
	EnemyTypes []string
}

// LifetimeConfig contains timed destroyer defaults
type LifetimeConfig struct {
	Default         float64 // Seconds
	DestroyChildren bool
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HeartSize        float64 // pixels
	HeartSpacing     float64 // pixels
	HeartMargin      float64 // pixels from the top-left corner
	HeartColor       color.RGBA
	HeartPopScale    float64
	HeartPopDuration float32 // seconds
	ScoreColor       color.RGBA
}

// ConsoleConfig contains developer console configuration values
type ConsoleConfig struct {
	MaxInput        int // Characters
	Lines           int // History lines shown while open
	Background      color.RGBA
	InputBackground color.RGBA
	TextColor       color.RGBA
}

// LevelConfig names the arena layouts
type LevelConfig struct {
	Dir     string // Directory of .tmx files inside the asset filesystem
	Default string // Level stem loaded at start
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Console  bool // Allow opening the developer console
	Hitboxes bool // Draw collision boxes
	RandSeed int64
	Headless bool
}

// Config holds general game configuration
type Config struct {
	Width         int
	Height        int
	TPS           int     // Simulation ticks per second
	PixelsPerUnit float64 // Screen pixels per world unit
	ArenaWidth    float64 // World units, used when a level does not specify its size
	ArenaHeight   float64
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Camera CameraConfig
var Spawner SpawnerConfig
var Lifetime LifetimeConfig
var UI UIConfig
var Console ConsoleConfig
var Level LevelConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	DarkSlate    = color.RGBA{R: 50, G: 50, B: 70, A: 255}
	Gray         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

func init() {
	Reset()
}

// Reset restores every configuration value to its default.
func Reset() {
	C = &Config{
		Width:         960,
		Height:        540,
		TPS:           60,
		PixelsPerUnit: 32,
		ArenaWidth:    40,
		ArenaHeight:   24,
	}

	Player = PlayerConfig{
		Health:        3,
		MoveSpeed:     6,
		Size:          0.8,
		InvulnSeconds: 1,
		Gun: GunConfig{
			OffsetY:            -0.5,
			Cooldown:           0.2,
			Ammo:               -1,
			ProjectileSpeed:    14,
			ProjectileDamage:   1,
			ProjectileLifetime: 2,
			ProjectileSize:     0.2,
		},
	}

	enemyGun := GunConfig{
		OffsetY:            -0.6,
		Cooldown:           1.5,
		Ammo:               -1,
		ProjectileSpeed:    7,
		ProjectileDamage:   1,
		ProjectileLifetime: 5,
		ProjectileSize:     0.25,
	}

	Enemy = EnemyConfig{
		DefaultType: "Drone",
		Types: map[string]EnemyTypeConfig{
			"Drone": {
				Name:         "Drone",
				Health:       1,
				ScoreValue:   5,
				Size:         0.8,
				MovementMode: behavior.FollowTarget,
				MoveSpeed:    5,
				FollowRange:  10,
				ShootMode:    behavior.ShootAll,
				Guns:         []GunConfig{enemyGun},
				TintColor:    LightRed,
			},
			"Scroller": {
				Name:            "Scroller",
				Health:          2,
				ScoreValue:      10,
				Size:            1,
				MovementMode:    behavior.Scroll,
				MoveSpeed:       3,
				FollowRange:     10,
				ScrollDirection: behavior.Vec3{X: 6},
				Lifetime:        30,
				ShootMode:       behavior.ShootAll,
				Guns: []GunConfig{
					{OffsetX: -0.4, OffsetY: -0.6, Cooldown: 2, Ammo: -1, ProjectileSpeed: 6, ProjectileDamage: 1, ProjectileLifetime: 5, ProjectileSize: 0.25},
					{OffsetX: 0.4, OffsetY: -0.6, Cooldown: 2, Ammo: -1, ProjectileSpeed: 6, ProjectileDamage: 1, ProjectileLifetime: 5, ProjectileSize: 0.25},
				},
				TintColor: Orange,
			},
			"Turret": {
				Name:         "Turret",
				Health:       3,
				ScoreValue:   15,
				Size:         1.2,
				MovementMode: behavior.NoMovement,
				FollowRange:  10,
				ShootMode:    behavior.ShootAll,
				Guns:         []GunConfig{{OffsetY: -0.7, Cooldown: 0.8, Ammo: 30, ProjectileSpeed: 9, ProjectileDamage: 1, ProjectileLifetime: 4, ProjectileSize: 0.2}},
				TintColor:    Purple,
			},
			"Rock": {
				Name:         "Rock",
				Health:       2,
				ScoreValue:   1,
				Size:         1,
				MovementMode: behavior.FollowTarget,
				MoveSpeed:    2,
				FollowRange:  30,
				ShootMode:    behavior.ShootNone,
				TintColor:    White,
			},
		},
	}

	Camera = CameraConfig{
		Mode:           behavior.Free,
		TrackingFactor: 0.5,
		MaxOffset:      5,
		FixedDepth:     -10,
	}

	Spawner = SpawnerConfig{
		Interval:   5,
		RangeX:     8,
		RangeY:     4,
		Infinite:   true,
		MaxEnemies: 20,
		EnemyTypes: []string{"Drone", "Scroller", "Rock"},
	}

	Lifetime = LifetimeConfig{
		Default:         5,
		DestroyChildren: true,
	}

	UI = UIConfig{
		HeartSize:        40,
		HeartSpacing:     10,
		HeartMargin:      10,
		HeartColor:       Red,
		HeartPopScale:    1.4,
		HeartPopDuration: 0.25,
		ScoreColor:       White,
	}

	Console = ConsoleConfig{
		MaxInput:        120,
		Lines:           12,
		Background:      BlackOverlay,
		InputBackground: DarkSlate,
		TextColor:       LightGreen,
	}

	Level = LevelConfig{
		Dir:     "levels",
		Default: "arena",
	}

	Debug = DebugConfig{}
}

// EnemyType returns the named enemy type, falling back to the default type.
// ok is false when the fallback was used.
func EnemyType(name string) (EnemyTypeConfig, bool) {
	if t, exists := Enemy.Types[name]; exists {
		return t, true
	}
	return Enemy.Types[Enemy.DefaultType], false
}
