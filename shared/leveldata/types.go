// Package leveldata parses arena layouts from TMX files. It has no
// dependencies on ebitengine, donburi, or resolv, so the headless runner can
// use it too.
package leveldata

// Point is a position in world units, Y up.
type Point struct {
	X, Y float64
}

// Arena holds everything a scene needs to populate a world from a TMX file.
type Arena struct {
	Name        string
	Width       float64 // World units, one tile per unit
	Height      float64
	PlayerSpawn Point
	Enemies     []EnemyPlacement
	Spawners    []SpawnerZone
}

// EnemyPlacement is an enemy placed by hand in the level editor. Empty
// mode strings keep the enemy type's defaults.
type EnemyPlacement struct {
	Type         string
	Position     Point
	MovementMode string
	ShootMode    string

	HasScroll bool // Set when the object carries scrollX/scrollY
	ScrollX   float64
	ScrollY   float64
}

// SpawnerZone is a random enemy spawner. A nil EnemyTypes uses the
// configured list.
type SpawnerZone struct {
	Position   Point
	EnemyTypes []string
}
