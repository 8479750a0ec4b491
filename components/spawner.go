package components

import "github.com/yohamta/donburi"

type SpawnerData struct {
	EnemyTypes []string
	Interval   float64 // seconds
	RangeX     float64
	RangeY     float64
	Infinite   bool
	MaxEnemies int

	NextSpawn float64 // Clock time of the next spawn
	Spawned   int
}

var Spawner = donburi.NewComponentType[SpawnerData]()
