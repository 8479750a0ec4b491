package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	MoveSpeed float64
}

var Player = donburi.NewComponentType[PlayerData]()
