package components

import "github.com/yohamta/donburi"

type ConsoleData struct {
	Open    bool
	Output  string
	History []string
}

var Console = donburi.NewComponentType[ConsoleData]()
