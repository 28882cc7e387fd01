package components

import "github.com/yohamta/donburi"

// VictoryData drives the hole-completed overlay
type VictoryData struct {
	Active bool
	Shots  int // shots taken on the hole just completed
}

var Victory = donburi.NewComponentType[VictoryData]()
