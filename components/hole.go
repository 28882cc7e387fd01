package components

import "github.com/yohamta/donburi"

type HoleData struct {
	X, Y   float64
	Radius float64
}

var Hole = donburi.NewComponentType[HoleData]()
