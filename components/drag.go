package components

import "github.com/yohamta/donburi"

// DragData is the in-progress aim gesture
type DragData struct {
	Active             bool
	StartX, StartY     float64
	CurrentX, CurrentY float64
}

var Drag = donburi.NewComponentType[DragData]()
