package components

import "github.com/yohamta/donburi"

// FieldData is the size of the playing canvas
type FieldData struct {
	Width, Height float64
}

var Field = donburi.NewComponentType[FieldData]()
