package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// SyncCircle moves the bounding box to cover a circle and refreshes its cells.
func (o *ObjectData) SyncCircle(x, y, r float64) {
	o.X = x - r
	o.Y = y - r
	o.W = r * 2
	o.H = r * 2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
