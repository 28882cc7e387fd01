package factory

import (
	"github.com/automoto/coulomb-golf/archetypes"
	"github.com/automoto/coulomb-golf/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// RebuildSpace replaces the space with one of the new size and moves every
// registered object across.
func RebuildSpace(w donburi.World, width, height, cellWidth, cellHeight int) *resolv.Space {
	entry, ok := components.Space.First(w)
	if !ok {
		entry = CreateSpace(w, width, height, cellWidth, cellHeight)
	}
	old := components.Space.Get(entry)
	next := resolv.NewSpace(width, height, cellWidth, cellHeight)

	components.Object.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object == nil {
			return
		}
		if obj.Space != nil {
			old.Remove(obj.Object)
		}
		next.Add(obj.Object)
	})

	components.Space.Set(entry, next)
	return next
}

func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

func circleObject(x, y, r float64, tags ...string) *resolv.Object {
	return resolv.NewObject(x-r, y-r, r*2, r*2, tags...)
}
