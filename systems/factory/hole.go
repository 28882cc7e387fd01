package factory

import (
	"github.com/automoto/coulomb-golf/archetypes"
	"github.com/automoto/coulomb-golf/components"
	cfg "github.com/automoto/coulomb-golf/config"
	"github.com/yohamta/donburi"
)

func CreateHole(w donburi.World, x, y float64) *donburi.Entry {
	hole := archetypes.Hole.Spawn(w)
	components.Hole.SetValue(hole, components.HoleData{
		X:      x,
		Y:      y,
		Radius: cfg.Hole.Radius,
	})
	return hole
}
