package factory

import (
	"github.com/automoto/coulomb-golf/archetypes"
	"github.com/automoto/coulomb-golf/components"
	"github.com/yohamta/donburi"
)

func CreateField(w donburi.World, width, height float64) *donburi.Entry {
	field := archetypes.Field.Spawn(w)
	components.Field.SetValue(field, components.FieldData{Width: width, Height: height})
	return field
}

// CreateSession spawns the score, drag, telemetry, status, victory and
// particle singletons with zero values.
func CreateSession(w donburi.World) *donburi.Entry {
	return archetypes.Session.Spawn(w)
}
