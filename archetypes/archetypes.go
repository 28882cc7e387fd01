package archetypes

import (
	"github.com/automoto/coulomb-golf/components"
	"github.com/automoto/coulomb-golf/tags"
	"github.com/yohamta/donburi"
)

var (
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Object,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
		components.Object,
	)
	Hole = newArchetype(
		tags.Hole,
		components.Hole,
	)
	Space = newArchetype(
		components.Space,
	)
	Field = newArchetype(
		components.Field,
	)
	// Session groups the per-game singletons
	Session = newArchetype(
		components.Stats,
		components.Drag,
		components.Telemetry,
		components.Status,
		components.Victory,
		components.Particles,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
