package factory

import (
	"github.com/automoto/coulomb-golf/archetypes"
	"github.com/automoto/coulomb-golf/components"
	"github.com/automoto/coulomb-golf/tags"
	"github.com/yohamta/donburi"
)

func CreateObstacle(w donburi.World, data components.ObstacleData) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(w)
	components.Obstacle.SetValue(obstacle, data)

	obj := circleObject(data.X, data.Y, data.Radius, tags.ResolvObstacle)
	obj.Data = obstacle
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return obstacle
}

// DestroyObstacles removes every obstacle entity and its collision object.
func DestroyObstacles(w donburi.World) {
	var doomed []donburi.Entity
	tags.Obstacle.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
		doomed = append(doomed, e.Entity())
	})
	for _, entity := range doomed {
		w.Remove(entity)
	}
}
