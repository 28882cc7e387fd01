package factory

import (
	"github.com/automoto/coulomb-golf/archetypes"
	"github.com/automoto/coulomb-golf/components"
	cfg "github.com/automoto/coulomb-golf/config"
	"github.com/automoto/coulomb-golf/tags"
	"github.com/yohamta/donburi"
)

// CreateBall places the ball on the tee at (x, y) with the default charge.
func CreateBall(w donburi.World, x, y float64) *donburi.Entry {
	ball := archetypes.Ball.Spawn(w)

	components.Ball.SetValue(ball, components.BallData{
		X:      x,
		Y:      y,
		StartX: x,
		StartY: y,
		Charge: cfg.Ball.DefaultCharge,
		Radius: cfg.Ball.Radius,
	})

	obj := circleObject(x, y, cfg.Ball.Radius, tags.ResolvBall)
	obj.Data = ball
	components.Object.SetValue(ball, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return ball
}
