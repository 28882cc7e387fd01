package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ObstacleData is a charged circular body on the course
type ObstacleData struct {
	X, Y         float64
	VX, VY       float64
	BaseX, BaseY float64 // hover anchor for the static variant
	Phase        int     // index used to offset the hover motion

	Charge float64
	Radius float64
	Mass   float64
	Color  color.RGBA

	FX, FY    float64 // force accumulated during the current tick
	Respawned bool    // respawned during the current tick
}

// Positive reports whether the obstacle carries a positive charge.
func (o *ObstacleData) Positive() bool {
	return o.Charge > 0
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
