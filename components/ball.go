package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// BallData is the player's charged ball
type BallData struct {
	X, Y   float64
	VX, VY float64
	Charge float64
	Radius float64
	Moving bool

	ShotStart      time.Time // wall clock time of the last release
	StartX, StartY float64   // tee position, recomputed on reset and resize
}

var Ball = donburi.NewComponentType[BallData]()
