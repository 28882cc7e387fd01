package tags

import "github.com/yohamta/donburi"

var (
	Ball     = donburi.NewTag().SetName("Ball")
	Obstacle = donburi.NewTag().SetName("Obstacle")
	Hole     = donburi.NewTag().SetName("Hole")
)

// Resolv tags for broadphase queries
const (
	ResolvBall     = "Ball"
	ResolvObstacle = "Obstacle"
	ResolvProbe    = "probe"
)
