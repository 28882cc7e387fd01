package core

import (
	"math"
	"math/rand"

	"github.com/automoto/coulomb-golf/gamemath"
)

// AimBot plays the course by dragging straight away from the hole whenever
// the ball is idle. It drives the same drag API as a pointer.
type AimBot struct {
	Delay  int     // idle ticks before each shot
	Jitter float64 // max aim error in radians
	Rand   *rand.Rand

	wait int
}

// Act runs one tick of bot input. It returns the outcome of any shot released.
func (b *AimBot) Act(s *Simulation) ShotOutcome {
	if s.Victory().Active {
		s.ContinueAfterWin()
		b.wait = 0
		return ShotNone
	}
	ball := s.Ball()
	if ball.Moving || s.Drag().Active {
		return ShotNone
	}
	if b.wait < b.Delay {
		b.wait++
		return ShotNone
	}
	b.wait = 0

	hole := s.Hole()
	angle := math.Atan2(hole.Y-ball.Y, hole.X-ball.X)
	if b.Jitter > 0 && b.Rand != nil {
		angle += (b.Rand.Float64()*2 - 1) * b.Jitter
	}
	dist := BotDragDistance(gamemath.Distance(ball.X, ball.Y, hole.X, hole.Y))

	if !s.BeginDrag(ball.X, ball.Y) {
		return ShotNone
	}
	// Releasing behind the ball sends it towards the hole
	return s.ReleaseDrag(ball.X-math.Cos(angle)*dist, ball.Y-math.Sin(angle)*dist)
}

// BotDragDistance scales the drag length with the distance to the target.
func BotDragDistance(target float64) float64 {
	return gamemath.Clamp(target/8, 20, 100)
}
