package core

import (
	"log"

	"github.com/automoto/coulomb-golf/components"
	"github.com/automoto/coulomb-golf/gamemath"
)

// checkWin completes the hole when the ball centre is inside the cup.
func (s *Simulation) checkWin() bool {
	ball := s.Ball()
	hole := s.Hole()
	if gamemath.Distance(ball.X, ball.Y, hole.X, hole.Y) >= hole.Radius {
		return false
	}

	s.stopBall()
	stats := s.Stats()
	stats.Wins++
	if !stats.HasBest || stats.Shots < stats.Best {
		stats.Best = stats.Shots
		stats.HasBest = true
	}

	victory := s.Victory()
	victory.Active = true
	victory.Shots = stats.Shots

	s.Drag().Active = false
	s.placeHole()
	s.GenerateObstacles(stats.Wins)
	s.emitVictory(hole.X, hole.Y)
	s.setStatus(components.StatusHoleIn)

	log.Printf("Hole in %d shots (wins %d, best %d)", stats.Shots, stats.Wins, stats.Best)
	return true
}
