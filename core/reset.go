package core

import (
	"github.com/automoto/coulomb-golf/components"
)

// ResetLevel puts the ball back on the tee and lays out a new hole for the
// current win count. Wins and best score are kept.
func (s *Simulation) ResetLevel() {
	startX, startY := s.teePosition()
	ball := s.Ball()
	ball.StartX, ball.StartY = startX, startY
	ball.X, ball.Y = startX, startY
	ball.VX, ball.VY = 0, 0
	ball.Moving = false
	s.syncBall()

	s.Drag().Active = false
	s.Victory().Active = false
	s.Telemetry().Visible = false
	s.Particles().Clear()

	stats := s.Stats()
	stats.Shots = 0

	s.placeHole()
	s.GenerateObstacles(stats.Wins)
	s.setStatus(components.StatusLevelReset)
}

// NewGame clears wins and best score, then resets the level.
func (s *Simulation) NewGame() {
	stats := s.Stats()
	stats.Wins = 0
	stats.Best = 0
	stats.HasBest = false
	s.ResetLevel()
}

// ContinueAfterWin dismisses the victory overlay and starts a fresh level.
func (s *Simulation) ContinueAfterWin() {
	s.Victory().Active = false
	s.ResetLevel()
}
