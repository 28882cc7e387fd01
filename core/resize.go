package core

import (
	"github.com/automoto/coulomb-golf/components"
	cfg "github.com/automoto/coulomb-golf/config"
	"github.com/automoto/coulomb-golf/gamemath"
	"github.com/automoto/coulomb-golf/systems/factory"
)

// Resize adapts the course to new canvas bounds. Hole and obstacles keep their
// relative positions, the tee moves with the field, and the ball is put back
// on the tee only while idle. A ball in flight is clamped into the new field.
// Scores and charges are kept.
func (s *Simulation) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	field := s.Field()
	oldW, oldH := field.Width, field.Height
	if oldW == width && oldH == height {
		return
	}
	field.Width, field.Height = width, height

	hole := s.Hole()
	hole.X = gamemath.Clamp(gamemath.Scale(hole.X, oldW, width), hole.Radius, width-hole.Radius)
	hole.Y = gamemath.Clamp(gamemath.Scale(hole.Y, oldH, height), hole.Radius, height-hole.Radius)

	o := cfg.Obstacle
	for _, e := range s.Obstacles() {
		obs := components.Obstacle.Get(e)
		if s.Variant == cfg.VariantStatic {
			obs.BaseX = gamemath.Clamp(gamemath.Scale(obs.BaseX, oldW, width), o.StaticInsetX, width-o.StaticInsetX)
			obs.BaseY = gamemath.Clamp(gamemath.Scale(obs.BaseY, oldH, height), o.StaticInsetY, height-o.StaticInsetY)
			obs.X, obs.Y = obs.BaseX, obs.BaseY
			continue
		}
		inset := obs.Radius + o.WallMargin
		obs.X = gamemath.Clamp(gamemath.Scale(obs.X, oldW, width), inset, width-inset)
		obs.Y = gamemath.Clamp(gamemath.Scale(obs.Y, oldH, height), inset, height-inset)
		obs.BaseX, obs.BaseY = obs.X, obs.Y
	}

	ball := s.Ball()
	ball.StartX, ball.StartY = s.teePosition()
	if !ball.Moving {
		ball.X, ball.Y = ball.StartX, ball.StartY
		s.Drag().Active = false
	} else {
		inset := ball.Radius + cfg.Ball.WallMargin
		ball.X = gamemath.Clamp(ball.X, inset, width-inset)
		ball.Y = gamemath.Clamp(ball.Y, inset, height-inset)
	}

	cell := cfg.Level.SpaceCellSize
	factory.RebuildSpace(s.World, int(width), int(height), cell, cell)
	for _, e := range s.Obstacles() {
		syncObstacle(e)
	}
	s.syncBall()
}
