package core

import (
	"math"

	"github.com/automoto/coulomb-golf/components"
	cfg "github.com/automoto/coulomb-golf/config"
	"github.com/automoto/coulomb-golf/gamemath"
)

// ShotOutcome is the result of releasing an aim gesture.
type ShotOutcome int

const (
	ShotNone     ShotOutcome = iota // no drag was active
	ShotCanceled                    // drag too short to fire
	ShotFired
)

func (o ShotOutcome) String() string {
	switch o {
	case ShotCanceled:
		return "canceled"
	case ShotFired:
		return "fired"
	}
	return "none"
}

// BeginDrag starts aiming if the ball is at rest and (x, y) is close to it.
func (s *Simulation) BeginDrag(x, y float64) bool {
	ball := s.Ball()
	if ball.Moving || s.Victory().Active {
		return false
	}
	if gamemath.Distance(x, y, ball.X, ball.Y) >= cfg.Ball.CaptureRadius {
		return false
	}

	drag := s.Drag()
	drag.Active = true
	drag.StartX, drag.StartY = x, y
	drag.CurrentX, drag.CurrentY = x, y
	s.setStatus(components.StatusAiming)
	return true
}

// MoveDrag tracks the pointer while aiming.
func (s *Simulation) MoveDrag(x, y float64) {
	drag := s.Drag()
	if !drag.Active {
		return
	}
	drag.CurrentX, drag.CurrentY = x, y
}

// ReleaseDrag ends aiming at (x, y) and fires if the drag was long enough.
// The impulse points from the release point back towards the drag start.
func (s *Simulation) ReleaseDrag(x, y float64) ShotOutcome {
	drag := s.Drag()
	if !drag.Active {
		return ShotNone
	}
	drag.Active = false
	drag.CurrentX, drag.CurrentY = x, y

	dx := drag.StartX - x
	dy := drag.StartY - y
	dist := math.Hypot(dx, dy)
	if dist <= cfg.Shot.MinDragDistance {
		s.setStatus(components.StatusShotCanceled)
		return ShotCanceled
	}

	power := ShotPower(dist)
	angle := math.Atan2(dy, dx)
	ball := s.Ball()
	ball.VX += math.Cos(angle) * power
	ball.VY += math.Sin(angle) * power
	ball.Moving = true
	ball.ShotStart = s.clock.Now()
	s.Stats().Shots++
	s.setStatus(components.StatusShotFired)
	return ShotFired
}

// CancelDrag drops an in-progress aim without firing.
func (s *Simulation) CancelDrag() {
	s.Drag().Active = false
}

// ShotPower converts a drag length into launch speed.
func ShotPower(dist float64) float64 {
	return math.Min(dist*cfg.Shot.PowerSensitivity, cfg.Shot.MaxPower)
}

// SetCharge sets the ball charge within limits. It is ignored during a shot.
func (s *Simulation) SetCharge(q float64) bool {
	ball := s.Ball()
	if ball.Moving {
		return false
	}
	ball.Charge = gamemath.Clamp(q, cfg.Ball.MinCharge, cfg.Ball.MaxCharge)
	return true
}
