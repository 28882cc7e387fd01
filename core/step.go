package core

import (
	"image/color"
	"math"

	"github.com/automoto/coulomb-golf/components"
	cfg "github.com/automoto/coulomb-golf/config"
	"github.com/automoto/coulomb-golf/gamemath"
	"github.com/yohamta/donburi"
)

// Step advances the course by one tick.
func (s *Simulation) Step() {
	s.tick++
	obstacles := s.Obstacles()

	if s.Variant == cfg.VariantDynamic {
		s.interactObstacles(obstacles)
		s.coupleBall(obstacles)
		s.integrateObstacles(obstacles)
	} else {
		s.hoverObstacles(obstacles)
	}

	s.Particles().Decay(cfg.Particles.Gravity)

	ball := s.Ball()
	if !ball.Moving {
		s.Telemetry().Visible = false
		return
	}
	if s.clock.Now().Sub(ball.ShotStart).Milliseconds() >= cfg.Shot.DurationMillis {
		s.stopBall()
		s.setStatus(components.StatusTimeUp)
		return
	}

	fx, fy := s.ballForces(obstacles)
	s.integrateBall(fx, fy)
	s.checkWin()
}

// interactObstacles accumulates pairwise forces and respawns colliding pairs.
func (s *Simulation) interactObstacles(obstacles []*donburi.Entry) {
	for _, e := range obstacles {
		obs := components.Obstacle.Get(e)
		obs.FX, obs.FY = 0, 0
		obs.Respawned = false
	}

	k := cfg.Physics.CoulombK
	for i := 0; i < len(obstacles); i++ {
		a := components.Obstacle.Get(obstacles[i])
		for j := i + 1; j < len(obstacles); j++ {
			if a.Respawned {
				break
			}
			b := components.Obstacle.Get(obstacles[j])
			if b.Respawned {
				continue
			}

			dist := gamemath.Distance(a.X, a.Y, b.X, b.Y)
			if dist > a.Radius+b.Radius {
				fx, fy := gamemath.Coulomb(k, a.Charge, b.Charge, a.X, a.Y, b.X, b.Y)
				a.FX += fx
				a.FY += fy
				b.FX -= fx
				b.FY -= fy
				continue
			}

			ca, cb := a.Color, b.Color
			s.burst((a.X+b.X)/2, (a.Y+b.Y)/2, cfg.Particles.Respawn, func(n int) color.RGBA {
				if n%2 == 0 {
					return ca
				}
				return cb
			})
			s.respawnObstacle(obstacles[i])
			s.respawnObstacle(obstacles[j])
		}
	}
}

func (s *Simulation) respawnObstacle(e *donburi.Entry) {
	obs := components.Obstacle.Get(e)
	obs.X, obs.Y = s.placeObstacle(obs.Radius, e)
	obs.BaseX, obs.BaseY = obs.X, obs.Y
	obs.VX, obs.VY = s.randomVelocity()
	obs.FX, obs.FY = 0, 0
	obs.Respawned = true
	syncObstacle(e)
}

// coupleBall adds the moving ball's pull or push on every obstacle.
func (s *Simulation) coupleBall(obstacles []*donburi.Entry) {
	ball := s.Ball()
	if !ball.Moving {
		return
	}
	k := cfg.Physics.CoulombK
	for _, e := range obstacles {
		obs := components.Obstacle.Get(e)
		if gamemath.Distance(obs.X, obs.Y, ball.X, ball.Y) <= cfg.Obstacle.BallCouplingGap {
			continue
		}
		fx, fy := gamemath.Coulomb(k, obs.Charge, ball.Charge, obs.X, obs.Y, ball.X, ball.Y)
		obs.FX += fx
		obs.FY += fy
	}
}

func (s *Simulation) integrateObstacles(obstacles []*donburi.Entry) {
	field := s.Field()
	dt := cfg.Physics.DT
	o := cfg.Obstacle
	for _, e := range obstacles {
		obs := components.Obstacle.Get(e)
		obs.VX += obs.FX / obs.Mass * dt
		obs.VY += obs.FY / obs.Mass * dt
		obs.VX *= o.Friction
		obs.VY *= o.Friction
		obs.X += obs.VX * dt
		obs.Y += obs.VY * dt
		obs.X, obs.VX = gamemath.Confine(obs.X, obs.VX, obs.Radius, o.WallMargin, field.Width, o.WallBounce)
		obs.Y, obs.VY = gamemath.Confine(obs.Y, obs.VY, obs.Radius, o.WallMargin, field.Height, o.WallBounce)
		syncObstacle(e)
	}
}

// hoverObstacles moves static obstacles on a small loop around their base.
func (s *Simulation) hoverObstacles(obstacles []*donburi.Entry) {
	o := cfg.Obstacle
	t := float64(s.clock.Now().UnixMilli()) * o.HoverSpeed
	for _, e := range obstacles {
		obs := components.Obstacle.Get(e)
		i := float64(obs.Phase)
		obs.X = obs.BaseX + math.Sin(t+i)*o.HoverAmplitude
		obs.Y = obs.BaseY + math.Cos(t+i*o.HoverPhaseY)*o.HoverAmplitude
		syncObstacle(e)
	}
}

// ballForces bounces the ball off touching obstacles and sums the Coulomb
// force from the ones in range.
func (s *Simulation) ballForces(obstacles []*donburi.Entry) (fx, fy float64) {
	ball := s.Ball()
	b := cfg.Ball
	k := cfg.Physics.CoulombK
	for _, e := range obstacles {
		obs := components.Obstacle.Get(e)
		rsum := obs.Radius + ball.Radius
		dist := gamemath.Distance(ball.X, ball.Y, obs.X, obs.Y)

		if dist < rsum+b.ContactGap {
			angle := math.Atan2(ball.Y-obs.Y, ball.X-obs.X)
			ball.VX = math.Cos(angle) * b.BounceSpeed
			ball.VY = math.Sin(angle) * b.BounceSpeed
			ball.X += math.Cos(angle) * b.BounceNudge
			ball.Y += math.Sin(angle) * b.BounceNudge
			s.burst(ball.X, ball.Y, cfg.Particles.Collision, solid(obs.Color))
			continue
		}

		if dist > rsum+b.ForceGap && dist < b.ForceRange {
			ox, oy := gamemath.Coulomb(k, ball.Charge, obs.Charge, ball.X, ball.Y, obs.X, obs.Y)
			fx += ox
			fy += oy
		}
	}

	telemetry := s.Telemetry()
	if s.Variant == cfg.VariantDynamic {
		telemetry.FX, telemetry.FY = fx, fy
		telemetry.Magnitude = math.Hypot(fx, fy)
		telemetry.Visible = true
	} else {
		telemetry.Visible = false
	}
	return fx, fy
}

func (s *Simulation) integrateBall(fx, fy float64) {
	ball := s.Ball()
	field := s.Field()
	b := cfg.Ball
	dt := cfg.Physics.DT

	ball.VX += fx * dt
	ball.VY += fy * dt
	ball.VX, ball.VY = gamemath.ClampMagnitude(ball.VX, ball.VY, b.MaxSpeed)
	ball.VX *= b.Friction
	ball.VY *= b.Friction

	if s.rng.Float64() < b.TrailChance {
		s.emitTrail(ball.X, ball.Y)
	}

	if math.Abs(ball.VX) < b.StopEpsilon && math.Abs(ball.VY) < b.StopEpsilon {
		s.stopBall()
		s.setStatus(components.StatusBallStopped)
	}

	ball.X += ball.VX * dt
	ball.Y += ball.VY * dt
	ball.X, ball.VX = gamemath.Confine(ball.X, ball.VX, ball.Radius, b.WallMargin, field.Width, b.WallBounce)
	ball.Y, ball.VY = gamemath.Confine(ball.Y, ball.VY, ball.Radius, b.WallMargin, field.Height, b.WallBounce)
	s.syncBall()
}

func (s *Simulation) stopBall() {
	ball := s.Ball()
	ball.Moving = false
	ball.VX, ball.VY = 0, 0
	s.Telemetry().Visible = false
}
