package core

import (
	"image/color"

	"github.com/automoto/coulomb-golf/components"
	cfg "github.com/automoto/coulomb-golf/config"
)

// burst emits b.Count particles at (x, y) with colors chosen by pick.
func (s *Simulation) burst(x, y float64, b cfg.BurstConfig, pick func(i int) color.RGBA) {
	particles := s.Particles()
	for i := 0; i < b.Count; i++ {
		vx := (s.rng.Float64() - 0.5) * b.Spread
		vy := (s.rng.Float64()-0.5)*b.Spread + b.LiftY
		particles.Items = append(particles.Items, components.Particle{
			X:       x,
			Y:       y,
			VX:      vx,
			VY:      vy,
			Life:    b.Life,
			MaxLife: b.Life,
			Color:   pick(i),
			Alpha:   b.Alpha,
		})
	}
}

func solid(c color.RGBA) func(int) color.RGBA {
	return func(int) color.RGBA { return c }
}

func (s *Simulation) emitTrail(x, y float64) {
	t := cfg.Particles.Trail
	s.Particles().Items = append(s.Particles().Items, components.Particle{
		X:       x,
		Y:       y,
		Life:    t.Life,
		MaxLife: t.Life,
		Color:   cfg.Particles.TrailColor,
		Alpha:   t.Alpha,
	})
}

func (s *Simulation) emitVictory(x, y float64) {
	palette := cfg.Particles.VictoryPalette
	s.burst(x, y, cfg.Particles.Victory, func(int) color.RGBA {
		return palette[s.rng.Intn(len(palette))]
	})
}
