package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// Particle is a short-lived visual spark
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Color   color.RGBA
	Alpha   float64
}

// ParticlesData owns every live particle in the world
type ParticlesData struct {
	Items []Particle
}

// Decay advances every particle by one tick and drops the expired ones in place.
func (p *ParticlesData) Decay(gravity float64) {
	n := 0
	for _, pt := range p.Items {
		pt.Life--
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.VY += gravity
		if pt.MaxLife > 0 {
			pt.Alpha = float64(pt.Life) / float64(pt.MaxLife)
		}
		if pt.Life > 0 {
			p.Items[n] = pt
			n++
		}
	}
	clear(p.Items[n:])
	p.Items = p.Items[:n]
}

// Clear drops all particles, keeping the backing array.
func (p *ParticlesData) Clear() {
	clear(p.Items)
	p.Items = p.Items[:0]
}

var Particles = donburi.NewComponentType[ParticlesData]()
