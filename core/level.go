package core

import (
	"log"

	"github.com/automoto/coulomb-golf/components"
	cfg "github.com/automoto/coulomb-golf/config"
	"github.com/automoto/coulomb-golf/gamemath"
	"github.com/automoto/coulomb-golf/systems/factory"
	"github.com/automoto/coulomb-golf/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObstacleCount is the obstacle set size for a win count.
func ObstacleCount(wins int) int {
	return min(cfg.Level.MaxObstacles, cfg.Level.BaseObstacles+wins)
}

// GenerateObstacles replaces the obstacle set with a fresh random layout sized
// for the given win count.
func (s *Simulation) GenerateObstacles(wins int) []*donburi.Entry {
	factory.DestroyObstacles(s.World)

	n := ObstacleCount(wins)
	positive := make([]bool, n)
	for i := range positive {
		positive[i] = i%2 == 0
	}
	s.rng.Shuffle(n, func(i, j int) {
		positive[i], positive[j] = positive[j], positive[i]
	})

	entries := make([]*donburi.Entry, 0, n)
	for i, pos := range positive {
		o := cfg.Obstacle
		radius := o.MinRadius + s.rng.Float64()*(o.MaxRadius-o.MinRadius)
		charge := o.MinCharge + s.rng.Float64()*(o.MaxCharge-o.MinCharge)
		color := o.PositiveColor
		if !pos {
			charge = -charge
			color = o.NegativeColor
		}

		x, y := s.placeObstacle(radius, nil)
		data := components.ObstacleData{
			X:      x,
			Y:      y,
			BaseX:  x,
			BaseY:  y,
			Phase:  i,
			Charge: charge,
			Radius: radius,
			Mass:   o.Mass,
			Color:  color,
		}
		if s.Variant == cfg.VariantDynamic {
			data.VX, data.VY = s.randomVelocity()
		}
		entries = append(entries, factory.CreateObstacle(s.World, data))
	}

	log.Printf("Generated %d obstacles for %d wins", n, wins)
	return entries
}

// spawnRect is the area obstacle centres of the given radius are drawn from.
func (s *Simulation) spawnRect(radius float64) (minX, minY, maxX, maxY float64) {
	field := s.Field()
	ball := s.Ball()
	minX = max(cfg.Level.EdgeInsetX, ball.StartX+cfg.Level.StartColumnGap) + radius
	maxX = field.Width - cfg.Level.EdgeInsetX - radius
	minY = cfg.Level.EdgeInsetY + radius
	maxY = field.Height - cfg.Level.EdgeInsetY - radius
	return minX, minY, maxX, maxY
}

func (s *Simulation) randomPosition(radius float64) (float64, float64) {
	minX, minY, maxX, maxY := s.spawnRect(radius)
	return s.randomIn(minX, maxX), s.randomIn(minY, maxY)
}

// randomIn draws from [lo, hi), falling back to the midpoint of an empty range.
func (s *Simulation) randomIn(lo, hi float64) float64 {
	r := s.rng.Float64()
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + r*(hi-lo)
}

func (s *Simulation) randomVelocity() (float64, float64) {
	m := cfg.Obstacle.MaxSpeed
	return (s.rng.Float64()*2 - 1) * m, (s.rng.Float64()*2 - 1) * m
}

// placeObstacle draws up to PlacementTries positions and keeps the first one
// clear of other obstacles. The last draw is kept when none are clear.
func (s *Simulation) placeObstacle(radius float64, self *donburi.Entry) (float64, float64) {
	var x, y float64
	for try := 0; try < max(1, cfg.Level.PlacementTries); try++ {
		x, y = s.randomPosition(radius)
		if !s.overlapsObstacle(x, y, radius, self) {
			break
		}
	}
	return x, y
}

// overlapsObstacle checks the broadphase for obstacles near the circle and
// confirms with a circle test.
func (s *Simulation) overlapsObstacle(x, y, radius float64, self *donburi.Entry) bool {
	spaceEntry, ok := components.Space.First(s.World)
	if !ok {
		return false
	}
	space := components.Space.Get(spaceEntry)

	probe := resolv.NewObject(x-radius, y-radius, radius*2, radius*2, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvObstacle)
	if check == nil {
		return false
	}
	for _, obj := range check.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || entry == self || !entry.Valid() {
			continue
		}
		other := components.Obstacle.Get(entry)
		if gamemath.Distance(x, y, other.X, other.Y) < radius+other.Radius {
			return true
		}
	}
	return false
}

// placeHole moves the hole to a random spot away from the edges, or to the
// field centre on an axis too short for the margin.
func (s *Simulation) placeHole() {
	field := s.Field()
	hole := s.Hole()
	m := cfg.Hole.Margin
	hole.X = s.randomIn(m, field.Width-m)
	hole.Y = s.randomIn(m, field.Height-m)
	hole.Radius = cfg.Hole.Radius
}
