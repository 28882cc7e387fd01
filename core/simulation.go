package core

import (
	"log"
	"math/rand"
	"time"

	"github.com/automoto/coulomb-golf/components"
	cfg "github.com/automoto/coulomb-golf/config"
	"github.com/automoto/coulomb-golf/systems/factory"
	"github.com/automoto/coulomb-golf/tags"
	"github.com/yohamta/donburi"
)

// Simulation owns the course state stored in a donburi world and advances it
// one tick at a time. It is not safe for concurrent use.
type Simulation struct {
	World   donburi.World
	Variant cfg.Variant

	clock Clock
	rng   *rand.Rand
	tick  int

	ball    *donburi.Entry
	hole    *donburi.Entry
	field   *donburi.Entry
	session *donburi.Entry
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(s *Simulation) { s.clock = c }
}

// WithRand replaces the random source used for layouts and particles.
func WithRand(r *rand.Rand) Option {
	return func(s *Simulation) { s.rng = r }
}

// WithVariant selects dynamic or static obstacles.
func WithVariant(v cfg.Variant) Option {
	return func(s *Simulation) { s.Variant = v }
}

// NewSimulation populates w with a course of the given size and resets the level.
func NewSimulation(w donburi.World, width, height float64, opts ...Option) *Simulation {
	s := &Simulation{
		World:   w,
		Variant: cfg.C.Variant,
		clock:   SystemClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cell := cfg.Level.SpaceCellSize
	factory.CreateSpace(w, int(width), int(height), cell, cell)
	s.field = factory.CreateField(w, width, height)
	s.session = factory.CreateSession(w)

	startX, startY := s.teePosition()
	s.ball = factory.CreateBall(w, startX, startY)
	s.hole = factory.CreateHole(w, 0, 0)

	log.Printf("Course %.0fx%.0f, %s obstacles", width, height, s.Variant)
	s.ResetLevel()
	return s
}

// Tick returns the number of steps taken so far.
func (s *Simulation) Tick() int { return s.tick }

// Now returns the simulation clock's time.
func (s *Simulation) Now() time.Time { return s.clock.Now() }

func (s *Simulation) Ball() *components.BallData { return components.Ball.Get(s.ball) }

func (s *Simulation) Hole() *components.HoleData { return components.Hole.Get(s.hole) }

func (s *Simulation) Field() *components.FieldData { return components.Field.Get(s.field) }

func (s *Simulation) Stats() *components.StatsData { return components.Stats.Get(s.session) }

func (s *Simulation) Drag() *components.DragData { return components.Drag.Get(s.session) }

func (s *Simulation) Telemetry() *components.TelemetryData {
	return components.Telemetry.Get(s.session)
}

func (s *Simulation) Status() *components.StatusData { return components.Status.Get(s.session) }

func (s *Simulation) Victory() *components.VictoryData { return components.Victory.Get(s.session) }

func (s *Simulation) Particles() *components.ParticlesData {
	return components.Particles.Get(s.session)
}

// Obstacles returns the obstacle entries in creation order.
func (s *Simulation) Obstacles() []*donburi.Entry {
	var out []*donburi.Entry
	tags.Obstacle.Each(s.World, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

func (s *Simulation) setStatus(kind components.StatusKind) {
	status := s.Status()
	status.Kind = kind
	status.Tick = s.tick
}

// teePosition is the ball start for the current field size.
func (s *Simulation) teePosition() (float64, float64) {
	field := s.Field()
	return field.Width * cfg.Ball.StartXPercent, field.Height * cfg.Ball.StartYPercent
}

func (s *Simulation) syncBall() {
	ball := s.Ball()
	components.Object.Get(s.ball).SyncCircle(ball.X, ball.Y, ball.Radius)
}

func syncObstacle(e *donburi.Entry) {
	obs := components.Obstacle.Get(e)
	components.Object.Get(e).SyncCircle(obs.X, obs.Y, obs.Radius)
}
