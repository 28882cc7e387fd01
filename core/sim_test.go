package core

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/coulomb-golf/components"
	cfg "github.com/automoto/coulomb-golf/config"
	"github.com/automoto/coulomb-golf/systems/factory"
	"github.com/yohamta/donburi"
)

var testStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestSim(t *testing.T, opts ...Option) (*Simulation, *ManualClock) {
	t.Helper()
	clock := NewManualClock(testStart)
	base := []Option{
		WithClock(clock),
		WithRand(rand.New(rand.NewSource(42))),
		WithVariant(cfg.VariantDynamic),
	}
	s := NewSimulation(donburi.NewWorld(), 1280, 720, append(base, opts...)...)
	return s, clock
}

// emptyCourse removes the obstacles and parks the hole in a far corner.
func emptyCourse(s *Simulation) {
	factory.DestroyObstacles(s.World)
	hole := s.Hole()
	hole.X, hole.Y = 1150, 650
}

func launch(s *Simulation, vx, vy float64) {
	ball := s.Ball()
	ball.VX, ball.VY = vx, vy
	ball.Moving = true
	ball.ShotStart = s.Now()
}

func TestNewSimulation(t *testing.T) {
	s, _ := newTestSim(t)

	ball := s.Ball()
	if ball.X != 192 || ball.Y != 360 {
		t.Errorf("Expected ball on the tee at (192, 360), got (%v, %v)", ball.X, ball.Y)
	}
	if ball.Moving {
		t.Error("Expected ball to start idle")
	}
	if n := len(s.Obstacles()); n != 4 {
		t.Errorf("Expected 4 obstacles on the first hole, got %d", n)
	}
	if s.Status().Kind != components.StatusLevelReset {
		t.Errorf("Expected level reset status, got %v", s.Status().Kind)
	}

	hole := s.Hole()
	if hole.X < 150 || hole.X > 1130 || hole.Y < 150 || hole.Y > 570 {
		t.Errorf("Expected hole inside the margin, got (%v, %v)", hole.X, hole.Y)
	}
}

func TestBallSpeedNeverExceedsMax(t *testing.T) {
	s, clock := newTestSim(t)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		ball := s.Ball()
		if !ball.Moving {
			if s.Victory().Active {
				s.ContinueAfterWin()
			}
			launch(s, (rng.Float64()*2-1)*5000, (rng.Float64()*2-1)*5000)
		}
		s.Step()
		clock.Advance(16 * time.Millisecond)

		if speed := math.Hypot(s.Ball().VX, s.Ball().VY); speed > cfg.Ball.MaxSpeed {
			t.Fatalf("Tick %d: expected speed <= %v, got %v", i, cfg.Ball.MaxSpeed, speed)
		}
	}
}

func assertInBounds(t *testing.T, s *Simulation, tick int) {
	t.Helper()
	field := s.Field()
	ball := s.Ball()
	if ball.X < ball.Radius || ball.X > field.Width-ball.Radius ||
		ball.Y < ball.Radius || ball.Y > field.Height-ball.Radius {
		t.Fatalf("Tick %d: ball out of bounds at (%v, %v)", tick, ball.X, ball.Y)
	}

	m := cfg.Obstacle.WallMargin
	for _, e := range s.Obstacles() {
		obs := components.Obstacle.Get(e)
		lo := obs.Radius + m
		if obs.X < lo || obs.X > field.Width-lo || obs.Y < lo || obs.Y > field.Height-lo {
			t.Fatalf("Tick %d: obstacle out of bounds at (%v, %v) radius %v", tick, obs.X, obs.Y, obs.Radius)
		}
	}
}

func TestPositionsStayInBounds(t *testing.T) {
	s, clock := newTestSim(t)
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 2000; i++ {
		if !s.Ball().Moving {
			if s.Victory().Active {
				s.ContinueAfterWin()
			}
			ball := s.Ball()
			if s.BeginDrag(ball.X, ball.Y) {
				angle := rng.Float64() * 2 * math.Pi
				dist := 20 + rng.Float64()*150
				s.ReleaseDrag(ball.X+math.Cos(angle)*dist, ball.Y+math.Sin(angle)*dist)
			}
		}
		s.Step()
		clock.Advance(16 * time.Millisecond)
		assertInBounds(t, s, i)
	}
}

func TestOutOfBoundsPositionsAreClamped(t *testing.T) {
	s, _ := newTestSim(t)
	emptyCourse(s)

	obstacle := factory.CreateObstacle(s.World, components.ObstacleData{
		X: 5000, Y: -300, VX: 10, VY: -10, Radius: 40, Charge: 30, Mass: 5,
	})
	launch(s, -300, 200)
	ball := s.Ball()
	ball.X, ball.Y = -500, 9000

	s.Step()

	if ball.X != ball.Radius || ball.Y != 720-ball.Radius {
		t.Errorf("Expected ball clamped to (%v, %v), got (%v, %v)", ball.Radius, 720-ball.Radius, ball.X, ball.Y)
	}
	if ball.VX <= 0 || ball.VY >= 0 {
		t.Errorf("Expected ball velocity reflected on both axes, got (%v, %v)", ball.VX, ball.VY)
	}

	obs := components.Obstacle.Get(obstacle)
	if obs.X != 1280-40-20 || obs.Y != 40+20 {
		t.Errorf("Expected obstacle clamped to (1220, 60), got (%v, %v)", obs.X, obs.Y)
	}
	if obs.VX >= 0 || obs.VY <= 0 {
		t.Errorf("Expected obstacle velocity reflected, got (%v, %v)", obs.VX, obs.VY)
	}
}

func TestShotTimeout(t *testing.T) {
	s, clock := newTestSim(t)
	emptyCourse(s)
	launch(s, 500, 0)

	clock.Advance(4999 * time.Millisecond)
	s.Step()
	if !s.Ball().Moving {
		t.Fatal("Expected ball still moving before the shot clock runs out")
	}

	clock.Advance(time.Millisecond)
	s.Step()

	ball := s.Ball()
	if ball.Moving || ball.VX != 0 || ball.VY != 0 {
		t.Errorf("Expected force stop with zero velocity, got moving=%v v=(%v, %v)", ball.Moving, ball.VX, ball.VY)
	}
	if s.Status().Kind != components.StatusTimeUp {
		t.Errorf("Expected time up status, got %v", s.Status().Kind)
	}
	if s.Telemetry().Visible {
		t.Error("Expected telemetry hidden after the shot ends")
	}
}

func TestLowSpeedStop(t *testing.T) {
	s, _ := newTestSim(t)
	emptyCourse(s)
	launch(s, 0.03, -0.04)

	s.Step()

	ball := s.Ball()
	if ball.Moving || ball.VX != 0 || ball.VY != 0 {
		t.Errorf("Expected ball stopped, got moving=%v v=(%v, %v)", ball.Moving, ball.VX, ball.VY)
	}
	if s.Status().Kind != components.StatusBallStopped {
		t.Errorf("Expected ball stopped status, got %v", s.Status().Kind)
	}
}

func TestRepulsionScenario(t *testing.T) {
	s, _ := newTestSim(t)
	emptyCourse(s)

	obstacle := factory.CreateObstacle(s.World, components.ObstacleData{
		X: 500, Y: 360, Radius: 30, Charge: 30, Mass: 5, Color: cfg.Obstacle.PositiveColor,
	})
	ball := s.Ball()
	ball.X, ball.Y = 400, 360
	ball.Charge = 10
	launch(s, 20, 0)

	s.Step()

	telemetry := s.Telemetry()
	if !telemetry.Visible {
		t.Fatal("Expected telemetry visible while in flight")
	}
	if telemetry.FX >= 0 {
		t.Errorf("Expected force pointing away from the obstacle, got fx=%v", telemetry.FX)
	}
	if math.Abs(telemetry.Magnitude-540) > 1 {
		t.Errorf("Expected force magnitude near 540, got %v", telemetry.Magnitude)
	}
	if ball.VX >= 20*cfg.Ball.Friction {
		t.Errorf("Expected ball to decelerate beyond friction, got vx=%v", ball.VX)
	}

	reversed := false
	for i := 0; i < 50 && ball.Moving; i++ {
		obs := components.Obstacle.Get(obstacle)
		rsum := obs.Radius + ball.Radius
		if math.Hypot(ball.X-obs.X, ball.Y-obs.Y) < rsum+cfg.Ball.ContactGap {
			t.Fatalf("Tick %d: ball reached collision distance", i)
		}
		if ball.VX < 0 {
			reversed = true
			break
		}
		s.Step()
	}
	if !reversed {
		t.Error("Expected ball to reverse before reaching the obstacle")
	}
}

func TestBallBouncesOffObstacle(t *testing.T) {
	s, _ := newTestSim(t)
	emptyCourse(s)

	factory.CreateObstacle(s.World, components.ObstacleData{
		X: 600, Y: 360, Radius: 40, Charge: 30, Mass: 5, Color: cfg.Obstacle.NegativeColor,
	})
	ball := s.Ball()
	ball.X, ball.Y = 550, 360
	launch(s, 300, 0)

	s.Step()

	if ball.VX >= 0 {
		t.Errorf("Expected ball pushed back from the obstacle, got vx=%v", ball.VX)
	}
	if got := len(s.Particles().Items); got < cfg.Particles.Collision.Count {
		t.Errorf("Expected at least %d collision particles, got %d", cfg.Particles.Collision.Count, got)
	}
	if s.Particles().Items[0].Color != cfg.Obstacle.NegativeColor {
		t.Errorf("Expected collision particles in the obstacle color, got %v", s.Particles().Items[0].Color)
	}
}

func TestSetCharge(t *testing.T) {
	s, _ := newTestSim(t)

	tests := []struct {
		name string
		q    float64
		want float64
	}{
		{"In range", -25, -25},
		{"Above max", 80, 50},
		{"Below min", -70, -50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !s.SetCharge(tt.q) {
				t.Fatal("Expected charge change to be accepted while idle")
			}
			if got := s.Ball().Charge; got != tt.want {
				t.Errorf("Expected charge %v, got %v", tt.want, got)
			}
		})
	}

	launch(s, 100, 0)
	if s.SetCharge(30) {
		t.Error("Expected charge change to be refused during a shot")
	}
	if got := s.Ball().Charge; got != -50 {
		t.Errorf("Expected charge unchanged at -50, got %v", got)
	}
}

func TestStaticVariantHovers(t *testing.T) {
	s, clock := newTestSim(t, WithVariant(cfg.VariantStatic))
	clock.Advance(1234 * time.Millisecond)

	for _, e := range s.Obstacles() {
		obs := components.Obstacle.Get(e)
		if obs.VX != 0 || obs.VY != 0 {
			t.Errorf("Expected static obstacles without velocity, got (%v, %v)", obs.VX, obs.VY)
		}
	}

	s.Step()

	tm := float64(clock.Now().UnixMilli()) * cfg.Obstacle.HoverSpeed
	for _, e := range s.Obstacles() {
		obs := components.Obstacle.Get(e)
		i := float64(obs.Phase)
		wantX := obs.BaseX + math.Sin(tm+i)*cfg.Obstacle.HoverAmplitude
		wantY := obs.BaseY + math.Cos(tm+i*cfg.Obstacle.HoverPhaseY)*cfg.Obstacle.HoverAmplitude
		if math.Abs(obs.X-wantX) > 1e-9 || math.Abs(obs.Y-wantY) > 1e-9 {
			t.Errorf("Expected obstacle %d at (%v, %v), got (%v, %v)", obs.Phase, wantX, wantY, obs.X, obs.Y)
		}
	}

	emptyCourse(s)
	factory.CreateObstacle(s.World, components.ObstacleData{X: 600, Y: 360, BaseX: 600, BaseY: 360, Radius: 30, Charge: -40, Mass: 5})
	launch(s, 50, 0)
	s.Step()
	if s.Telemetry().Visible {
		t.Error("Expected no telemetry in the static variant")
	}
}
