package core

import (
	"testing"

	"github.com/automoto/coulomb-golf/components"
	cfg "github.com/automoto/coulomb-golf/config"
)

// sinkBall puts a slow moving ball in the cup with the given shot count.
func sinkBall(s *Simulation, shots int) {
	emptyCourse(s)
	hole := s.Hole()
	hole.X, hole.Y = 640, 360
	ball := s.Ball()
	ball.X, ball.Y = 640, 360
	launch(s, 1, 0)
	s.Stats().Shots = shots
	s.Victory().Active = false
}

func TestWinUpdatesScore(t *testing.T) {
	s, _ := newTestSim(t)

	steps := []struct {
		shots    int
		wantWins int
		wantBest int
	}{
		{3, 1, 3},
		{5, 2, 3},
		{2, 3, 2},
		{2, 4, 2},
	}

	for _, st := range steps {
		sinkBall(s, st.shots)
		s.Step()

		ball := s.Ball()
		stats := s.Stats()
		if ball.Moving || ball.VX != 0 || ball.VY != 0 {
			t.Errorf("shots=%d: expected ball stopped in the cup", st.shots)
		}
		if stats.Wins != st.wantWins {
			t.Errorf("shots=%d: expected %d wins, got %d", st.shots, st.wantWins, stats.Wins)
		}
		if !stats.HasBest || stats.Best != st.wantBest {
			t.Errorf("shots=%d: expected best %d, got %d (set=%v)", st.shots, st.wantBest, stats.Best, stats.HasBest)
		}
		if n := len(s.Obstacles()); n != ObstacleCount(stats.Wins) {
			t.Errorf("shots=%d: expected %d new obstacles, got %d", st.shots, ObstacleCount(stats.Wins), n)
		}
		if v := s.Victory(); !v.Active || v.Shots != st.shots {
			t.Errorf("shots=%d: expected victory overlay with %d shots, got %+v", st.shots, st.shots, *v)
		}
		if got := len(s.Particles().Items); got < cfg.Particles.Victory.Count {
			t.Errorf("shots=%d: expected victory burst, got %d particles", st.shots, got)
		}
		if s.Status().Kind != components.StatusHoleIn {
			t.Errorf("shots=%d: expected hole in status, got %v", st.shots, s.Status().Kind)
		}
	}
}

func TestWinMovesHole(t *testing.T) {
	s, _ := newTestSim(t)
	sinkBall(s, 1)
	s.Step()

	hole := s.Hole()
	if hole.X == 640 && hole.Y == 360 {
		t.Error("Expected a new hole position after a win")
	}
	m := cfg.Hole.Margin
	if hole.X < m || hole.X > 1280-m || hole.Y < m || hole.Y > 720-m {
		t.Errorf("Expected new hole inside the margin, got (%v, %v)", hole.X, hole.Y)
	}
}

func TestHoleStaysInsideNarrowField(t *testing.T) {
	s, _ := newTestSim(t)
	s.Resize(200, 1000)
	s.ResetLevel()

	hole := s.Hole()
	if hole.X != 100 {
		t.Errorf("Expected hole centred on the narrow axis at 100, got %v", hole.X)
	}
	m := cfg.Hole.Margin
	if hole.Y < m || hole.Y > 1000-m {
		t.Errorf("Expected hole y inside the margin, got %v", hole.Y)
	}
}

func TestResetLevel(t *testing.T) {
	s, _ := newTestSim(t)
	sinkBall(s, 4)
	s.Step()
	s.Stats().Shots = 7

	s.ResetLevel()

	ball := s.Ball()
	stats := s.Stats()
	if ball.X != 192 || ball.Y != 360 || ball.VX != 0 || ball.VY != 0 || ball.Moving {
		t.Errorf("Expected ball at rest on the tee, got %+v", *ball)
	}
	if stats.Shots != 0 {
		t.Errorf("Expected shots reset, got %d", stats.Shots)
	}
	if stats.Wins != 1 || stats.Best != 4 {
		t.Errorf("Expected wins and best kept, got wins=%d best=%d", stats.Wins, stats.Best)
	}
	if n := len(s.Obstacles()); n != 5 {
		t.Errorf("Expected 5 obstacles after one win, got %d", n)
	}
	if len(s.Particles().Items) != 0 {
		t.Error("Expected particles cleared")
	}
	if s.Victory().Active {
		t.Error("Expected victory overlay hidden")
	}
}

func TestNewGame(t *testing.T) {
	s, _ := newTestSim(t)
	sinkBall(s, 2)
	s.Step()

	s.NewGame()

	stats := s.Stats()
	if stats.Wins != 0 || stats.HasBest || stats.Shots != 0 {
		t.Errorf("Expected a clean score, got %+v", *stats)
	}
	if n := len(s.Obstacles()); n != 4 {
		t.Errorf("Expected 4 obstacles on a new game, got %d", n)
	}
}

func TestContinueAfterWin(t *testing.T) {
	s, _ := newTestSim(t)
	sinkBall(s, 2)
	s.Step()

	if s.BeginDrag(s.Ball().X, s.Ball().Y) {
		t.Fatal("Expected aiming blocked behind the victory overlay")
	}
	s.ContinueAfterWin()

	if s.Victory().Active {
		t.Error("Expected victory overlay dismissed")
	}
	if s.Stats().Wins != 1 || s.Stats().Shots != 0 {
		t.Errorf("Expected wins kept and shots reset, got %+v", *s.Stats())
	}
	ball := s.Ball()
	if !s.BeginDrag(ball.X, ball.Y) {
		t.Error("Expected aiming allowed after continuing")
	}
}
