package factory

import (
	"testing"

	"github.com/automoto/coulomb-golf/components"
	"github.com/automoto/coulomb-golf/tags"
	"github.com/yohamta/donburi"
)

func newWorldWithSpace() donburi.World {
	w := donburi.NewWorld()
	CreateSpace(w, 1280, 720, 32, 32)
	return w
}

func spaceObjects(t *testing.T, w donburi.World) int {
	t.Helper()
	entry, ok := components.Space.First(w)
	if !ok {
		t.Fatal("Expected a space entity")
	}
	return len(components.Space.Get(entry).Objects())
}

func countObstacles(w donburi.World) int {
	n := 0
	tags.Obstacle.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestCreateBall(t *testing.T) {
	w := newWorldWithSpace()
	entry := CreateBall(w, 192, 360)

	ball := components.Ball.Get(entry)
	if ball.X != 192 || ball.Y != 360 || ball.StartX != 192 || ball.StartY != 360 {
		t.Errorf("Expected ball on the tee at (192, 360), got %+v", ball)
	}
	if ball.Charge != 10 || ball.Radius != 12 {
		t.Errorf("Expected charge 10 and radius 12, got %v and %v", ball.Charge, ball.Radius)
	}

	obj := components.Object.Get(entry)
	if obj.X != 180 || obj.Y != 348 || obj.W != 24 || obj.H != 24 {
		t.Errorf("Expected bounding box (180, 348, 24, 24), got (%v, %v, %v, %v)", obj.X, obj.Y, obj.W, obj.H)
	}
	if !obj.HasTags(tags.ResolvBall) {
		t.Error("Expected ball object to carry the ball tag")
	}
	if spaceObjects(t, w) != 1 {
		t.Errorf("Expected 1 object in space, got %d", spaceObjects(t, w))
	}
}

func TestCreateAndDestroyObstacles(t *testing.T) {
	w := newWorldWithSpace()
	for i := 0; i < 3; i++ {
		CreateObstacle(w, components.ObstacleData{X: 400 + float64(i)*100, Y: 300, Radius: 35, Charge: 25, Mass: 5})
	}

	if n := countObstacles(w); n != 3 {
		t.Fatalf("Expected 3 obstacles, got %d", n)
	}
	if spaceObjects(t, w) != 3 {
		t.Errorf("Expected 3 objects in space, got %d", spaceObjects(t, w))
	}

	DestroyObstacles(w)

	if n := countObstacles(w); n != 0 {
		t.Errorf("Expected no obstacles after destroy, got %d", n)
	}
	if spaceObjects(t, w) != 0 {
		t.Errorf("Expected empty space after destroy, got %d", spaceObjects(t, w))
	}
}

func TestRebuildSpace(t *testing.T) {
	w := newWorldWithSpace()
	CreateBall(w, 192, 360)
	CreateObstacle(w, components.ObstacleData{X: 500, Y: 300, Radius: 40})

	space := RebuildSpace(w, 640, 360, 32, 32)

	if spaceObjects(t, w) != 2 {
		t.Errorf("Expected 2 objects after rebuild, got %d", spaceObjects(t, w))
	}
	components.Object.Each(w, func(e *donburi.Entry) {
		if components.Object.Get(e).Space != space {
			t.Error("Expected every object to point at the rebuilt space")
		}
	})
}

func TestCreateSession(t *testing.T) {
	w := donburi.NewWorld()
	CreateSession(w)
	CreateField(w, 800, 600)

	if _, ok := components.Stats.First(w); !ok {
		t.Error("Expected stats singleton")
	}
	if _, ok := components.Particles.First(w); !ok {
		t.Error("Expected particles singleton")
	}
	field := components.Field.Get(components.Field.MustFirst(w))
	if field.Width != 800 || field.Height != 600 {
		t.Errorf("Expected field 800x600, got %vx%v", field.Width, field.Height)
	}
}
