package gamemath

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"Inside", 5, 0, 10, 5},
		{"Below", -3, 0, 10, 0},
		{"Above", 12, 0, 10, 10},
		{"Empty range", 50, 60, 40, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestClampMagnitude(t *testing.T) {
	x, y := ClampMagnitude(3000, 4000, 600)
	if math.Abs(math.Hypot(x, y)-600) > 1e-9 {
		t.Errorf("Expected length 600, got %v", math.Hypot(x, y))
	}
	if math.Abs(x/y-0.75) > 1e-9 {
		t.Errorf("Expected direction to be preserved, got (%v, %v)", x, y)
	}

	x, y = ClampMagnitude(3, 4, 600)
	if x != 3 || y != 4 {
		t.Errorf("Expected short vector unchanged, got (%v, %v)", x, y)
	}
}

func TestConfine(t *testing.T) {
	tests := []struct {
		name    string
		pos     float64
		vel     float64
		wantPos float64
		wantVel float64
	}{
		{"Inside", 400, 10, 400, 10},
		{"Past low wall", 5, -10, 50, 8},
		{"Past high wall", 990, 10, 950, -8},
		{"Exactly on limit", 50, -10, 50, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, vel := Confine(tt.pos, tt.vel, 30, 20, 1000, -0.8)
			if pos != tt.wantPos {
				t.Errorf("Expected pos %v, got %v", tt.wantPos, pos)
			}
			if math.Abs(vel-tt.wantVel) > 1e-9 {
				t.Errorf("Expected vel %v, got %v", tt.wantVel, vel)
			}
		})
	}
}

func TestScale(t *testing.T) {
	if got := Scale(320, 1280, 640); got != 160 {
		t.Errorf("Expected 160, got %v", got)
	}
	if got := Scale(320, 0, 640); got != 320 {
		t.Errorf("Expected unchanged value for zero extent, got %v", got)
	}
}
