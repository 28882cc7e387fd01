package systems

import (
	"image/color"
	"math"

	"github.com/automoto/coulomb-golf/components"
	cfg "github.com/automoto/coulomb-golf/config"
	"github.com/automoto/coulomb-golf/core"
	"github.com/automoto/coulomb-golf/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var (
	holeColor  = color.RGBA{R: 8, G: 20, B: 12, A: 255}
	flagColor  = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	aimColor   = color.RGBA{R: 200, G: 200, B: 200, A: 200}
	meterBack  = color.RGBA{R: 30, G: 30, B: 30, A: 200}
	meterFront = color.RGBA{R: 255, G: 200, B: 40, A: 255}
)

// NewDrawCourse renders the turf, grid, hole, obstacles, particles, ball and aim guide.
func NewDrawCourse(sim *core.Simulation) ecs.Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		screen.DrawImage(turfImage(w, h), nil)
		drawGrid(screen, float32(w), float32(h))
		drawHole(screen, sim.Hole())

		components.Obstacle.Each(sim.World, func(entry *donburi.Entry) {
			drawObstacle(screen, components.Obstacle.Get(entry))
		})
		drawParticles(screen, sim.Particles())
		drawBall(screen, sim.Ball())
		drawAim(screen, sim.Ball(), sim.Drag())
	}
}

func drawGrid(screen *ebiten.Image, w, h float32) {
	step := float32(cfg.HUD.GridSpacing)
	for x := step; x < w; x += step {
		vector.StrokeLine(screen, x, 0, x, h, 1, cfg.HUD.GridColor, false)
	}
	for y := step; y < h; y += step {
		vector.StrokeLine(screen, 0, y, w, y, 1, cfg.HUD.GridColor, false)
	}
}

func drawHole(screen *ebiten.Image, hole *components.HoleData) {
	x, y, r := float32(hole.X), float32(hole.Y), float32(hole.Radius)
	vector.FillCircle(screen, x, y, r, holeColor, true)
	vector.StrokeCircle(screen, x, y, r, 2, cfg.White, true)

	// Flag
	top := y - r*2.5
	vector.StrokeLine(screen, x, y, x, top, 2, cfg.White, true)
	vector.FillRect(screen, x, top, r, r*0.6, flagColor, false)
}

func drawObstacle(screen *ebiten.Image, obs *components.ObstacleData) {
	x, y, r := float32(obs.X), float32(obs.Y), float32(obs.Radius)
	vector.FillCircle(screen, x, y, r, fade(obs.Color, 0.35), true)
	vector.StrokeCircle(screen, x, y, r, 3, obs.Color, true)

	sign := "-"
	if obs.Positive() {
		sign = "+"
	}
	drawCentered(screen, sign, fonts.Title.Get(), obs.X, obs.Y, cfg.White)
}

func drawParticles(screen *ebiten.Image, particles *components.ParticlesData) {
	size := float32(cfg.Particles.Size)
	for _, p := range particles.Items {
		vector.FillRect(screen, float32(p.X)-size/2, float32(p.Y)-size/2, size, size, fade(p.Color, p.Alpha), false)
	}
}

func drawBall(screen *ebiten.Image, ball *components.BallData) {
	x, y, r := float32(ball.X), float32(ball.Y), float32(ball.Radius)
	vector.FillCircle(screen, x, y, r, cfg.White, true)
	vector.StrokeCircle(screen, x, y, r+2, 2, chargeColor(ball.Charge), true)
}

// drawAim shows the launch direction and a power meter while dragging.
func drawAim(screen *ebiten.Image, ball *components.BallData, drag *components.DragData) {
	if !drag.Active {
		return
	}
	dx := drag.StartX - drag.CurrentX
	dy := drag.StartY - drag.CurrentY
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}

	power := core.ShotPower(dist)
	ratio := power / cfg.Shot.MaxPower
	length := 40 + 160*ratio
	ex := ball.X + dx/dist*length
	ey := ball.Y + dy/dist*length
	vector.StrokeLine(screen, float32(ball.X), float32(ball.Y), float32(ex), float32(ey), 2, aimColor, true)
	vector.StrokeLine(screen, float32(drag.StartX), float32(drag.StartY), float32(drag.CurrentX), float32(drag.CurrentY), 1, fade(aimColor, 0.4), true)

	mw, mh := float32(cfg.HUD.MeterWidth), float32(cfg.HUD.MeterHeight)
	mx := float32(ball.X) - mw/2
	my := float32(ball.Y+ball.Radius) + 16
	vector.FillRect(screen, mx, my, mw, mh, meterBack, false)
	vector.FillRect(screen, mx, my, mw*float32(ratio), mh, meterFront, false)
	vector.StrokeRect(screen, mx, my, mw, mh, 1, cfg.White, false)
}

// chargeColor picks the obstacle palette for the sign of q, white for neutral.
func chargeColor(q float64) color.RGBA {
	switch {
	case q > 0:
		return cfg.Obstacle.PositiveColor
	case q < 0:
		return cfg.Obstacle.NegativeColor
	}
	return cfg.White
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// drawCentered draws s with its glyph box centered on (cx, cy).
func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, cy float64, clr color.Color) {
	bounds, _ := font.BoundString(face, s)
	x := int(cx) - (bounds.Min.X+bounds.Max.X).Ceil()/2
	y := int(cy) - (bounds.Min.Y+bounds.Max.Y).Ceil()/2
	text.Draw(screen, s, face, x, y, clr)
}
