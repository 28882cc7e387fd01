package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/coulomb-golf/components"
	"github.com/automoto/coulomb-golf/core"
	"github.com/automoto/coulomb-golf/fonts"
	"github.com/automoto/coulomb-golf/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// debugForceScale converts obstacle force into arrow pixels.
const debugForceScale = 0.2

// NewDrawDebug outlines every resolv object and draws obstacle force vectors.
func NewDrawDebug(sim *core.Simulation) ecs.Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		settings := GetOrCreateSettings(e)
		if !settings.Debug {
			return
		}

		spaceEntry, ok := components.Space.First(e.World)
		if ok {
			space := components.Space.Get(spaceEntry)
			for _, obj := range space.Objects() {
				// Determine color based on tags
				c := color.RGBA{0, 255, 255, 255} // Cyan default
				if obj.HasTags(tags.ResolvBall) {
					c = color.RGBA{0, 0, 255, 255}
				} else if obj.HasTags(tags.ResolvObstacle) {
					c = color.RGBA{255, 0, 0, 255}
				}
				vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
			}
		}

		components.Obstacle.Each(e.World, func(entry *donburi.Entry) {
			obs := components.Obstacle.Get(entry)
			x0, y0 := float32(obs.X), float32(obs.Y)
			x1 := x0 + float32(obs.FX*debugForceScale)
			y1 := y0 + float32(obs.FY*debugForceScale)
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, color.RGBA{255, 255, 0, 255}, false)
		})

		info := fmt.Sprintf("TPS %.0f  FPS %.0f  tick %d  %s  obstacles %d  particles %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), sim.Tick(), sim.Variant,
			len(sim.Obstacles()), len(sim.Particles().Items))
		height := screen.Bounds().Dy()
		text.Draw(screen, info, fonts.Small.Get(), screen.Bounds().Dx()/2-200, height-12, color.White)
	}
}
