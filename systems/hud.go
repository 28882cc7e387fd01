package systems

import (
	"fmt"

	"github.com/automoto/coulomb-golf/components"
	cfg "github.com/automoto/coulomb-golf/config"
	"github.com/automoto/coulomb-golf/core"
	"github.com/automoto/coulomb-golf/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// telemetryArrowScale converts force magnitude into arrow pixels.
const telemetryArrowScale = 0.05

// StatusFader fades the latest status message out over a fixed number of ticks.
type StatusFader struct {
	kind  components.StatusKind
	tick  int
	tween *gween.Tween
	alpha float32
}

// Update restarts the fade when a new status is raised and advances it by one tick.
func (f *StatusFader) Update(status *components.StatusData) {
	if status.Kind == components.StatusNone {
		f.alpha = 0
		return
	}
	if f.tween == nil || status.Kind != f.kind || status.Tick != f.tick {
		f.kind, f.tick = status.Kind, status.Tick
		f.tween = gween.New(1, 0, float32(cfg.HUD.StatusFadeTicks), ease.InQuad)
	}
	f.alpha, _ = f.tween.Update(1)
}

// Alpha is the current opacity of the status message.
func (f *StatusFader) Alpha() float32 { return f.alpha }

// NewUpdateHUD advances the HUD animations.
func NewUpdateHUD(sim *core.Simulation, fader *StatusFader) ecs.System {
	return func(e *ecs.ECS) {
		fader.Update(sim.Status())
	}
}

// ScoreLine formats the session score shown in the HUD.
func ScoreLine(stats *components.StatsData) string {
	return fmt.Sprintf("Shots: %d   Wins: %d   Best: %s", stats.Shots, stats.Wins, stats.BestLabel())
}

// ChargeLine formats the ball charge with an explicit sign.
func ChargeLine(q float64) string {
	return fmt.Sprintf("Charge: %+.0f", q)
}

// NewDrawHUD renders the score, status message and force telemetry.
func NewDrawHUD(sim *core.Simulation, fader *StatusFader) ecs.Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		margin := int(cfg.HUD.Margin)
		face := fonts.Regular.Get()
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

		if !GetOrCreateSettings(e).PanelVisible {
			text.Draw(screen, ScoreLine(sim.Stats()), face, margin, margin+14, cfg.HUD.TextColor)
			text.Draw(screen, ChargeLine(sim.Ball().Charge), face, margin, margin+32, chargeColor(sim.Ball().Charge))
		}

		if a := fader.Alpha(); a > 0 {
			msg := sim.Status().Kind.String()
			drawCentered(screen, msg, fonts.Bold.Get(), float64(w)/2, cfg.HUD.Margin+20, fade(cfg.HUD.StatusColor, float64(a)))
		}

		tel := sim.Telemetry()
		if !tel.Visible {
			return
		}
		line := fmt.Sprintf("|F| %.1f   Fx %.1f   Fy %.1f", tel.Magnitude, tel.FX, tel.FY)
		text.Draw(screen, line, face, margin, h-margin, cfg.HUD.TelemetryColor)

		ball := sim.Ball()
		x0, y0 := float32(ball.X), float32(ball.Y)
		x1 := x0 + float32(tel.FX*telemetryArrowScale)
		y1 := y0 + float32(tel.FY*telemetryArrowScale)
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, cfg.HUD.TelemetryColor, true)
	}
}
