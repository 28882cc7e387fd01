package systems

import (
	"fmt"

	cfg "github.com/automoto/coulomb-golf/config"
	"github.com/automoto/coulomb-golf/core"
	"github.com/automoto/coulomb-golf/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

const victoryBoxHeight = 140

// VictoryOverlay slides the hole-completed banner down from above the screen.
type VictoryOverlay struct {
	active  bool
	tween   *gween.Tween
	offset  float32 // banner top relative to its resting place
	settled bool
}

// Update follows the victory state and advances the slide by dt seconds.
func (v *VictoryOverlay) Update(active bool, dt float32) {
	if !active {
		v.active, v.tween, v.settled = false, nil, false
		return
	}
	if !v.active {
		v.active = true
		v.tween = gween.New(-victoryBoxHeight*2, 0, cfg.HUD.VictorySlideSec, ease.OutCubic)
	}
	v.offset, v.settled = v.tween.Update(dt)
}

// Settled reports whether the banner has reached its resting place.
func (v *VictoryOverlay) Settled() bool { return v.active && v.settled }

// Offset is the banner's vertical displacement in pixels.
func (v *VictoryOverlay) Offset() float32 { return v.offset }

// NewUpdateVictory drives the overlay from the session's victory state.
func NewUpdateVictory(sim *core.Simulation, overlay *VictoryOverlay) ecs.System {
	return func(e *ecs.ECS) {
		overlay.Update(sim.Victory().Active, float32(1)/float32(ebiten.TPS()))
	}
}

// NewDrawVictory dims the course and draws the sliding banner.
func NewDrawVictory(sim *core.Simulation, overlay *VictoryOverlay) ecs.Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !overlay.active {
			return
		}
		w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
		vector.FillRect(screen, 0, 0, w, h, cfg.HUD.OverlayColor, false)

		top := h/3 - victoryBoxHeight/2 + overlay.Offset()
		vector.FillRect(screen, 0, top, w, victoryBoxHeight, cfg.HUD.PanelColor, false)
		vector.StrokeLine(screen, 0, top, w, top, 2, cfg.Gold, false)
		vector.StrokeLine(screen, 0, top+victoryBoxHeight, w, top+victoryBoxHeight, 2, cfg.Gold, false)

		cx := float64(w) / 2
		drawCentered(screen, "HOLE IN!", fonts.Title.Get(), cx, float64(top)+50, cfg.Gold)
		shots := fmt.Sprintf("Completed in %d shots", sim.Victory().Shots)
		if sim.Victory().Shots == 1 {
			shots = "Hole in one!"
		}
		drawCentered(screen, shots, fonts.Bold.Get(), cx, float64(top)+100, cfg.White)
	}
}
