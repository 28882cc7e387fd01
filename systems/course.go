package systems

import (
	"log"

	cfg "github.com/automoto/coulomb-golf/config"
	"github.com/automoto/coulomb-golf/core"
	"github.com/yohamta/donburi/ecs"
)

// PointerBlocker reports whether a screen point is covered by a UI widget.
type PointerBlocker func(x, y float64) bool

// NewUpdateShot turns pointer presses, drags and releases into aim gestures.
// Presses that land on a blocked region never start a drag.
func NewUpdateShot(sim *core.Simulation, blocked PointerBlocker) ecs.System {
	return func(e *ecs.ECS) {
		p := getOrCreateInput(e).Pointer
		drag := sim.Drag()

		if p.JustPressed && !drag.Active {
			if blocked != nil && blocked(p.X, p.Y) {
				return
			}
			sim.BeginDrag(p.X, p.Y)
			return
		}
		if !drag.Active {
			return
		}
		if p.Down {
			sim.MoveDrag(p.X, p.Y)
			return
		}
		sim.ReleaseDrag(p.X, p.Y)
	}
}

// NewUpdateCourseKeys handles the keyboard shortcuts that mirror the control panel.
func NewUpdateCourseKeys(sim *core.Simulation) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		settings := GetOrCreateSettings(e)

		if GetAction(input, cfg.ActionReset).JustPressed {
			sim.ResetLevel()
		}
		if GetAction(input, cfg.ActionNewGame).JustPressed {
			log.Printf("New game after %d wins", sim.Stats().Wins)
			sim.NewGame()
		}
		if GetAction(input, cfg.ActionChargeUp).JustPressed {
			sim.SetCharge(sim.Ball().Charge + cfg.Input.ChargeStep)
		}
		if GetAction(input, cfg.ActionChargeDown).JustPressed {
			sim.SetCharge(sim.Ball().Charge - cfg.Input.ChargeStep)
		}
		if GetAction(input, cfg.ActionTogglePanel).JustPressed {
			settings.PanelVisible = !settings.PanelVisible
		}
		if GetAction(input, cfg.ActionToggleDebug).JustPressed {
			settings.Debug = !settings.Debug
		}
	}
}

// NewUpdateSimulation advances the course by one step per frame.
func NewUpdateSimulation(sim *core.Simulation) ecs.System {
	return func(e *ecs.ECS) {
		sim.Step()
	}
}
