package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/coulomb-golf/config"
	"github.com/automoto/coulomb-golf/core"
	"github.com/automoto/coulomb-golf/systems"
	"github.com/automoto/coulomb-golf/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CourseScene is one play session: the simulation, its systems and the control panel.
type CourseScene struct {
	ecs          *ecs.ECS
	sim          *core.Simulation
	panel        *ui.ControlPanel
	sceneChanger SceneChanger
	once         sync.Once

	fader   systems.StatusFader
	victory systems.VictoryOverlay

	width, height int
}

// NewCourseScene creates a course sized to the configured window.
func NewCourseScene(sc SceneChanger) *CourseScene {
	return &CourseScene{
		sceneChanger: sc,
		width:        cfg.C.Width,
		height:       cfg.C.Height,
	}
}

func (cs *CourseScene) Update() {
	cs.once.Do(cs.configure)

	// A drag cannot finish once the window loses the pointer
	if !ebiten.IsFocused() {
		cs.sim.CancelDrag()
	}

	cs.panel.Sync(cs.victory.Settled())
	cs.panel.Update()
	cs.ecs.Update()
}

func (cs *CourseScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
	cs.panel.Draw(screen)
}

// Resize adapts the course to a new canvas size.
func (cs *CourseScene) Resize(width, height int) {
	if width == cs.width && height == cs.height {
		return
	}
	cs.width, cs.height = width, height
	if cs.sim != nil {
		cs.sim.Resize(float64(width), float64(height))
	}
}

func (cs *CourseScene) configure() {
	world := donburi.NewWorld()
	cs.ecs = ecs.NewECS(world)
	cs.sim = core.NewSimulation(world, float64(cs.width), float64(cs.height))

	settings := systems.GetOrCreateSettings(cs.ecs)
	cs.panel = ui.NewControlPanel(cs.sim, settings, cs.backToMenu)

	// Input first so every later system sees this frame's pointer
	cs.ecs.AddSystem(systems.UpdateInput)
	cs.ecs.AddSystem(systems.NewUpdateShot(cs.sim, cs.panel.Contains))
	cs.ecs.AddSystem(systems.NewUpdateCourseKeys(cs.sim))
	cs.ecs.AddSystem(cs.updateBack)
	cs.ecs.AddSystem(systems.NewUpdateSimulation(cs.sim))
	cs.ecs.AddSystem(systems.NewUpdateHUD(cs.sim, &cs.fader))
	cs.ecs.AddSystem(systems.NewUpdateVictory(cs.sim, &cs.victory))

	// Renderers draw in registration order
	cs.ecs.AddRenderer(systems.LayerDefault, systems.NewDrawCourse(cs.sim))
	cs.ecs.AddRenderer(systems.LayerDefault, systems.NewDrawHUD(cs.sim, &cs.fader))
	cs.ecs.AddRenderer(systems.LayerDefault, systems.NewDrawDebug(cs.sim))
	cs.ecs.AddRenderer(systems.LayerDefault, systems.NewDrawVictory(cs.sim, &cs.victory))
}

func (cs *CourseScene) updateBack(e *ecs.ECS) {
	if systems.GetAction(systems.CurrentInput(e), cfg.ActionMenuBack).JustPressed {
		cs.backToMenu()
	}
}

func (cs *CourseScene) backToMenu() {
	cs.sim.CancelDrag()
	stats := cs.sim.Stats()
	log.Printf("Leaving course: %d wins, %d shots on current hole", stats.Wins, stats.Shots)
	cs.sceneChanger.ChangeScene(NewMenuScene(cs.sceneChanger))
}
