package ui

import (
	"bytes"
	"fmt"
	stdimage "image"
	"image/color"

	"github.com/automoto/coulomb-golf/components"
	cfg "github.com/automoto/coulomb-golf/config"
	"github.com/automoto/coulomb-golf/core"
	"github.com/automoto/coulomb-golf/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ControlPanel is the ebitenui overlay for the course: charge controls,
// level buttons and the score. It also hosts the victory buttons.
type ControlPanel struct {
	UI       *ebitenui.UI
	Sim      *core.Simulation
	Settings *components.SettingsData

	// Callbacks
	OnMenu func()

	// Roots swapped into UI.Container
	expandedRoot  *widget.Container
	collapsedRoot *widget.Container
	victoryRoot   *widget.Container

	// Hit regions for pointer blocking
	panel      *widget.Container
	showButton *widget.Button
	victoryBox *widget.Container

	shotsLabel    *widget.Label
	winsLabel     *widget.Label
	bestLabel     *widget.Label
	chargeLabel   *widget.Label
	victoryLabel  *widget.Label
	chargeButtons []*widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	hidden bool // nothing shown while the victory overlay slides in
}

// NewControlPanel builds the panel for sim; settings holds the visibility toggle.
func NewControlPanel(sim *core.Simulation, settings *components.SettingsData, onMenu func()) *ControlPanel {
	cp := &ControlPanel{
		Sim:      sim,
		Settings: settings,
		OnMenu:   onMenu,
	}

	cp.loadFonts()
	cp.expandedRoot = cp.buildExpanded()
	cp.collapsedRoot = cp.buildCollapsed()
	cp.victoryRoot = cp.buildVictory()

	cp.UI = &ebitenui.UI{
		Container: cp.expandedRoot,
	}
	return cp
}

func (cp *ControlPanel) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	cp.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	cp.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   15,
	}
	cp.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (cp *ControlPanel) buildExpanded() *widget.Container {
	root, slot := anchoredSlot(widget.AnchorLayoutPositionStart, widget.AnchorLayoutPositionStart,
		widget.NewInsetsSimple(int(cfg.HUD.Margin)))

	padding := widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}
	cp.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.HUD.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	cp.panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("COULOMB GOLF", &cp.titleFace, &widget.LabelColor{
			Idle: cfg.Gold,
		}),
	))

	cp.shotsLabel = cp.statLabel()
	cp.winsLabel = cp.statLabel()
	cp.bestLabel = cp.statLabel()
	cp.panel.AddChild(cp.shotsLabel)
	cp.panel.AddChild(cp.winsLabel)
	cp.panel.AddChild(cp.bestLabel)

	cp.panel.AddChild(cp.buildChargeRow())
	cp.panel.AddChild(cp.buildLevelRow())

	cp.panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Drag from the ball to shoot", &cp.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 200, 180, 255},
		}),
	))

	slot.AddChild(cp.panel)
	return root
}

// anchoredSlot returns an anchor-layout root and the padded container placed
// at (h, v) inside it.
func anchoredSlot(h, v widget.AnchorLayoutPosition, pad *widget.Insets) (*widget.Container, *widget.Container) {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	slot := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(pad),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: h,
				VerticalPosition:   v,
			}),
		),
	)
	root.AddChild(slot)
	return root, slot
}

func (cp *ControlPanel) statLabel() *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", &cp.normalFace, &widget.LabelColor{
			Idle: cfg.HUD.TextColor,
		}),
	)
}

func (cp *ControlPanel) buildChargeRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	cp.chargeLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &cp.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)

	minus := cp.button("-", 28, func() {
		cp.Sim.SetCharge(cp.Sim.Ball().Charge - cfg.Input.ChargeStep)
	})
	plus := cp.button("+", 28, func() {
		cp.Sim.SetCharge(cp.Sim.Ball().Charge + cfg.Input.ChargeStep)
	})
	flip := cp.button("Flip", 50, func() {
		cp.Sim.SetCharge(-cp.Sim.Ball().Charge)
	})
	cp.chargeButtons = []*widget.Button{minus, plus, flip}

	row.AddChild(minus)
	row.AddChild(cp.chargeLabel)
	row.AddChild(plus)
	row.AddChild(flip)
	return row
}

func (cp *ControlPanel) buildLevelRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(cp.button("Reset", 60, cp.Sim.ResetLevel))
	row.AddChild(cp.button("New Game", 84, cp.Sim.NewGame))
	row.AddChild(cp.button("Hide", 50, func() {
		cp.Settings.PanelVisible = false
	}))
	return row
}

func (cp *ControlPanel) buildCollapsed() *widget.Container {
	root, slot := anchoredSlot(widget.AnchorLayoutPositionEnd, widget.AnchorLayoutPositionStart,
		widget.NewInsetsSimple(int(cfg.HUD.Margin)))

	cp.showButton = cp.button("Panel", 60, func() {
		cp.Settings.PanelVisible = true
	})
	slot.AddChild(cp.showButton)
	return root
}

func (cp *ControlPanel) buildVictory() *widget.Container {
	root, slot := anchoredSlot(widget.AnchorLayoutPositionCenter, widget.AnchorLayoutPositionEnd,
		&widget.Insets{Bottom: 80})

	padding := widget.Insets{Top: 10, Bottom: 10, Left: 14, Right: 14}
	cp.victoryBox = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.HUD.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	cp.victoryLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &cp.normalFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	cp.victoryBox.AddChild(cp.victoryLabel)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)
	row.AddChild(cp.button("Play again", 110, cp.Sim.ContinueAfterWin))
	row.AddChild(cp.button("Menu", 80, func() {
		if cp.OnMenu != nil {
			cp.OnMenu()
		}
	}))
	cp.victoryBox.AddChild(row)

	slot.AddChild(cp.victoryBox)
	return root
}

func (cp *ControlPanel) button(label string, width int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 26)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &cp.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{30, 90, 50, 255})
	hover := image.NewNineSliceColor(color.RGBA{50, 130, 70, 255})
	pressed := image.NewNineSliceColor(color.RGBA{20, 60, 35, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 50, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Sync refreshes labels and picks the visible root. The victory buttons appear
// once the overlay has finished sliding in.
func (cp *ControlPanel) Sync(victoryReady bool) {
	stats := cp.Sim.Stats()
	ball := cp.Sim.Ball()

	cp.shotsLabel.Label = fmt.Sprintf("Shots: %d", stats.Shots)
	cp.winsLabel.Label = fmt.Sprintf("Wins: %d", stats.Wins)
	cp.bestLabel.Label = "Best: " + stats.BestLabel()
	cp.chargeLabel.Label = fmt.Sprintf("%+4.0f", ball.Charge)
	for _, b := range cp.chargeButtons {
		b.GetWidget().Disabled = ball.Moving
	}

	victory := cp.Sim.Victory()
	cp.victoryLabel.Label = fmt.Sprintf("Hole in %d! %s", victory.Shots, systems.ScoreLine(stats))

	root := cp.collapsedRoot
	switch {
	case victory.Active && victoryReady:
		root = cp.victoryRoot
	case victory.Active:
		root = nil
	case cp.Settings.PanelVisible:
		root = cp.expandedRoot
	}
	if root != nil && cp.UI.Container != root {
		cp.UI.Container = root
	}
	cp.hidden = root == nil
}

// Contains reports whether (x, y) is over a visible widget.
func (cp *ControlPanel) Contains(x, y float64) bool {
	if cp.hidden {
		return false
	}
	var rect stdimage.Rectangle
	switch cp.UI.Container {
	case cp.expandedRoot:
		rect = cp.panel.GetWidget().Rect
	case cp.collapsedRoot:
		rect = cp.showButton.GetWidget().Rect
	case cp.victoryRoot:
		rect = cp.victoryBox.GetWidget().Rect
	}
	return stdimage.Pt(int(x), int(y)).In(rect)
}

func (cp *ControlPanel) Update() {
	if cp.hidden {
		return
	}
	cp.UI.Update()
}

func (cp *ControlPanel) Draw(screen *ebiten.Image) {
	if cp.hidden {
		return
	}
	cp.UI.Draw(screen)
}
