package systems

import (
	"github.com/automoto/coulomb-golf/components"
	cfg "github.com/automoto/coulomb-golf/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// keyBindings maps each action to the keys that trigger it
var keyBindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionReset:       {ebiten.KeyR},
	cfg.ActionNewGame:     {ebiten.KeyN},
	cfg.ActionTogglePanel: {ebiten.KeyTab},
	cfg.ActionToggleDebug: {ebiten.KeyF3},
	cfg.ActionChargeUp:    {ebiten.KeyE, ebiten.KeyEqual, ebiten.KeyKPAdd},
	cfg.ActionChargeDown:  {ebiten.KeyQ, ebiten.KeyMinus, ebiten.KeyKPSubtract},
	cfg.ActionMenuUp:      {ebiten.KeyArrowUp, ebiten.KeyW},
	cfg.ActionMenuDown:    {ebiten.KeyArrowDown, ebiten.KeyS},
	cfg.ActionMenuSelect:  {ebiten.KeyEnter, ebiten.KeySpace},
	cfg.ActionMenuBack:    {ebiten.KeyEscape},
}

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE any system that reads actions or the pointer.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, keys := range keyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	updatePointer(&input.Pointer)
}

// updatePointer merges the first touch and the left mouse button into one pointer.
func updatePointer(p *components.PointerData) {
	wasDown := p.Down

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	switch {
	case len(touchIDs) > 0:
		x, y := ebiten.TouchPosition(touchIDs[0])
		p.X, p.Y = float64(x), float64(y)
		p.Down = true
		p.Touch = true
	case p.Touch && wasDown:
		// Lifted finger: release where it was last seen
		p.Down = false
	default:
		x, y := ebiten.CursorPosition()
		p.X, p.Y = float64(x), float64(y)
		p.Down = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		p.Touch = false
	}

	p.JustPressed = p.Down && !wasDown
	p.JustReleased = !p.Down && wasDown
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// CurrentInput exposes the frame's input state to scenes.
func CurrentInput(ecs *ecs.ECS) *components.InputData {
	return getOrCreateInput(ecs)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
