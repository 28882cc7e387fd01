package components

import (
	cfg "github.com/automoto/coulomb-golf/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PointerData is the merged mouse and touch pointer for the frame
type PointerData struct {
	X, Y         float64
	Down         bool
	JustPressed  bool
	JustReleased bool
	Touch        bool // last pointer event came from a touch screen
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
	Pointer  PointerData
}

var Input = donburi.NewComponentType[InputData]()
