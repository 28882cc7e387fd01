package components

import "github.com/yohamta/donburi"

// SettingsData holds per-session view toggles
type SettingsData struct {
	Debug        bool // draw collision boxes and force vectors
	PanelVisible bool
}

var Settings = donburi.NewComponentType[SettingsData]()
