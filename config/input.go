package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionReset
	ActionNewGame
	ActionTogglePanel
	ActionToggleDebug
	ActionChargeUp
	ActionChargeDown
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds input tuning that is not tied to a device
type InputConfig struct {
	ChargeStep float64 // charge change per key press
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		ChargeStep: 5,
	}
}
