package components

import "github.com/yohamta/donburi"

// StatusKind identifies the short message shown in the HUD
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusLevelReset
	StatusAiming
	StatusShotFired
	StatusShotCanceled
	StatusTimeUp
	StatusBallStopped
	StatusHoleIn
)

func (s StatusKind) String() string {
	switch s {
	case StatusLevelReset:
		return "LEVEL RESET"
	case StatusAiming:
		return "AIMING..."
	case StatusShotFired:
		return "SHOT!"
	case StatusShotCanceled:
		return "SHOT CANCELED"
	case StatusTimeUp:
		return "TIME UP"
	case StatusBallStopped:
		return "BALL STOPPED"
	case StatusHoleIn:
		return "HOLE IN!"
	}
	return ""
}

// StatusData is the latest status message and the tick it was raised on
type StatusData struct {
	Kind StatusKind
	Tick int
}

var Status = donburi.NewComponentType[StatusData]()
