package components

import "github.com/yohamta/donburi"

// TelemetryData is the net electric force on the ball from the last tick
type TelemetryData struct {
	FX, FY    float64
	Magnitude float64
	Visible   bool // only while the ball is in flight
}

var Telemetry = donburi.NewComponentType[TelemetryData]()
