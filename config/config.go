package config

import "image/color"

// Variant selects how obstacles behave between shots.
type Variant int

const (
	// VariantDynamic obstacles push each other around, respawn on contact and
	// react to the ball in flight.
	VariantDynamic Variant = iota
	// VariantStatic obstacles hover around a fixed base position.
	VariantStatic
)

func (v Variant) String() string {
	switch v {
	case VariantDynamic:
		return "dynamic"
	case VariantStatic:
		return "static"
	}
	return "unknown"
}

// Config holds general game configuration
type Config struct {
	Width   int
	Height  int
	TPS     int
	Variant Variant
}

// PhysicsConfig contains the global simulation constants
type PhysicsConfig struct {
	CoulombK float64 // tuned constant, not the SI value
	DT       float64 // fixed timestep applied once per tick
}

// BallConfig contains player ball configuration values
type BallConfig struct {
	Radius        float64
	DefaultCharge float64
	MinCharge     float64
	MaxCharge     float64

	StartXPercent float64 // start column as a fraction of the field width
	StartYPercent float64

	Friction      float64 // multiplicative damping per tick
	MaxSpeed      float64
	StopEpsilon   float64 // both velocity components below this stop the ball
	WallMargin    float64
	WallBounce    float64 // velocity factor on wall contact
	ForceRange    float64 // no obstacle force beyond this distance
	BounceSpeed   float64 // speed after an obstacle bounce
	BounceNudge   float64 // penetration correction along the bounce angle
	ContactGap    float64 // added to the radius sum for the bounce test
	ForceGap      float64 // added to the radius sum for the minimum force distance
	TrailChance   float64
	CaptureRadius float64 // drag must start this close to the ball centre
}

// ObstacleConfig contains charged obstacle configuration values
type ObstacleConfig struct {
	MinCharge float64 // charge magnitude range [Min, Max)
	MaxCharge float64
	MinRadius float64 // radius range [Min, Max)
	MaxRadius float64
	MaxSpeed  float64 // initial velocity per axis drawn from [-Max, Max)
	Mass      float64

	Friction        float64
	WallMargin      float64
	WallBounce      float64
	BallCouplingGap float64 // minimum ball distance for ball->obstacle force

	PositiveColor color.RGBA
	NegativeColor color.RGBA

	// Static variant hover motion
	HoverAmplitude float64
	HoverSpeed     float64 // radians per millisecond
	HoverPhaseY    float64

	// Static variant base clamp used on resize
	StaticInsetX float64
	StaticInsetY float64
}

// HoleConfig contains target hole configuration values
type HoleConfig struct {
	Radius float64
	Margin float64 // distance kept from the field edges
}

// ShotConfig contains drag-to-shoot configuration values
type ShotConfig struct {
	MaxPower         float64
	PowerSensitivity float64
	MinDragDistance  float64 // releases at or below this are canceled
	DurationMillis   int64   // a shot is force-stopped after this long
}

// BurstConfig describes one kind of particle burst
type BurstConfig struct {
	Count  int
	Life   int
	Spread float64 // velocity per axis drawn from [-Spread/2, Spread/2)
	LiftY  float64 // added to the vertical velocity
	Alpha  float64
}

// ParticleConfig contains visual feedback particle configuration values
type ParticleConfig struct {
	Gravity float64 // added to the vertical velocity every tick

	Collision BurstConfig
	Respawn   BurstConfig
	Victory   BurstConfig
	Trail     BurstConfig

	TrailColor     color.RGBA
	VictoryPalette []color.RGBA
	Size           float64
}

// LevelConfig contains procedural level generation values
type LevelConfig struct {
	BaseObstacles  int
	MaxObstacles   int
	EdgeInsetX     float64
	EdgeInsetY     float64
	StartColumnGap float64 // obstacles stay this far right of the ball start
	PlacementTries int
	SpaceCellSize  int
}

// HUDConfig contains HUD and overlay configuration values
type HUDConfig struct {
	Margin          float64
	TextColor       color.RGBA
	StatusColor     color.RGBA
	TelemetryColor  color.RGBA
	PanelColor      color.RGBA
	OverlayColor    color.RGBA
	MeterWidth      float64
	MeterHeight     float64
	StatusFadeTicks int
	VictorySlideSec float32
	GridSpacing     float64
	GridColor       color.RGBA
	TurfLight       color.RGBA
	TurfDark        color.RGBA
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to the course
	Overlay  bool // Draw resolv objects and force vectors
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Ball BallConfig
var Obstacle ObstacleConfig
var Hole HoleConfig
var Shot ShotConfig
var Particles ParticleConfig
var Level LevelConfig
var HUD HUDConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gold      = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed  = color.RGBA{R: 255, G: 51, B: 51, A: 255}
	Cyan      = color.RGBA{R: 0, G: 204, B: 255, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue  = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

func init() {
	C = &Config{
		Width:   1280,
		Height:  720,
		TPS:     60,
		Variant: VariantDynamic,
	}

	Physics = PhysicsConfig{
		CoulombK: 18000,
		DT:       0.016,
	}

	Ball = BallConfig{
		Radius:        12,
		DefaultCharge: 10,
		MinCharge:     -50,
		MaxCharge:     50,

		StartXPercent: 0.15,
		StartYPercent: 0.5,

		Friction:      0.994,
		MaxSpeed:      600,
		StopEpsilon:   0.05,
		WallMargin:    0,
		WallBounce:    -0.8,
		ForceRange:    400,
		BounceSpeed:   15,
		BounceNudge:   8,
		ContactGap:    5,
		ForceGap:      10,
		TrailChance:   0.2,
		CaptureRadius: 80,
	}

	Obstacle = ObstacleConfig{
		MinCharge: 20,
		MaxCharge: 50,
		MinRadius: 30,
		MaxRadius: 45,
		MaxSpeed:  10,
		Mass:      5,

		Friction:        0.98,
		WallMargin:      20,
		WallBounce:      -0.8,
		BallCouplingGap: 20,

		PositiveColor: LightRed,
		NegativeColor: Cyan,

		HoverAmplitude: 4,
		HoverSpeed:     0.003,
		HoverPhaseY:    0.7,

		StaticInsetX: 100,
		StaticInsetY: 80,
	}

	Hole = HoleConfig{
		Radius: 25,
		Margin: 150,
	}

	Shot = ShotConfig{
		MaxPower:         1200,
		PowerSensitivity: 12,
		MinDragDistance:  10,
		DurationMillis:   5000,
	}

	Particles = ParticleConfig{
		Gravity: 0.2,

		Collision: BurstConfig{Count: 15, Life: 30, Spread: 8, Alpha: 1},
		Respawn:   BurstConfig{Count: 20, Life: 40, Spread: 10, Alpha: 1},
		Victory:   BurstConfig{Count: 80, Life: 80, Spread: 20, LiftY: -5, Alpha: 1},
		Trail:     BurstConfig{Count: 1, Life: 15, Alpha: 0.8},

		TrailColor:     White,
		VictoryPalette: []color.RGBA{Gold, White, Red},
		Size:           3,
	}

	Level = LevelConfig{
		BaseObstacles:  4,
		MaxObstacles:   15,
		EdgeInsetX:     100,
		EdgeInsetY:     80,
		StartColumnGap: 100,
		PlacementTries: 8,
		SpaceCellSize:  32,
	}

	HUD = HUDConfig{
		Margin:          12,
		TextColor:       White,
		StatusColor:     color.RGBA{R: 200, G: 255, B: 200, A: 255},
		TelemetryColor:  color.RGBA{R: 255, G: 255, B: 120, A: 255},
		PanelColor:      color.RGBA{R: 10, G: 30, B: 20, A: 200},
		OverlayColor:    color.RGBA{R: 0, G: 0, B: 0, A: 180},
		MeterWidth:      120,
		MeterHeight:     20,
		StatusFadeTicks: 180,
		VictorySlideSec: 0.6,
		GridSpacing:     50,
		GridColor:       color.RGBA{R: 0, G: 38, B: 38, A: 38},
		TurfLight:       color.RGBA{R: 46, G: 139, B: 87, A: 255},
		TurfDark:        color.RGBA{R: 15, G: 53, B: 32, A: 255},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 53, B: 32, A: 255},
		TitleColor:        Gold,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            180,
		MenuStartY:        320,
		MenuItemHeight:    24,
		MenuItemGap:       16,
	}

	Debug = DebugConfig{}
}
