package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	JumpSpeed    float64
	Acceleration float64 // per-frame speed step while a direction is held
	MaxSpeed     float64

	// Physics
	Gravity  float64
	Friction float64

	// Dimensions
	Width  float64
	Height float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity  float64
	Friction float64 // multiplicative damping in (0,1), applied after integration
}

// CollectibleConfig contains collectible appearance and animation values
type CollectibleConfig struct {
	Radius       float64
	BobAmplitude float64 // vertical draw offset range in pixels
	BobDuration  float32 // seconds for one half bob cycle
	Colors       map[string]color.RGBA
}

// UIConfig contains HUD and world palette configuration values
type UIConfig struct {
	Margin        float64
	LineHeight    float64
	TextColor     color.RGBA
	PlayerColor   color.RGBA
	PlatformColor color.RGBA
	SkyColor      color.RGBA
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	ShowBoxes bool // F1 toggles collision box outlines
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Ability kinds granted by collectibles. Stored on the player in pickup
// order; no de-duplication.
const (
	AbilitySpeed      = "speed"
	AbilityDoubleJump = "doublejump"
	AbilityDash       = "dash"
)

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Collectible CollectibleConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow   = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red      = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	Green    = color.RGBA{R: 60, G: 200, B: 80, A: 255}
	Purple   = color.RGBA{R: 170, G: 80, B: 255, A: 255}
	DarkGray = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 450,
	}

	Physics = PhysicsConfig{
		Gravity:  0.5,
		Friction: 0.8,
	}

	Player = PlayerConfig{
		JumpSpeed:    10.0,
		Acceleration: 1.0,
		MaxSpeed:     5.0,

		Gravity:  Physics.Gravity,
		Friction: Physics.Friction,

		Width:  32,
		Height: 48,
	}

	Collectible = CollectibleConfig{
		Radius:       10,
		BobAmplitude: 4,
		BobDuration:  0.8,
		Colors: map[string]color.RGBA{
			AbilitySpeed:      Yellow,
			AbilityDoubleJump: Green,
			AbilityDash:       Purple,
		},
	}

	UI = UIConfig{
		Margin:        10,
		LineHeight:    16,
		TextColor:     White,
		PlayerColor:   Red,
		PlatformColor: color.RGBA{R: 110, G: 80, B: 50, A: 255},
		SkyColor:      color.RGBA{R: 25, G: 30, B: 55, A: 255},
	}

	Debug = DebugConfig{
		ShowBoxes: false,
	}
}
