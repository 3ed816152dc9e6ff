package components

import "github.com/yohamta/donburi"

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Gravity  float64
	Friction float64
	MaxSpeed float64
	// Jumping stays set from launch until the player comes to rest on
	// the floor or a platform. Further jump input is ignored while set.
	Jumping bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
