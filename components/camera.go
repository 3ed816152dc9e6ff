package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	// Position.X is the horizontal scroll offset: the world-space X of
	// the viewport's left edge. Y is unused; the level never scrolls
	// vertically.
	Position math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
