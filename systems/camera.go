package systems

import (
	"github.com/pixeldrift/boxhopper/components"
	"github.com/pixeldrift/boxhopper/config"
	"github.com/pixeldrift/boxhopper/shared/gamemath"
	"github.com/pixeldrift/boxhopper/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera recomputes the horizontal scroll offset: the player
// centered in the viewport, clamped so the view never leaves the level.
// Near the edges the clamp holds the camera at the boundary.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel

	viewport := float64(config.C.Width)

	// A level narrower than the viewport would invert the clamp range;
	// pin the camera at zero instead.
	maxOffset := level.Width - viewport
	if maxOffset < 0 {
		maxOffset = 0
	}

	camera.Position.X = gamemath.Clamp(playerObj.X-viewport/2, 0, maxOffset)
}
