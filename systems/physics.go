package systems

import (
	"github.com/pixeldrift/boxhopper/components"
	cfg "github.com/pixeldrift/boxhopper/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances every physics-bearing entity by one tick:
// gravity, position integration, friction, then the hard level bounds.
// Friction is applied after integration so the current frame's move
// still uses the pre-friction speed. Platform landings are resolved
// separately in UpdateCollisions; the floor clamp here is the fallback
// when nothing is under the player.
func UpdatePhysics(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		// Gravity pulls every frame, including mid-jump, which is what
		// makes the arc parabolic.
		physics.SpeedY += physics.Gravity

		obj.X += physics.SpeedX
		obj.Y += physics.SpeedY

		physics.SpeedX *= physics.Friction

		// Hard level walls.
		if obj.X < 0 {
			obj.X = 0
			physics.SpeedX = 0
		}
		if obj.X+obj.W > level.Width {
			obj.X = level.Width - obj.W
			physics.SpeedX = 0
		}

		// Implicit bottom platform at the viewport floor.
		floor := float64(cfg.C.Height)
		if obj.Y+obj.H > floor {
			obj.Y = floor - obj.H
			physics.SpeedY = 0
			physics.Jumping = false
		}
	})
}
