package systems

import (
	"github.com/pixeldrift/boxhopper/components"
	cfg "github.com/pixeldrift/boxhopper/config"
	"github.com/pixeldrift/boxhopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns the input snapshot into movement and jump intent.
// It runs before UpdatePhysics; the speeds it writes are integrated
// there in the same tick.
func UpdatePlayer(ecs *ecs.ECS) {
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		handleMovementInput(input, physics)
		handleJumpInput(input, physics)
	})
}

// handleMovementInput accelerates in whole-unit steps while a direction
// is held and the speed is still below the cap. Friction decay in the
// physics step bounds the equilibrium top speed.
func handleMovementInput(input *components.InputData, physics *components.PhysicsData) {
	if GetAction(input, cfg.ActionMoveRight).Pressed && physics.SpeedX < physics.MaxSpeed {
		physics.SpeedX += cfg.Player.Acceleration
	}
	if GetAction(input, cfg.ActionMoveLeft).Pressed && physics.SpeedX > -physics.MaxSpeed {
		physics.SpeedX -= cfg.Player.Acceleration
	}
}

// handleJumpInput launches when jump is held and the player is not
// already airborne from a jump. Holding the key does not double-jump:
// Jumping stays set until a landing clears it.
func handleJumpInput(input *components.InputData, physics *components.PhysicsData) {
	if !GetAction(input, cfg.ActionJump).Pressed {
		return
	}
	if physics.Jumping {
		return
	}
	physics.SpeedY = -cfg.Player.JumpSpeed
	physics.Jumping = true
}
