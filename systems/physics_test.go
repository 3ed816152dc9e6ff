package systems

import (
	"testing"

	cfg "github.com/pixeldrift/boxhopper/config"
	"github.com/pixeldrift/boxhopper/systems/factory"
)

func TestGravityAppliesBeforeIntegration(t *testing.T) {
	e := newTestECS(testLevel())
	factory.CreatePlayer(e, 50, 300)
	physics, obj, _ := playerState(e)

	UpdatePhysics(e)

	if physics.SpeedY != cfg.Physics.Gravity {
		t.Errorf("Expected SpeedY %v after one tick at rest, got %v", cfg.Physics.Gravity, physics.SpeedY)
	}
	if obj.Y != 300+cfg.Physics.Gravity {
		t.Errorf("Expected Y %v after integrating the new speed, got %v", 300+cfg.Physics.Gravity, obj.Y)
	}
}

func TestFallSpeedGrowsMonotonically(t *testing.T) {
	e := newTestECS(testLevel())
	factory.CreatePlayer(e, 50, 50)
	physics, _, _ := playerState(e)

	prev := physics.SpeedY
	for i := 0; i < 10; i++ {
		UpdatePhysics(e)
		if physics.SpeedY <= prev {
			t.Fatalf("Expected SpeedY to strictly increase while airborne, got %v after %v", physics.SpeedY, prev)
		}
		prev = physics.SpeedY
	}
}

func TestFrictionAppliesAfterIntegration(t *testing.T) {
	e := newTestECS(testLevel())
	factory.CreatePlayer(e, 100, 100)
	physics, obj, _ := playerState(e)
	physics.SpeedX = 5

	UpdatePhysics(e)

	// The frame's move uses the pre-friction speed.
	if obj.X != 105 {
		t.Errorf("Expected X 105 after moving at pre-friction speed, got %v", obj.X)
	}
	if physics.SpeedX != 5*cfg.Physics.Friction {
		t.Errorf("Expected SpeedX %v after friction, got %v", 5*cfg.Physics.Friction, physics.SpeedX)
	}
}

func TestHorizontalClampAtLevelWalls(t *testing.T) {
	level := testLevel()
	e := newTestECS(level)
	factory.CreatePlayer(e, 2, 100)
	physics, obj, _ := playerState(e)
	physics.SpeedX = -10

	UpdatePhysics(e)

	if obj.X != 0 {
		t.Errorf("Expected X clamped to 0 at the left wall, got %v", obj.X)
	}
	if physics.SpeedX != 0 {
		t.Errorf("Expected SpeedX zeroed at the left wall, got %v", physics.SpeedX)
	}

	obj.X = level.Width - obj.W - 2
	physics.SpeedX = 10
	UpdatePhysics(e)

	if obj.X != level.Width-obj.W {
		t.Errorf("Expected X clamped to %v at the right wall, got %v", level.Width-obj.W, obj.X)
	}
	if physics.SpeedX != 0 {
		t.Errorf("Expected SpeedX zeroed at the right wall, got %v", physics.SpeedX)
	}
	if obj.X < 0 || obj.X > level.Width-obj.W {
		t.Errorf("Horizontal invariant violated: X=%v", obj.X)
	}
}

func TestFloorClampRestsPlayer(t *testing.T) {
	e := newTestECS(testLevel())
	floor := float64(cfg.C.Height)
	factory.CreatePlayer(e, 50, floor-cfg.Player.Height-1)
	physics, obj, _ := playerState(e)
	physics.SpeedY = 8
	physics.Jumping = true

	UpdatePhysics(e)

	if obj.Y != floor-obj.H {
		t.Errorf("Expected Y %v resting on the floor, got %v", floor-obj.H, obj.Y)
	}
	if physics.SpeedY != 0 {
		t.Errorf("Expected SpeedY zeroed on the floor, got %v", physics.SpeedY)
	}
	if physics.Jumping {
		t.Error("Expected Jumping cleared on the floor")
	}
}

func TestRestingPlayerSettlesOnFloor(t *testing.T) {
	e := newTestECS(testLevel())
	factory.CreatePlayer(e, 50, 300)
	physics, obj, _ := playerState(e)

	// Free fall with no input must end at rest on the floor.
	for i := 0; i < 120; i++ {
		hold(e)
		runTick(e)
	}

	floor := float64(cfg.C.Height)
	if obj.Y+obj.H != floor {
		t.Errorf("Expected player bottom at floor %v, got %v", floor, obj.Y+obj.H)
	}
	if physics.SpeedY != 0 || physics.Jumping {
		t.Errorf("Expected player at rest, got SpeedY=%v Jumping=%v", physics.SpeedY, physics.Jumping)
	}
}
