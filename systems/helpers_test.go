package systems

import (
	"github.com/pixeldrift/boxhopper/archetypes"
	"github.com/pixeldrift/boxhopper/assets"
	"github.com/pixeldrift/boxhopper/components"
	cfg "github.com/pixeldrift/boxhopper/config"
	"github.com/pixeldrift/boxhopper/systems/factory"
	"github.com/pixeldrift/boxhopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS builds a world around the given level definition with a
// collision space, a camera, and an empty input snapshot. Tests drive
// the simulation by calling system functions directly instead of
// running the ebitengine loop.
func newTestECS(level *assets.Level) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	levelEntry := archetypes.Level.Spawn(e)
	components.Level.Set(levelEntry, &components.LevelData{CurrentLevel: level})

	factory.CreateSpace(e, int(level.Width), int(level.Height), 16, 16)
	factory.CreateCamera(e)

	// Input singleton with nothing held.
	getOrCreateInput(e)

	return e
}

func testLevel() *assets.Level {
	return &assets.Level{
		Name:   "test",
		Width:  2000,
		Height: 450,
	}
}

// hold marks the given actions as held for the next tick, preserving
// the previous frame for edge queries.
func hold(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, id := range actions {
		input.Current[id] = true
	}
}

func playerState(e *ecs.ECS) (*components.PhysicsData, *components.ObjectData, *components.PlayerData) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		panic("no player in test world")
	}
	return components.Physics.Get(entry), components.Object.Get(entry), components.Player.Get(entry)
}

// runTick advances the simulation by one frame in the same system order
// the scene registers, minus the raw keyboard poll (tests inject the
// snapshot through hold).
func runTick(e *ecs.ECS) {
	UpdatePlayer(e)
	UpdatePhysics(e)
	UpdateCollisions(e)
	UpdatePickups(e)
	UpdateTweens(e)
	UpdateObjects(e)
	UpdateCamera(e)
}
