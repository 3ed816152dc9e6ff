package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pixeldrift/boxhopper/components"
	cfg "github.com/pixeldrift/boxhopper/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls raw keyboard state into the InputData singleton.
// Must run before UpdatePlayer in the system order so every other
// system sees one consistent snapshot per tick. A key that is bound to
// no action, or an action with no key held, reads as inactive.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	// Poll all actions. Overlapping bindings OR together: any held key
	// bound to the action activates it.
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		cfg.Debug.ShowBoxes = !cfg.Debug.ShowBoxes
	}
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(ecs.World); ok {
		return components.Input.Get(entry)
	}
	entry := ecs.World.Entry(ecs.Create(cfg.Default, components.Input))
	return components.Input.Get(entry)
}

// GetAction derives the temporal state of an action from the snapshot.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return components.ActionState{
		Pressed:      input.Current[id],
		JustPressed:  input.Current[id] && !input.Previous[id],
		JustReleased: !input.Current[id] && input.Previous[id],
	}
}
