package systems

import (
	"github.com/pixeldrift/boxhopper/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects syncs every resolv object's cell registration with the
// position the simulation wrote this tick.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
