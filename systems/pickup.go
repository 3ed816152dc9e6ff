package systems

import (
	"log"

	"github.com/pixeldrift/boxhopper/components"
	"github.com/pixeldrift/boxhopper/shared/gamemath"
	"github.com/pixeldrift/boxhopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups collects overlapping collectibles. Each collectible
// transitions to collected at most once; its ability kind is appended
// to the player's list in pickup order and the pickup is logged exactly
// once. Collectibles are visited in creation order so simultaneous
// pickups append in list order.
func UpdatePickups(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	playerObj := components.Object.Get(playerEntry)

	tags.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		collectible := components.Collectible.Get(e)
		if collectible.Collected {
			return
		}

		obj := components.Object.Get(e)
		if !gamemath.Overlaps(playerObj.Object, obj.Object) {
			return
		}

		collectible.Collected = true
		player.Abilities = append(player.Abilities, collectible.Kind)
		log.Printf("collected %s", collectible.Kind)
	})
}
