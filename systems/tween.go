package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pixeldrift/boxhopper/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTweens advances collectible bob sequences by one frame and
// stores the resulting draw offset. Collected collectibles stop
// animating; the offset is render-only and never touches the collision
// box.
func UpdateTweens(ecs *ecs.ECS) {
	dt := float32(1.0 / float64(ebiten.TPS()))

	components.Tween.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Collectible) {
			collectible := components.Collectible.Get(e)
			if collectible.Collected {
				return
			}
			seq := components.Tween.Get(e)
			offset, _, _ := seq.Update(dt)
			collectible.BobOffset = float64(offset)
		}
	})
}
