package systems

import (
	"github.com/pixeldrift/boxhopper/components"
	"github.com/pixeldrift/boxhopper/shared/gamemath"
	"github.com/pixeldrift/boxhopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves player-vs-platform landings. A landing
// happens only while falling: the player is snapped so its bottom rests
// on the platform's top, vertical speed is zeroed, and the jump flag
// clears. Rising or sideways overlap is left alone, so platforms have
// no solid sides or undersides.
//
// Platforms are visited in creation order and each overlapping one
// snaps in turn, so when the player overlaps several in one frame the
// last one visited wins. The falling test is taken once, before the
// pass, so the first snap does not mask the rest.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		physics := components.Physics.Get(playerEntry)
		playerObj := components.Object.Get(playerEntry)

		falling := physics.SpeedY > 0
		if !falling {
			return
		}

		tags.Platform.Each(ecs.World, func(platformEntry *donburi.Entry) {
			platObj := components.Object.Get(platformEntry)

			if !gamemath.Overlaps(playerObj.Object, platObj.Object) {
				return
			}

			playerObj.Y = platObj.Y - playerObj.H
			physics.SpeedY = 0
			physics.Jumping = false
		})
	})
}
