package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pixeldrift/boxhopper/components"
	cfg "github.com/pixeldrift/boxhopper/config"
	"github.com/pixeldrift/boxhopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawWorld renders the level under the camera transform, back to
// front: platforms, then collectibles, then the player. Everything is a
// primitive fill; there are no sprites.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	cameraX := camera.Position.X

	width := float64(screen.Bounds().Dx())

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)

		// Viewport culling: the level is much wider than the screen.
		if obj.X+obj.W < cameraX || obj.X > cameraX+width {
			return
		}

		vector.DrawFilledRect(screen,
			float32(obj.X-cameraX), float32(obj.Y),
			float32(obj.W), float32(obj.H),
			cfg.UI.PlatformColor, false)
	})

	tags.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		collectible := components.Collectible.Get(e)
		if collectible.Collected {
			return
		}

		obj := components.Object.Get(e)
		if obj.X+obj.W < cameraX || obj.X > cameraX+width {
			return
		}

		clr, ok := cfg.Collectible.Colors[collectible.Kind]
		if !ok {
			clr = cfg.White
		}

		cx := obj.X + obj.W/2 - cameraX
		cy := obj.Y + obj.H/2 + collectible.BobOffset
		vector.DrawFilledCircle(screen,
			float32(cx), float32(cy),
			float32(cfg.Collectible.Radius),
			clr, false)
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		vector.DrawFilledRect(screen,
			float32(obj.X-cameraX), float32(obj.Y),
			float32(obj.W), float32(obj.H),
			cfg.UI.PlayerColor, false)
	})
}
