package scenes

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pixeldrift/boxhopper/components"
	cfg "github.com/pixeldrift/boxhopper/config"
	"github.com/pixeldrift/boxhopper/systems"
	"github.com/pixeldrift/boxhopper/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs the whole simulation: one ecs.Update per tick,
// one ecs.Draw per frame, forever. There are no other scenes.
type PlatformerScene struct {
	ecs        *ecs.ECS
	levelIndex int
	once       sync.Once
}

func NewPlatformerScene(levelIndex int) *PlatformerScene {
	return &PlatformerScene{levelIndex: levelIndex}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Clear every frame; the sky fill doubles as the clear.
	screen.Fill(cfg.UI.SkyColor)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Tick order: snapshot input, apply intent, integrate, resolve
	// platform landings, then pickups, then everything derived.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdatePickups)
	e.AddSystem(systems.UpdateTweens)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateCamera)

	// Renderers, back to front.
	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	ps.ecs = e

	// Level data first, then the collision space sized from it.
	levelEntry := factory.CreateLevelAtIndex(ps.ecs, ps.levelIndex)
	level := components.Level.Get(levelEntry).CurrentLevel

	factory.CreateSpace(ps.ecs, int(level.Width), int(level.Height), 16, 16)
	factory.CreateCamera(ps.ecs)

	for _, p := range level.Platforms {
		factory.CreatePlatform(ps.ecs, p.X, p.Y, p.W, p.H)
	}
	for _, c := range level.Collectibles {
		factory.CreateCollectible(ps.ecs, c.X, c.Y, c.W, c.H, c.Kind)
	}

	factory.CreatePlayer(ps.ecs, level.PlayerSpawn.X, level.PlayerSpawn.Y)
}
