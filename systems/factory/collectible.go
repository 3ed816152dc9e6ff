package factory

import (
	"github.com/pixeldrift/boxhopper/archetypes"
	"github.com/pixeldrift/boxhopper/components"
	cfg "github.com/pixeldrift/boxhopper/config"
	"github.com/pixeldrift/boxhopper/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCollectible spawns a collectible of the given ability kind. The
// bob is a render-only offset driven by a looping tween sequence; the
// collision box stays put so pickup checks are position-exact.
func CreateCollectible(ecs *ecs.ECS, x, y, w, h float64, kind string) *donburi.Entry {
	collectible := archetypes.Collectible.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvCollectible)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = collectible

	components.Object.SetValue(collectible, components.ObjectData{Object: obj})
	components.Collectible.SetValue(collectible, components.CollectibleData{
		Kind: kind,
	})

	amp := float32(cfg.Collectible.BobAmplitude)
	tw := gween.NewSequence(
		gween.New(-amp, amp, cfg.Collectible.BobDuration, ease.InOutSine),
		gween.New(amp, -amp, cfg.Collectible.BobDuration, ease.InOutSine),
	)
	tw.SetLoop(-1)
	components.Tween.Set(collectible, tw)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return collectible
}
