package components

import "github.com/yohamta/donburi"

type CollectibleData struct {
	Kind      string
	Collected bool
	// BobOffset is a render-only vertical offset driven by the entity's
	// tween. The collision box never moves.
	BobOffset float64
}

var Collectible = donburi.NewComponentType[CollectibleData]()
