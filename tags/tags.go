package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Platform    = donburi.NewTag().SetName("Platform")
	Collectible = donburi.NewTag().SetName("Collectible")
)

// Resolv tags for physics objects
const (
	ResolvPlayer      = "player"
	ResolvPlatform    = "platform"
	ResolvCollectible = "collectible"
)
