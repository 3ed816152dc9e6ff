// Package assets holds the built-in level definitions. Levels are plain
// data with no dependency on ebitengine, donburi, or resolv.
package assets

// PlatformDef is a static platform rectangle.
type PlatformDef struct {
	X, Y, W, H float64
}

// CollectibleDef is a collectible spawn point. Kind is one of the
// ability kinds declared in the config package.
type CollectibleDef struct {
	X, Y, W, H float64
	Kind       string
}

// PlayerSpawn is the player's starting position.
type PlayerSpawn struct {
	X, Y float64
}

// Level is a complete level definition. Width is the horizontal extent
// the camera may scroll across; Height always matches the viewport.
type Level struct {
	Name         string
	Width        float64
	Height       float64
	PlayerSpawn  PlayerSpawn
	Platforms    []PlatformDef
	Collectibles []CollectibleDef
}

// Levels is the built-in level table, in play order.
var Levels = []Level{
	{
		Name:        "meadow",
		Width:       2000,
		Height:      450,
		PlayerSpawn: PlayerSpawn{X: 50, Y: 300},
		Platforms: []PlatformDef{
			{X: 150, Y: 370, W: 140, H: 20},
			{X: 380, Y: 320, W: 120, H: 20},
			{X: 600, Y: 270, W: 120, H: 20},
			{X: 820, Y: 340, W: 160, H: 20},
			{X: 1080, Y: 290, W: 120, H: 20},
			{X: 1320, Y: 240, W: 100, H: 20},
			{X: 1540, Y: 320, W: 140, H: 20},
			{X: 1800, Y: 270, W: 120, H: 20},
		},
		Collectibles: []CollectibleDef{
			{X: 420, Y: 280, W: 20, H: 20, Kind: "speed"},
			{X: 640, Y: 230, W: 20, H: 20, Kind: "doublejump"},
			{X: 1120, Y: 250, W: 20, H: 20, Kind: "dash"},
			{X: 1840, Y: 230, W: 20, H: 20, Kind: "speed"},
		},
	},
	{
		Name:        "ridge",
		Width:       2400,
		Height:      450,
		PlayerSpawn: PlayerSpawn{X: 60, Y: 300},
		Platforms: []PlatformDef{
			{X: 200, Y: 350, W: 100, H: 20},
			{X: 420, Y: 300, W: 100, H: 20},
			{X: 640, Y: 250, W: 100, H: 20},
			{X: 860, Y: 200, W: 100, H: 20},
			{X: 1120, Y: 260, W: 180, H: 20},
			{X: 1420, Y: 330, W: 120, H: 20},
			{X: 1680, Y: 280, W: 120, H: 20},
			{X: 1940, Y: 230, W: 120, H: 20},
			{X: 2200, Y: 300, W: 140, H: 20},
		},
		Collectibles: []CollectibleDef{
			{X: 900, Y: 160, W: 20, H: 20, Kind: "doublejump"},
			{X: 1190, Y: 220, W: 20, H: 20, Kind: "speed"},
			{X: 1720, Y: 240, W: 20, H: 20, Kind: "dash"},
			{X: 2250, Y: 260, W: 20, H: 20, Kind: "dash"},
		},
	},
}
