package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	// Abilities collected so far, in pickup order. Duplicates are kept.
	Abilities []string
}

var Player = donburi.NewComponentType[PlayerData]()
