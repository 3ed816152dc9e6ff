package factory

import (
	"github.com/pixeldrift/boxhopper/archetypes"
	"github.com/pixeldrift/boxhopper/assets"
	"github.com/pixeldrift/boxhopper/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	return CreateLevelAtIndex(ecs, 0)
}

func CreateLevelAtIndex(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	if len(assets.Levels) == 0 {
		panic("no built-in levels defined")
	}

	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(assets.Levels) {
		levelIndex = 0
	}

	components.Level.Set(level, &components.LevelData{
		CurrentLevel: &assets.Levels[levelIndex],
		LevelIndex:   levelIndex,
	})

	return level
}
