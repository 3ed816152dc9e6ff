package factory

import (
	"github.com/pixeldrift/boxhopper/archetypes"
	"github.com/pixeldrift/boxhopper/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
