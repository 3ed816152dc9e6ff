package config

import "github.com/yohamta/donburi/ecs"

// Default is the ECS layer every entity and renderer lives on. The game
// has a single steady-state scene, so one layer is enough.
const Default = ecs.LayerDefault
