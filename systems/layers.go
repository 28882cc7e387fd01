package systems

import "github.com/yohamta/donburi/ecs"

// LayerDefault is the single render layer; renderers draw in registration order.
const LayerDefault ecs.LayerID = iota
