package sim

import (
	"image/color"

	"github.com/paulmach/orb"
	"github.com/yohamta/donburi"

	"github.com/dzz9143/code-math/internal/agent"
)

// Transform places an entity; Position is the center of its square.
type Transform struct {
	Position orb.Point
	Size     float64
}

type Appearance struct {
	Color color.RGBA
}

// Motion is the distance a controllable entity moves per key press.
type Motion struct {
	Speed float64
}

// Pathing gives an entity an agent that plans its way to a target.
type Pathing struct {
	Agent *agent.Agent
	// FollowPlayer retargets the agent at the first controllable entity every
	// tick until an explicit target is given.
	FollowPlayer bool
}

var (
	TransformComponent  = donburi.NewComponentType[Transform]()
	AppearanceComponent = donburi.NewComponentType[Appearance]()
	MotionComponent     = donburi.NewComponentType[Motion]()
	PathingComponent    = donburi.NewComponentType[Pathing]()

	// ControllableTag marks entities driven by keyboard input.
	ControllableTag = donburi.NewTag()
)

var (
	PlayerColor = color.RGBA{R: 200, A: 255}
	EnemyColor  = color.RGBA{G: 200, A: 255}
)
