package sim

import (
	"github.com/flswld/halo/logger"
	"github.com/paulmach/orb"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/dzz9143/code-math/internal/agent"
	"github.com/dzz9143/code-math/internal/nav"
)

// AgentEvent is published whenever a pathing agent changes state.
type AgentEvent struct {
	Tick     int
	Entity   donburi.Entity
	From     agent.State
	To       agent.State
	Position orb.Point
	PathLen  int
}

// WallEvent is published for every toggled obstacle.
type WallEvent struct {
	Tick    int
	Node    nav.Node
	Blocked bool
}

var (
	AgentEventType = events.NewEventType[AgentEvent]()
	WallEventType  = events.NewEventType[WallEvent]()
)

func logAgentEvent(_ donburi.World, ev AgentEvent) {
	switch ev.To {
	case agent.Idle:
		logger.Info("tick %v: agent %v idle at (%.1f, %.1f)", ev.Tick, ev.Entity, ev.Position.X(), ev.Position.Y())
	default:
		logger.Debug("tick %v: agent %v %v -> %v, path %v", ev.Tick, ev.Entity, ev.From, ev.To, ev.PathLen)
	}
}

func logWallEvent(_ donburi.World, ev WallEvent) {
	logger.Info("tick %v: node %v blocked=%v", ev.Tick, ev.Node, ev.Blocked)
}
