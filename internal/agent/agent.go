// Package agent implements an entity that follows planned paths toward a
// moving target.
package agent

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/dzz9143/code-math/internal/nav"
)

// State is the agent's position in its seek/follow cycle.
type State int

const (
	// Idle: no target, target reached, or target unreachable.
	Idle State = iota
	// Seeking: a replan is due on the next update.
	Seeking
	// Following: steering toward the cached waypoint.
	Following
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Seeking:
		return "seeking"
	case Following:
		return "following"
	default:
		return "unknown"
	}
}

const (
	DefaultSpeed     = 2.0
	DefaultThreshold = 3.0
)

// Transition records a state change produced by Update.
type Transition struct {
	From State
	To   State
}

// Changed reports whether the update moved the agent to another state.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// Agent steers toward a target by repeatedly asking the planner for a route
// and heading for the next waypoint on it.
type Agent struct {
	position  orb.Point
	velocity  orb.Point
	speed     float64
	threshold float64

	target    orb.Point
	hasTarget bool

	waypoint    nav.Node
	hasWaypoint bool
	path        nav.Path

	state State
}

type Option func(*Agent)

// WithSpeed sets the distance covered per tick.
func WithSpeed(speed float64) Option {
	return func(a *Agent) {
		a.speed = speed
	}
}

// WithThreshold sets how close the agent must get to a waypoint before it
// replans.
func WithThreshold(threshold float64) Option {
	return func(a *Agent) {
		a.threshold = threshold
	}
}

// New creates an idle agent at pos.
func New(pos orb.Point, opts ...Option) *Agent {
	a := &Agent{
		position:  pos,
		speed:     DefaultSpeed,
		threshold: DefaultThreshold,
		state:     Idle,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Agent) Position() orb.Point { return a.position }
func (a *Agent) Velocity() orb.Point { return a.velocity }
func (a *Agent) State() State        { return a.state }
func (a *Agent) Speed() float64      { return a.speed }

// Heading returns the direction of travel in radians.
func (a *Agent) Heading() float64 {
	return math.Atan2(a.velocity.Y(), a.velocity.X())
}

// Target returns the current target, if any.
func (a *Agent) Target() (orb.Point, bool) {
	return a.target, a.hasTarget
}

// Waypoint returns the node the agent is currently steering toward.
func (a *Agent) Waypoint() (nav.Node, bool) {
	return a.waypoint, a.hasWaypoint
}

// Path returns the most recent plan, goal-first. The final approach inside
// the goal node does not plan, so after arrival it still ends at the goal.
func (a *Agent) Path() nav.Path {
	return a.path
}

// SetTarget points the agent at p. A different target, or any target while
// idle without one, schedules a replan.
func (a *Agent) SetTarget(p orb.Point) {
	if a.hasTarget && a.target == p {
		return
	}
	a.target = p
	a.hasTarget = true
	a.state = Seeking
}

// ClearTarget drops the target and stops the agent.
func (a *Agent) ClearTarget() {
	a.hasTarget = false
	a.stop()
}

// Invalidate schedules a replan after the obstacle layout changed. An
// unreachable target becomes worth retrying.
func (a *Agent) Invalidate() {
	if a.hasTarget {
		a.state = Seeking
	}
}

// Teleport moves the agent without steering and schedules a replan.
func (a *Agent) Teleport(p orb.Point) {
	a.position = p
	a.hasWaypoint = false
	a.Invalidate()
}

// Update runs one tick: replan if due, then advance toward the waypoint.
func (a *Agent) Update(m nav.Map) Transition {
	from := a.state

	if a.state == Seeking {
		a.replan(m)
	}
	if a.state == Following {
		a.advance(m)
	}

	return Transition{From: from, To: a.state}
}

func (a *Agent) replan(m nav.Map) {
	if !a.hasTarget {
		a.stop()
		return
	}

	current := m.Index.NodeAt(a.position)
	goal := m.Index.NodeAt(a.target)

	if current == goal {
		// final approach to the center of the goal node; the last plan stays
		if nav.Distance(a.position, m.Index.WorldPositionOf(goal)) <= a.threshold {
			a.stop()
			return
		}
		a.follow(goal)
		return
	}

	a.path = nav.FindPath(m.Graph, m.Passable, current, goal)
	next, ok := a.path.Next()
	if !ok {
		a.stop()
		return
	}
	a.follow(next)
}

func (a *Agent) follow(n nav.Node) {
	a.waypoint = n
	a.hasWaypoint = true
	a.state = Following
}

func (a *Agent) stop() {
	a.velocity = orb.Point{}
	a.hasWaypoint = false
	a.state = Idle
}

// advance moves at most speed units toward the waypoint without overshooting.
func (a *Agent) advance(m nav.Map) {
	dest := m.Index.WorldPositionOf(a.waypoint)
	dx := dest.X() - a.position.X()
	dy := dest.Y() - a.position.Y()
	dist := math.Hypot(dx, dy)

	if dist > 0 {
		step := math.Min(a.speed, dist)
		a.velocity = orb.Point{dx / dist * step, dy / dist * step}
		a.position = orb.Point{a.position.X() + a.velocity.X(), a.position.Y() + a.velocity.Y()}
	} else {
		a.velocity = orb.Point{}
	}

	if nav.Distance(a.position, dest) <= a.threshold {
		a.state = Seeking
	}
}
