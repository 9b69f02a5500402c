// Package sim runs the chase demo: a keyboard-driven player and pathing
// enemies on a grid or Voronoi terrain, advanced one tick at a time.
package sim

import (
	"image/color"

	"github.com/flswld/halo/logger"
	"github.com/paulmach/orb"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/dzz9143/code-math/internal/agent"
	"github.com/dzz9143/code-math/internal/nav"
)

// World owns the entities and the terrain they move on. It is not safe for
// concurrent use; all mutation happens inside Tick.
type World struct {
	ecs     donburi.World
	terrain Terrain
	tick    int

	controllables *donburi.Query
	pathers       *donburi.Query
	everything    *donburi.Query
}

func NewWorld(terrain Terrain) *World {
	w := &World{
		ecs:           donburi.NewWorld(),
		terrain:       terrain,
		controllables: donburi.NewQuery(filter.Contains(TransformComponent, MotionComponent, ControllableTag)),
		pathers:       donburi.NewQuery(filter.Contains(TransformComponent, PathingComponent)),
		everything:    donburi.NewQuery(filter.Contains(TransformComponent, AppearanceComponent)),
	}
	AgentEventType.Subscribe(w.ecs, logAgentEvent)
	WallEventType.Subscribe(w.ecs, logWallEvent)
	return w
}

// OnAgentEvent registers an extra subscriber for agent state changes.
func (w *World) OnAgentEvent(fn func(AgentEvent)) {
	AgentEventType.Subscribe(w.ecs, func(_ donburi.World, ev AgentEvent) { fn(ev) })
}

// OnWallEvent registers an extra subscriber for obstacle toggles.
func (w *World) OnWallEvent(fn func(WallEvent)) {
	WallEventType.Subscribe(w.ecs, func(_ donburi.World, ev WallEvent) { fn(ev) })
}

func (w *World) Terrain() Terrain { return w.terrain }

// Ticks returns how many ticks have run.
func (w *World) Ticks() int { return w.tick }

// AddPlayer creates a controllable square.
func (w *World) AddPlayer(pos orb.Point, size, speed float64) donburi.Entity {
	e := w.ecs.Create(TransformComponent, AppearanceComponent, MotionComponent, ControllableTag)
	entry := w.ecs.Entry(e)
	TransformComponent.SetValue(entry, Transform{Position: w.clamp(pos, size), Size: size})
	AppearanceComponent.SetValue(entry, Appearance{Color: PlayerColor})
	MotionComponent.SetValue(entry, Motion{Speed: speed})
	return e
}

// AddEnemy creates a pathing square that chases the player.
func (w *World) AddEnemy(size float64, a *agent.Agent) donburi.Entity {
	e := w.ecs.Create(TransformComponent, AppearanceComponent, PathingComponent)
	entry := w.ecs.Entry(e)
	TransformComponent.SetValue(entry, Transform{Position: a.Position(), Size: size})
	AppearanceComponent.SetValue(entry, Appearance{Color: EnemyColor})
	PathingComponent.SetValue(entry, Pathing{Agent: a, FollowPlayer: true})
	return e
}

// Agent returns the agent of a pathing entity.
func (w *World) Agent(e donburi.Entity) (*agent.Agent, bool) {
	if !w.ecs.Valid(e) {
		return nil, false
	}
	entry := w.ecs.Entry(e)
	if !entry.HasComponent(PathingComponent) {
		return nil, false
	}
	return PathingComponent.Get(entry).Agent, true
}

// Tick advances the simulation by one frame using the given input.
func (w *World) Tick(in InputSnapshot) {
	w.tick++
	w.applyClicks(in.Clicks)
	w.control(in)
	w.path(in.Target)
	AgentEventType.ProcessEvents(w.ecs)
	WallEventType.ProcessEvents(w.ecs)
}

func (w *World) applyClicks(clicks []orb.Point) {
	toggler, ok := w.terrain.(Toggler)
	if !ok || len(clicks) == 0 {
		return
	}

	for _, p := range clicks {
		n, blocked := toggler.ToggleAt(p)
		WallEventType.Publish(w.ecs, WallEvent{Tick: w.tick, Node: n, Blocked: blocked})
	}

	w.pathers.Each(w.ecs, func(entry *donburi.Entry) {
		PathingComponent.Get(entry).Agent.Invalidate()
	})
}

func (w *World) control(in InputSnapshot) {
	w.controllables.Each(w.ecs, func(entry *donburi.Entry) {
		t := TransformComponent.Get(entry)
		speed := MotionComponent.Get(entry).Speed

		x, y := t.Position.X(), t.Position.Y()
		if in.IsKeyDown(KeyRight) {
			x += speed
		}
		if in.IsKeyDown(KeyLeft) {
			x -= speed
		}
		if in.IsKeyDown(KeyUp) {
			y -= speed
		}
		if in.IsKeyDown(KeyDown) {
			y += speed
		}
		t.Position = w.clamp(orb.Point{x, y}, t.Size)
	})
}

func (w *World) path(target *orb.Point) {
	player, hasPlayer := w.playerPosition()
	m := w.terrain.Map()

	w.pathers.Each(w.ecs, func(entry *donburi.Entry) {
		p := PathingComponent.Get(entry)
		switch {
		case target != nil:
			p.FollowPlayer = false
			p.Agent.SetTarget(*target)
		case p.FollowPlayer && hasPlayer:
			p.Agent.SetTarget(player)
		}

		tr := p.Agent.Update(m)
		TransformComponent.Get(entry).Position = p.Agent.Position()

		if tr.Changed() {
			AgentEventType.Publish(w.ecs, AgentEvent{
				Tick:     w.tick,
				Entity:   entry.Entity(),
				From:     tr.From,
				To:       tr.To,
				Position: p.Agent.Position(),
				PathLen:  len(p.Agent.Path()),
			})
		}
	})
}

func (w *World) playerPosition() (orb.Point, bool) {
	var pos orb.Point
	found := false
	w.controllables.Each(w.ecs, func(entry *donburi.Entry) {
		if !found {
			pos = TransformComponent.Get(entry).Position
			found = true
		}
	})
	return pos, found
}

// clamp keeps a square of the given size inside the terrain.
func (w *World) clamp(p orb.Point, size float64) orb.Point {
	bound := w.terrain.Bound()
	half := size / 2
	return orb.Point{
		nav.Clamp(p.X(), bound.Min.X()+half, bound.Max.X()-half),
		nav.Clamp(p.Y(), bound.Min.Y()+half, bound.Max.Y()-half),
	}
}

// View is a read-only snapshot of one entity for a renderer.
type View struct {
	Entity       donburi.Entity
	Position     orb.Point
	Size         float64
	Color        color.RGBA
	Controllable bool
	Pathing      bool
	Heading      float64
	State        agent.State
	Path         nav.Path
}

// Views returns every drawable entity.
func (w *World) Views() []View {
	var views []View
	w.everything.Each(w.ecs, func(entry *donburi.Entry) {
		t := TransformComponent.Get(entry)
		v := View{
			Entity:       entry.Entity(),
			Position:     t.Position,
			Size:         t.Size,
			Color:        AppearanceComponent.Get(entry).Color,
			Controllable: entry.HasComponent(ControllableTag),
		}
		if entry.HasComponent(PathingComponent) {
			a := PathingComponent.Get(entry).Agent
			v.Pathing = true
			v.Heading = a.Heading()
			v.State = a.State()
			v.Path = a.Path()
		}
		views = append(views, v)
	})
	return views
}

// LogSummary writes the current entity states to the log.
func (w *World) LogSummary() {
	for _, v := range w.Views() {
		if v.Pathing {
			logger.Info("tick %v: enemy %v at (%.1f, %.1f) %v, path %v", w.tick, v.Entity, v.Position.X(), v.Position.Y(), v.State, len(v.Path))
		} else {
			logger.Info("tick %v: player %v at (%.1f, %.1f)", w.tick, v.Entity, v.Position.X(), v.Position.Y())
		}
	}
}
