// cmd/hitboxsim/scene.go
package main

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-hitbox/pkg/collision"
	"github.com/opd-ai/go-hitbox/pkg/config"
	"github.com/opd-ai/go-hitbox/pkg/engosys"
	"github.com/opd-ai/go-hitbox/pkg/event"
	"github.com/opd-ai/go-hitbox/pkg/geometry"
	"github.com/opd-ai/go-hitbox/pkg/logging"
	"github.com/opd-ai/go-hitbox/pkg/physics"
	"github.com/opd-ai/go-hitbox/pkg/render"
)

// body is a moving entity driven by its motion state
type body struct {
	ecs.BasicEntity
	common.SpaceComponent
	engosys.HitboxComponent

	name   string
	motion physics.Motion
	half   physics.Vector2D
}

// scene owns the ecs world and everything spawned into it
type scene struct {
	world  *ecs.World
	system *engosys.CollisionSystem
	bus    *event.Bus
	logger *logging.Logger

	bodies []*body
	names  map[collision.ColliderID]string
	lo, hi physics.Vector2D

	collisions int
	rejected   atomic.Int64
	running    atomic.Bool
}

// runSummary is logged when the simulation stops
type runSummary struct {
	Ticks      uint64          `json:"ticks"`
	Collisions int             `json:"collisions"`
	Stats      collision.Stats `json:"stats"`
}

func newScene(cfg *config.Config, logger *logging.Logger) (*scene, error) {
	server := collision.NewServer(cfg.Collision, logger)
	s := &scene{
		world:  &ecs.World{},
		system: engosys.NewCollisionSystem(server, logger),
		bus:    event.NewEventBus(),
		logger: logger.WithComponent("scene"),
		names:  make(map[collision.ColliderID]string),
	}
	s.system.SetEventBus(s.bus)
	s.world.AddSystem(s.system)

	world := server.World()
	s.lo, s.hi = world.Min(), world.Max()

	for i, o := range cfg.Obstacles {
		shape, err := config.BuildBoundingShape(o.Shapes)
		if err != nil {
			return nil, fmt.Errorf("obstacle %d (%s): %w", i, o.Name, err)
		}
		c := collision.NewNamedCollider(o.Name, shape)
		if err := server.Register(c); err != nil {
			return nil, fmt.Errorf("obstacle %d (%s): %w", i, o.Name, err)
		}
		s.names[c.ID()] = o.Name
	}

	for i, b := range cfg.Bodies {
		shape, err := config.BuildBoundingShape(b.Shapes)
		if err != nil {
			return nil, fmt.Errorf("body %d (%s): %w", i, b.Name, err)
		}
		s.spawn(b.Name, shape.Bounds().Center(), b.Velocity.Vector(), shape)
	}

	s.bus.Subscribe(event.CollisionDetected, s.onCollision)
	s.bus.Subscribe(event.IndexRebuilt, func(e event.Event) {
		s.rejected.Store(int64(e.(*event.RebuildEvent).Rejected))
	})
	return s, nil
}

func (s *scene) spawn(name string, center, velocity physics.Vector2D, shape geometry.BoundingShape) {
	bounds := shape.Bounds()
	b := &body{
		BasicEntity: ecs.NewBasic(),
		name:        name,
		motion:      physics.Motion{Position: center, Velocity: velocity},
		half:        bounds.Size.Scale(0.5),
	}
	b.Width = float32(bounds.Size.X)
	b.Height = float32(bounds.Size.Y)
	b.Shape = shape
	b.place()

	s.system.Add(&b.BasicEntity, &b.SpaceComponent, &b.HitboxComponent)
	s.bodies = append(s.bodies, b)
	s.names[collision.ColliderID(b.ID())] = name
}

// place moves the SpaceComponent so its centre is the motion position
func (b *body) place() {
	b.Position = engosys.VectorToPoint(b.motion.Position.Sub(b.half))
}

func (s *scene) step(dt float32) {
	for _, b := range s.bodies {
		b.motion.Step(float64(dt), 0, 0)
		b.motion.WrapWithin(s.lo.Add(b.half), s.hi.Sub(b.half))
		b.place()
	}
	s.world.Update(dt)
}

func (s *scene) onCollision(e event.Event) {
	ev := e.(*event.CollisionEvent)
	s.collisions++
	s.logger.Info(context.Background(), "collision",
		"tick", ev.Tick,
		"subject", s.names[collision.ColliderID(ev.Subject)],
		"other", s.names[collision.ColliderID(ev.Other)])
}

// run advances the scene until ticks have elapsed (0 means no limit) or ctx
// is cancelled. With realtime set, ticks are paced at rate per second.
// onTick, if set, is called after every tick.
func (s *scene) run(ctx context.Context, ticks, rate int, realtime bool, onTick func(tick uint64)) {
	s.running.Store(true)
	defer s.running.Store(false)

	dt := 1 / float32(rate)
	var pace <-chan time.Time
	if realtime {
		ticker := time.NewTicker(time.Second / time.Duration(rate))
		defer ticker.Stop()
		pace = ticker.C
	}

	for n := 0; ticks == 0 || n < ticks; n++ {
		if pace != nil {
			select {
			case <-ctx.Done():
				return
			case <-pace:
			}
		} else if ctx.Err() != nil {
			return
		}
		s.step(dt)
		if onTick != nil {
			onTick(s.system.Tick())
		}
	}
}

// draw renders every collider: bodies by the first letter of their name,
// everything else as '#'.
func (s *scene) draw(r *render.TerminalRenderer) {
	server := s.system.Server()
	r.Clear()
	for _, id := range server.IDs() {
		c, _ := server.Collider(id)
		r.DrawHitbox(*c.Shape(), '#')
	}
	for _, b := range s.bodies {
		symbol := '*'
		if b.name != "" {
			symbol = []rune(b.name)[0]
		}
		r.DrawHitbox(*b.Collider().Shape(), symbol)
	}
}

// extent returns the union of every collider's bounds
func (s *scene) extent() geometry.Rectangle {
	server := s.system.Server()
	var area geometry.Rectangle
	for i, id := range server.IDs() {
		c, _ := server.Collider(id)
		if i == 0 {
			area = c.Bounds()
			continue
		}
		area = area.Union(c.Bounds())
	}
	return area
}

func (s *scene) summary() runSummary {
	return runSummary{
		Ticks:      s.system.Tick(),
		Collisions: s.collisions,
		Stats:      s.system.Server().Stats(),
	}
}
