// pkg/engosys/system.go
package engosys

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-hitbox/pkg/collision"
	"github.com/opd-ai/go-hitbox/pkg/event"
	"github.com/opd-ai/go-hitbox/pkg/geometry"
	"github.com/opd-ai/go-hitbox/pkg/logging"
)

type collisionEntity struct {
	*ecs.BasicEntity
	*common.SpaceComponent
	*HitboxComponent
}

// CollisionSystem runs one rebuild and resolve pass per ecs tick over every
// entity added to it.
type CollisionSystem struct {
	server   *collision.Server
	entities []collisionEntity

	eventBus *event.Bus
	mailbox  *engo.MessageManager
	logger   *logging.Logger

	tick       uint64
	collisions []collision.Collision
}

// NewCollisionSystem creates a system driving server
func NewCollisionSystem(server *collision.Server, logger *logging.Logger) *CollisionSystem {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &CollisionSystem{
		server: server,
		logger: logger.WithComponent("collision_system"),
	}
}

// SetEventBus attaches a bus to the system and its server
func (cs *CollisionSystem) SetEventBus(bus *event.Bus) {
	cs.eventBus = bus
	cs.server.SetEventBus(bus)
}

// SetMailbox sets the engo message manager collisions are dispatched on
func (cs *CollisionSystem) SetMailbox(mailbox *engo.MessageManager) {
	cs.mailbox = mailbox
}

// Server returns the underlying collision server
func (cs *CollisionSystem) Server() *collision.Server {
	return cs.server
}

// Tick returns the number of completed updates
func (cs *CollisionSystem) Tick() uint64 {
	return cs.tick
}

// Collisions returns the collisions found by the last Update
func (cs *CollisionSystem) Collisions() []collision.Collision {
	return cs.collisions
}

// Add registers an entity. The collider shares the entity's ID.
func (cs *CollisionSystem) Add(basic *ecs.BasicEntity, space *common.SpaceComponent, hitbox *HitboxComponent) {
	shape := hitbox.Shape.Clone()
	hitbox.fromSpace = !shape.HasArea()
	if hitbox.fromSpace {
		shape = geometry.NewBoundingShape(ShapeFromSpace(space))
	}

	c := collision.NewColliderFor(*basic, shape)
	if err := cs.server.Register(c); err != nil {
		cs.logger.Warn(context.Background(), "entity not added",
			"entity_id", basic.ID(),
			"error", err.Error())
		return
	}
	hitbox.collider = c
	cs.entities = append(cs.entities, collisionEntity{basic, space, hitbox})
}

// Remove satisfies the ecs.System interface
func (cs *CollisionSystem) Remove(basic ecs.BasicEntity) {
	for i, e := range cs.entities {
		if e.BasicEntity.ID() == basic.ID() {
			cs.server.Unregister(e.collider.ID())
			e.collider = nil
			cs.entities = append(cs.entities[:i], cs.entities[i+1:]...)
			return
		}
	}
}

// Update syncs hitboxes with their SpaceComponents, rebuilds the index and
// resolves every collider.
func (cs *CollisionSystem) Update(dt float32) {
	ctx := context.Background()
	cs.tick++

	for _, e := range cs.entities {
		cs.sync(e)
	}

	cs.server.Rebuild(ctx)
	cs.collisions = cs.server.ResolveAll(ctx)

	for _, col := range cs.collisions {
		if cs.eventBus != nil {
			cs.eventBus.Publish(event.NewCollisionEvent(cs, uint64(col.Subject), uint64(col.Other), cs.tick))
		}
		if cs.mailbox != nil {
			cs.mailbox.Dispatch(CollisionMessage{Subject: col.Subject, Other: col.Other, Tick: cs.tick})
		}
	}
}

// Overlapping returns the registered colliders whose indexed bounds
// intersect box, as of the last Update.
func (cs *CollisionSystem) Overlapping(box engo.AABB) []collision.ColliderID {
	return cs.server.Query(AABBToRectangle(box))
}

func (cs *CollisionSystem) sync(e collisionEntity) {
	switch {
	case e.Static:
	case e.fromSpace:
		e.collider.SetShape(geometry.NewBoundingShape(ShapeFromSpace(e.SpaceComponent)))
	default:
		e.collider.SetPosition(PointToVector(e.SpaceComponent.Center()))
	}
}
