// pkg/collision/collider.go
package collision

import (
	"strconv"

	"github.com/EngoEngine/ecs"
	"github.com/cespare/xxhash/v2"

	"github.com/opd-ai/go-hitbox/pkg/geometry"
	"github.com/opd-ai/go-hitbox/pkg/physics"
)

// ColliderID is a stable collider identity
type ColliderID uint64

func (id ColliderID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Collider pairs an identity with a mutable hitbox. The owning layer keeps
// the hitbox in sync with its entity through SetPosition.
type Collider struct {
	id    ColliderID
	name  string
	shape geometry.BoundingShape
}

// NewCollider creates a collider with a fresh ECS entity identity
func NewCollider(shape geometry.BoundingShape) *Collider {
	return NewColliderFor(ecs.NewBasic(), shape)
}

// NewColliderFor creates a collider that shares the identity of an existing
// ECS entity, so collisions can be mapped back to it.
func NewColliderFor(basic ecs.BasicEntity, shape geometry.BoundingShape) *Collider {
	return &Collider{id: ColliderID(basic.ID()), shape: shape}
}

// NewNamedCollider creates a collider whose ID is derived from name, so
// static scenery keeps the same ID across runs.
func NewNamedCollider(name string, shape geometry.BoundingShape) *Collider {
	return &Collider{id: NamedID(name), name: name, shape: shape}
}

// NamedID returns the ID NewNamedCollider assigns to name
func NamedID(name string) ColliderID {
	return ColliderID(xxhash.Sum64String(name))
}

// ID returns the collider identity
func (c *Collider) ID() ColliderID {
	return c.id
}

// Name returns the name given to NewNamedCollider, or ""
func (c *Collider) Name() string {
	return c.name
}

// Shape returns the hitbox for in-place edits
func (c *Collider) Shape() *geometry.BoundingShape {
	return &c.shape
}

// SetShape replaces the hitbox
func (c *Collider) SetShape(shape geometry.BoundingShape) {
	c.shape = shape
}

// Position returns the centre of the hitbox bounds
func (c *Collider) Position() physics.Vector2D {
	return c.shape.Position()
}

// SetPosition moves the hitbox so its bounds are centred on p
func (c *Collider) SetPosition(p physics.Vector2D) {
	c.shape.SetPosition(p)
}

// Bounds returns the axis-aligned bounds of the hitbox
func (c *Collider) Bounds() geometry.Rectangle {
	return c.shape.Bounds()
}

// Collision is the first overlapping pair found for Subject
type Collision struct {
	Subject ColliderID
	Other   ColliderID
}
