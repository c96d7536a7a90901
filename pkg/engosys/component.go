// pkg/engosys/component.go
package engosys

import (
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-hitbox/pkg/collision"
	"github.com/opd-ai/go-hitbox/pkg/geometry"
	"github.com/opd-ai/go-hitbox/pkg/physics"
)

// HitboxComponent attaches a hitbox to an entity. Leave Shape empty to
// derive the hitbox from the entity's SpaceComponent on every tick.
type HitboxComponent struct {
	Shape geometry.BoundingShape

	// Static hitboxes keep their own position instead of following the
	// SpaceComponent.
	Static bool

	collider  *collision.Collider
	fromSpace bool
}

// Collider returns the collider created when the entity was added to a
// CollisionSystem, or nil.
func (h *HitboxComponent) Collider() *collision.Collider {
	return h.collider
}

// Bounds returns the current bounds of the live hitbox
func (h *HitboxComponent) Bounds() geometry.Rectangle {
	if h.collider != nil {
		return h.collider.Bounds()
	}
	return h.Shape.Bounds()
}

// ShapeFromSpace returns the oriented rectangle covered by space. Rotation is
// taken in degrees around the top-left corner, as engo does.
func ShapeFromSpace(space *common.SpaceComponent) geometry.Shape {
	center := space.Center()
	return geometry.OrientedRectangleShape(geometry.NewOrientedRectangle(
		PointToVector(center),
		physics.Vector2D{X: float64(space.Width) / 2, Y: float64(space.Height) / 2},
		physics.DegToRad(float64(space.Rotation)),
	))
}

// PointToVector converts an engo point
func PointToVector(p engo.Point) physics.Vector2D {
	return physics.Vector2D{X: float64(p.X), Y: float64(p.Y)}
}

// VectorToPoint converts to an engo point
func VectorToPoint(v physics.Vector2D) engo.Point {
	return engo.Point{X: float32(v.X), Y: float32(v.Y)}
}

// AABBToRectangle converts an engo bounding box
func AABBToRectangle(box engo.AABB) geometry.Rectangle {
	return geometry.RectangleFromMinMax(PointToVector(box.Min), PointToVector(box.Max))
}

// RectangleToAABB converts a rectangle to an engo bounding box
func RectangleToAABB(r geometry.Rectangle) engo.AABB {
	return engo.AABB{Min: VectorToPoint(r.Min()), Max: VectorToPoint(r.Max())}
}
