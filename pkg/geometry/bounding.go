// pkg/geometry/bounding.go
package geometry

import (
	"slices"

	"github.com/opd-ai/go-hitbox/pkg/physics"
)

// BoundingShape is one hitbox built from an ordered list of primitives.
// An empty BoundingShape has no area and never collides.
//
// Copies share member storage; use Clone before mutating a copy
// independently.
type BoundingShape struct {
	shapes []Shape
}

// NewBoundingShape creates a hitbox from the given members. Members that
// Add would reject are skipped.
func NewBoundingShape(shapes ...Shape) BoundingShape {
	var b BoundingShape
	for _, s := range shapes {
		b.Add(s)
	}
	return b
}

// Add appends a member. Lines and empty shapes have no area and are
// rejected.
func (b *BoundingShape) Add(s Shape) bool {
	switch s.kind {
	case KindCircle, KindRectangle, KindOrientedRectangle:
		b.shapes = append(b.shapes, s)
		return true
	default:
		return false
	}
}

// Shapes returns a copy of the members in insertion order
func (b BoundingShape) Shapes() []Shape {
	return slices.Clone(b.shapes)
}

// Len returns the number of members
func (b BoundingShape) Len() int {
	return len(b.shapes)
}

// HasArea reports whether the hitbox has at least one member
func (b BoundingShape) HasArea() bool {
	return len(b.shapes) > 0
}

// Clone returns a copy that does not share member storage
func (b BoundingShape) Clone() BoundingShape {
	return BoundingShape{shapes: slices.Clone(b.shapes)}
}

// Intersects reports whether any member intersects s
func (b BoundingShape) Intersects(s Shape) bool {
	for _, member := range b.shapes {
		if Intersects(member, s) {
			return true
		}
	}
	return false
}

// IntersectsBounding reports whether any member of b intersects any member
// of other
func (b BoundingShape) IntersectsBounding(other BoundingShape) bool {
	for _, member := range other.shapes {
		if b.Intersects(member) {
			return true
		}
	}
	return false
}

// ContainsPoint reports whether any member contains p
func (b BoundingShape) ContainsPoint(p physics.Vector2D) bool {
	return PointInBoundingShape(p, b)
}

// Bounds returns the union of the members' bounding rectangles. An empty
// hitbox returns the zero rectangle.
func (b BoundingShape) Bounds() Rectangle {
	if len(b.shapes) == 0 {
		return Rectangle{}
	}
	bounds := b.shapes[0].Bounds()
	lo, hi := bounds.Min(), bounds.Max()
	for _, s := range b.shapes[1:] {
		bounds = s.Bounds()
		lo = lo.Min(bounds.Min())
		hi = hi.Max(bounds.Max())
	}
	return RectangleFromMinMax(lo, hi)
}

// Position returns the centre of Bounds
func (b BoundingShape) Position() physics.Vector2D {
	return b.Bounds().Center()
}

// SetPosition moves the hitbox so that Position returns p, keeping the
// members' relative offsets.
func (b *BoundingShape) SetPosition(p physics.Vector2D) {
	if len(b.shapes) == 0 {
		return
	}
	b.Translate(p.Sub(b.Position()))
}

// Translate moves every member by d
func (b *BoundingShape) Translate(d physics.Vector2D) {
	for i := range b.shapes {
		b.shapes[i] = b.shapes[i].Translate(d)
	}
}
