// pkg/geometry/rectangle.go
package geometry

import (
	"fmt"

	"github.com/opd-ai/go-hitbox/pkg/physics"
)

// Rectangle is an axis-aligned rectangle anchored at Origin and spanning
// Size. Size components may be negative, so the corners must always be
// obtained through Min and Max.
type Rectangle struct {
	Origin physics.Vector2D
	Size   physics.Vector2D
}

// NewRectangle creates a rectangle from an origin and a size
func NewRectangle(x, y, width, height float64) Rectangle {
	return Rectangle{
		Origin: physics.Vector2D{X: x, Y: y},
		Size:   physics.Vector2D{X: width, Y: height},
	}
}

// RectangleFromMinMax creates the rectangle spanning two corners
func RectangleFromMinMax(lo, hi physics.Vector2D) Rectangle {
	return Rectangle{Origin: lo, Size: hi.Sub(lo)}
}

// Min returns the lower-left corner
func (r Rectangle) Min() physics.Vector2D {
	return r.Origin.Min(r.Origin.Add(r.Size))
}

// Max returns the upper-right corner
func (r Rectangle) Max() physics.Vector2D {
	return r.Origin.Max(r.Origin.Add(r.Size))
}

// Center returns the midpoint of the rectangle
func (r Rectangle) Center() physics.Vector2D {
	return r.Origin.Add(r.Size.Scale(0.5))
}

// Bounds returns the rectangle itself
func (r Rectangle) Bounds() Rectangle {
	return r
}

// Normalized returns the same area with a non-negative size
func (r Rectangle) Normalized() Rectangle {
	return RectangleFromMinMax(r.Min(), r.Max())
}

// Translate returns the rectangle moved by d
func (r Rectangle) Translate(d physics.Vector2D) Rectangle {
	return Rectangle{Origin: r.Origin.Add(d), Size: r.Size}
}

// Union returns the smallest rectangle covering r and other
func (r Rectangle) Union(other Rectangle) Rectangle {
	return RectangleFromMinMax(r.Min().Min(other.Min()), r.Max().Max(other.Max()))
}

// Corners returns the four vertices counter-clockwise from Min
func (r Rectangle) Corners() [4]physics.Vector2D {
	lo, hi := r.Min(), r.Max()
	return [4]physics.Vector2D{
		{X: lo.X, Y: lo.Y},
		{X: hi.X, Y: lo.Y},
		{X: hi.X, Y: hi.Y},
		{X: lo.X, Y: hi.Y},
	}
}

// Interval projects the rectangle onto axis
func (r Rectangle) Interval(axis physics.Vector2D) Interval {
	return projectPoints(r.Corners(), axis)
}

// Equal compares origin and size with ApproxEqual
func (r Rectangle) Equal(other Rectangle) bool {
	return r.Origin.Equal(other.Origin) && r.Size.Equal(other.Size)
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle{origin: %v, size: %v}", r.Origin, r.Size)
}

func (r Rectangle) IntersectsLine(l Line) bool {
	return l.IntersectsRectangle(r)
}

func (r Rectangle) IntersectsCircle(c Circle) bool {
	return c.IntersectsRectangle(r)
}

// IntersectsRectangle tests interval overlap on both axes. Touching edges
// count as an intersection.
func (r Rectangle) IntersectsRectangle(other Rectangle) bool {
	aMin, aMax := r.Min(), r.Max()
	bMin, bMax := other.Min(), other.Max()
	overX := bMin.X <= aMax.X && aMin.X <= bMax.X
	overY := bMin.Y <= aMax.Y && aMin.Y <= bMax.Y
	return overX && overY
}

// IntersectsRectangleSAT is the separating axis formulation of
// IntersectsRectangle. Both always agree.
func (r Rectangle) IntersectsRectangleSAT(other Rectangle) bool {
	return separatingAxesOverlap(r.Corners(), other.Corners(), worldAxes[:]...)
}

// IntersectsOrientedRectangle runs SAT over the world axes and the two local
// axes of the oriented rectangle.
func (r Rectangle) IntersectsOrientedRectangle(other OrientedRectangle) bool {
	ax, ay := other.Axes()
	return separatingAxesOverlap(r.Corners(), other.Corners(), worldAxes[0], worldAxes[1], ax, ay)
}
