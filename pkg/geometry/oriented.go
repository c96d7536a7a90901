// pkg/geometry/oriented.go
package geometry

import (
	"fmt"

	"github.com/opd-ai/go-hitbox/pkg/physics"
)

// OrientedRectangle is a rectangle centred on Center, spanning
// 2*HalfExtents, rotated counter-clockwise by Rotation radians.
type OrientedRectangle struct {
	Center      physics.Vector2D
	HalfExtents physics.Vector2D
	Rotation    float64
}

// NewOrientedRectangle creates an oriented rectangle
func NewOrientedRectangle(center, halfExtents physics.Vector2D, rotation float64) OrientedRectangle {
	return OrientedRectangle{Center: center, HalfExtents: halfExtents, Rotation: rotation}
}

// Axes returns the rectangle's local x and y axes in world space
func (r OrientedRectangle) Axes() (physics.Vector2D, physics.Vector2D) {
	rot := physics.Rotation2(r.Rotation)
	return physics.Vector2D{X: rot[0][0], Y: rot[0][1]}, physics.Vector2D{X: rot[1][0], Y: rot[1][1]}
}

// Corners returns the four vertices in world space
func (r OrientedRectangle) Corners() [4]physics.Vector2D {
	rot := physics.Rotation2(r.Rotation)
	hx, hy := r.HalfExtents.X, r.HalfExtents.Y
	local := [4]physics.Vector2D{
		{X: -hx, Y: -hy},
		{X: hx, Y: -hy},
		{X: hx, Y: hy},
		{X: -hx, Y: hy},
	}
	for i, v := range local {
		local[i] = v.Transform(rot).Add(r.Center)
	}
	return local
}

// Bounds returns the axis-aligned rectangle enclosing the rotated corners
func (r OrientedRectangle) Bounds() Rectangle {
	c := r.Corners()
	return ContainingRectangle(c[:]...)
}

// Interval projects the rectangle onto axis
func (r OrientedRectangle) Interval(axis physics.Vector2D) Interval {
	return projectPoints(r.Corners(), axis)
}

// Translate returns the rectangle moved by d
func (r OrientedRectangle) Translate(d physics.Vector2D) OrientedRectangle {
	return OrientedRectangle{Center: r.Center.Add(d), HalfExtents: r.HalfExtents, Rotation: r.Rotation}
}

func (r OrientedRectangle) String() string {
	return fmt.Sprintf("OrientedRectangle{center: %v, half_extents: %v, rotation: %.6f}",
		r.Center, r.HalfExtents, r.Rotation)
}

func (r OrientedRectangle) IntersectsLine(l Line) bool {
	return l.IntersectsOrientedRectangle(r)
}

func (r OrientedRectangle) IntersectsCircle(c Circle) bool {
	return c.IntersectsOrientedRectangle(r)
}

func (r OrientedRectangle) IntersectsRectangle(other Rectangle) bool {
	return other.IntersectsOrientedRectangle(r)
}

// IntersectsOrientedRectangle runs SAT over the local axes of both
// rectangles.
func (r OrientedRectangle) IntersectsOrientedRectangle(other OrientedRectangle) bool {
	ax, ay := r.Axes()
	bx, by := other.Axes()
	return separatingAxesOverlap(r.Corners(), other.Corners(), ax, ay, bx, by)
}

// toLocal maps a world point into the frame where the rectangle is
// axis-aligned with its minimum corner at the origin.
func (r OrientedRectangle) toLocal(p physics.Vector2D) physics.Vector2D {
	return p.Sub(r.Center).Transform(physics.Rotation2(-r.Rotation)).Add(r.HalfExtents)
}

// localRectangle is the rectangle as seen from its own frame
func (r OrientedRectangle) localRectangle() Rectangle {
	return Rectangle{Size: r.HalfExtents.Scale(2)}
}
