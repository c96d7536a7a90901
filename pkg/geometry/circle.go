// pkg/geometry/circle.go
package geometry

import (
	"github.com/opd-ai/go-hitbox/pkg/physics"
)

// Circle represents a circular collision shape
type Circle struct {
	Center physics.Vector2D
	Radius float64
}

// NewCircle creates a circle at center with the given radius
func NewCircle(center physics.Vector2D, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// Bounds returns the square that encloses the circle
func (c Circle) Bounds() Rectangle {
	r := physics.Vector2D{X: c.Radius, Y: c.Radius}
	return Rectangle{Origin: c.Center.Sub(r), Size: r.Scale(2)}
}

// Translate returns the circle moved by d
func (c Circle) Translate(d physics.Vector2D) Circle {
	return Circle{Center: c.Center.Add(d), Radius: c.Radius}
}

func (c Circle) IntersectsLine(l Line) bool {
	return l.IntersectsCircle(c)
}

// IntersectsCircle checks if two circles touch or overlap
func (c Circle) IntersectsCircle(other Circle) bool {
	radii := c.Radius + other.Radius
	return c.Center.Sub(other.Center).LengthSquared() <= radii*radii
}

// IntersectsRectangle clamps the centre into the rectangle to find the
// closest point and compares its distance with the radius.
func (c Circle) IntersectsRectangle(r Rectangle) bool {
	lo, hi := r.Min(), r.Max()
	closest := physics.Vector2D{
		X: physics.Clamp(c.Center.X, lo.X, hi.X),
		Y: physics.Clamp(c.Center.Y, lo.Y, hi.Y),
	}
	return closest.Sub(c.Center).LengthSquared() <= c.Radius*c.Radius
}

func (c Circle) IntersectsOrientedRectangle(r OrientedRectangle) bool {
	local := Circle{Center: r.toLocal(c.Center), Radius: c.Radius}
	return local.IntersectsRectangle(r.localRectangle())
}
