package geometry

import (
	"math"

	"github.com/opd-ai/go-hitbox/pkg/physics"
)

// ContainingRectangle returns the smallest axis-aligned rectangle covering
// every point. No points yields the zero rectangle.
func ContainingRectangle(points ...physics.Vector2D) Rectangle {
	if len(points) == 0 {
		return Rectangle{}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return RectangleFromMinMax(lo, hi)
}

// ContainingCircle returns a circle centred on the centroid of the points
// whose radius reaches the farthest one. It is not the minimal enclosing
// circle.
func ContainingCircle(points ...physics.Vector2D) Circle {
	if len(points) == 0 {
		return Circle{}
	}
	var center physics.Vector2D
	for _, p := range points {
		center = center.Add(p)
	}
	center = center.Div(float64(len(points)))

	farthest := 0.0
	for _, p := range points {
		farthest = math.Max(farthest, center.Sub(p).LengthSquared())
	}
	return Circle{Center: center, Radius: math.Sqrt(farthest)}
}
