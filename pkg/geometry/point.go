// pkg/geometry/point.go
package geometry

import (
	"github.com/opd-ai/go-hitbox/pkg/physics"
)

// PointOnLine reports whether p is colinear with the carrier line of l. The
// slope-intercept comparison is cross-multiplied so vertical lines need no
// special case. A zero-length line only contains its own point.
func PointOnLine(p physics.Vector2D, l Line) bool {
	d := l.End.Sub(l.Start)
	if d.LengthSquared() == 0 {
		return p.Equal(l.Start)
	}
	return physics.ApproxEqual(d.Y*(p.X-l.Start.X), d.X*(p.Y-l.Start.Y))
}

// PointInCircle is strict: points on the circumference are outside.
func PointInCircle(p physics.Vector2D, c Circle) bool {
	return p.Sub(c.Center).LengthSquared() < c.Radius*c.Radius
}

// PointInRectangle is inclusive: points on an edge are inside.
func PointInRectangle(p physics.Vector2D, r Rectangle) bool {
	lo, hi := r.Min(), r.Max()
	return lo.X <= p.X && lo.Y <= p.Y && p.X <= hi.X && p.Y <= hi.Y
}

func PointInOrientedRectangle(p physics.Vector2D, r OrientedRectangle) bool {
	return PointInRectangle(r.toLocal(p), r.localRectangle())
}

// PointInShape dispatches on the variant. Lines use PointOnLine restricted to
// the segment.
func PointInShape(p physics.Vector2D, s Shape) bool {
	switch s.kind {
	case KindLine:
		return PointOnLine(p, s.line) && withinSegmentBox(p, s.line)
	case KindCircle:
		return PointInCircle(p, s.circle)
	case KindRectangle:
		return PointInRectangle(p, s.rect)
	case KindOrientedRectangle:
		return PointInOrientedRectangle(p, s.oriented)
	default:
		return false
	}
}

// PointInBoundingShape reports whether any member of b contains p
func PointInBoundingShape(p physics.Vector2D, b BoundingShape) bool {
	for _, s := range b.shapes {
		if PointInShape(p, s) {
			return true
		}
	}
	return false
}
