package geometry

import (
	"github.com/opd-ai/go-hitbox/pkg/physics"
)

// Interval is the projection of a shape onto an axis
type Interval struct {
	Min float64
	Max float64
}

// Overlaps reports whether two closed intervals share a point
func (i Interval) Overlaps(other Interval) bool {
	return other.Min <= i.Max && i.Min <= other.Max
}

var worldAxes = [2]physics.Vector2D{{X: 1, Y: 0}, {X: 0, Y: 1}}

func projectPoints(points [4]physics.Vector2D, axis physics.Vector2D) Interval {
	first := axis.Dot(points[0])
	res := Interval{Min: first, Max: first}
	for _, p := range points[1:] {
		proj := axis.Dot(p)
		res.Min = min(res.Min, proj)
		res.Max = max(res.Max, proj)
	}
	return res
}

// separatingAxesOverlap reports whether the two convex quads overlap on every
// candidate axis. For a pair of rectangles the edge normals of both are a
// complete axis set, so the result is exact.
func separatingAxesOverlap(a, b [4]physics.Vector2D, axes ...physics.Vector2D) bool {
	for _, axis := range axes {
		if !projectPoints(a, axis).Overlaps(projectPoints(b, axis)) {
			return false
		}
	}
	return true
}
