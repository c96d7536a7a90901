// pkg/geometry/line.go
package geometry

import (
	"math"

	"github.com/opd-ai/go-hitbox/pkg/physics"
)

// Line is a directed segment from Start to End.
type Line struct {
	Start physics.Vector2D
	End   physics.Vector2D
}

// NewLine creates a segment between two points
func NewLine(start, end physics.Vector2D) Line {
	return Line{Start: start, End: end}
}

// Length returns the segment length
func (l Line) Length() float64 {
	return l.End.Sub(l.Start).Length()
}

// LengthSquared returns the squared segment length
func (l Line) LengthSquared() float64 {
	return l.End.Sub(l.Start).LengthSquared()
}

// Bounds returns the smallest axis-aligned rectangle covering the segment
func (l Line) Bounds() Rectangle {
	return ContainingRectangle(l.Start, l.End)
}

// Translate returns the segment moved by d
func (l Line) Translate(d physics.Vector2D) Line {
	return Line{Start: l.Start.Add(d), End: l.End.Add(d)}
}

// IntersectsLine reports whether two segments share at least one point.
// Colinear segments intersect when their extents overlap.
func (l Line) IntersectsLine(other Line) bool {
	o1 := orientation(l.Start, l.End, other.Start)
	o2 := orientation(l.Start, l.End, other.End)
	o3 := orientation(other.Start, other.End, l.Start)
	o4 := orientation(other.Start, other.End, l.End)

	if o1*o2 < 0 && o3*o4 < 0 {
		return true
	}

	return (o1 == 0 && withinSegmentBox(other.Start, l)) ||
		(o2 == 0 && withinSegmentBox(other.End, l)) ||
		(o3 == 0 && withinSegmentBox(l.Start, other)) ||
		(o4 == 0 && withinSegmentBox(l.End, other))
}

// IntersectsCircle projects the circle centre onto the segment, clamps the
// projection to the segment and compares the remaining distance with the
// radius. A zero-length segment is tested as a point.
func (l Line) IntersectsCircle(c Circle) bool {
	ab := l.End.Sub(l.Start)
	t := 0.0
	if lenSq := ab.LengthSquared(); lenSq > 0 {
		t = physics.Clamp(c.Center.Sub(l.Start).Dot(ab)/lenSq, 0, 1)
	}
	closest := l.Start.Add(ab.Scale(t))
	return closest.Sub(c.Center).LengthSquared() <= c.Radius*c.Radius
}

// IntersectsRectangle clips the parametric segment Start + t*(End-Start),
// t in [0, 1], against both slabs of the rectangle.
func (l Line) IntersectsRectangle(r Rectangle) bool {
	lo, hi := r.Min(), r.Max()
	dir := l.End.Sub(l.Start)

	tmin, tmax, ok := clipSlab(l.Start.X, dir.X, lo.X, hi.X, 0, 1)
	if !ok {
		return false
	}
	_, _, ok = clipSlab(l.Start.Y, dir.Y, lo.Y, hi.Y, tmin, tmax)
	return ok
}

// IntersectsOrientedRectangle moves the segment into the rectangle's local
// frame and runs the axis-aligned test there.
func (l Line) IntersectsOrientedRectangle(r OrientedRectangle) bool {
	local := Line{Start: r.toLocal(l.Start), End: r.toLocal(l.End)}
	return local.IntersectsRectangle(r.localRectangle())
}

// clipSlab narrows [tmin, tmax] to the parameter range where
// start + t*dir lies within [lo, hi]. A zero direction component leaves the
// range unbounded when start is inside the slab and empties it otherwise.
func clipSlab(start, dir, lo, hi, tmin, tmax float64) (float64, float64, bool) {
	if dir == 0 {
		return tmin, tmax, start >= lo && start <= hi
	}
	inv := 1 / dir
	t1 := (lo - start) * inv
	t2 := (hi - start) * inv
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	tmin = max(tmin, t1)
	tmax = min(tmax, t2)
	return tmin, tmax, tmin <= tmax
}

// orientation returns the sign of the turn a -> b -> c: 1 counter-clockwise,
// -1 clockwise, 0 colinear within tolerance. The tolerance is relative to
// |ab|*|ac|, so it bounds the sine of the angle at a rather than the area.
func orientation(a, b, c physics.Vector2D) int {
	ab, ac := b.Sub(a), c.Sub(a)
	cross := ab.X*ac.Y - ab.Y*ac.X
	switch {
	case math.Abs(cross) <= physics.Epsilon*ab.Length()*ac.Length():
		return 0
	case cross > 0:
		return 1
	default:
		return -1
	}
}

// withinSegmentBox reports whether p, already known to be colinear with l,
// lies between its endpoints.
func withinSegmentBox(p physics.Vector2D, l Line) bool {
	return PointInRectangle(p, l.Bounds())
}
