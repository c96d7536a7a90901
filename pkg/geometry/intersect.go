// pkg/geometry/intersect.go
package geometry

import "strconv"

type intersectFunc func(a, b Shape) bool

// intersectTable holds one predicate per ordered pair of kinds. Entries for
// KindNone stay nil.
var intersectTable [kindCount][kindCount]intersectFunc

func init() {
	pair(KindLine, KindLine, func(a, b Shape) bool { return a.line.IntersectsLine(b.line) })
	pair(KindLine, KindCircle, func(a, b Shape) bool { return a.line.IntersectsCircle(b.circle) })
	pair(KindLine, KindRectangle, func(a, b Shape) bool { return a.line.IntersectsRectangle(b.rect) })
	pair(KindLine, KindOrientedRectangle, func(a, b Shape) bool { return a.line.IntersectsOrientedRectangle(b.oriented) })

	pair(KindCircle, KindCircle, func(a, b Shape) bool { return a.circle.IntersectsCircle(b.circle) })
	pair(KindCircle, KindRectangle, func(a, b Shape) bool { return a.circle.IntersectsRectangle(b.rect) })
	pair(KindCircle, KindOrientedRectangle, func(a, b Shape) bool { return a.circle.IntersectsOrientedRectangle(b.oriented) })

	pair(KindRectangle, KindRectangle, func(a, b Shape) bool { return a.rect.IntersectsRectangle(b.rect) })
	pair(KindRectangle, KindOrientedRectangle, func(a, b Shape) bool { return a.rect.IntersectsOrientedRectangle(b.oriented) })

	pair(KindOrientedRectangle, KindOrientedRectangle, func(a, b Shape) bool {
		return a.oriented.IntersectsOrientedRectangle(b.oriented)
	})
}

// pair installs fn for (a, b) and its mirror for (b, a), so every lookup is
// symmetric by construction.
func pair(a, b Kind, fn intersectFunc) {
	intersectTable[a][b] = fn
	if a != b {
		intersectTable[b][a] = func(x, y Shape) bool { return fn(y, x) }
	}
}

// Intersects reports whether two shapes overlap. Shapes of KindNone never
// intersect anything.
func Intersects(a, b Shape) bool {
	fn := intersectTable[a.kind][b.kind]
	if fn == nil {
		return false
	}
	return fn(a, b)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 8, 64)
}
