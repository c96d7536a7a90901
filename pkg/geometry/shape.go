// pkg/geometry/shape.go
package geometry

import (
	"github.com/opd-ai/go-hitbox/pkg/physics"
)

// Kind identifies which primitive a Shape holds
type Kind uint8

const (
	KindNone Kind = iota
	KindLine
	KindCircle
	KindRectangle
	KindOrientedRectangle

	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	case KindOrientedRectangle:
		return "oriented_rectangle"
	default:
		return "none"
	}
}

// Shape is a closed variant over the four primitives. Build one with
// LineShape, CircleShape, RectangleShape or OrientedRectangleShape. The zero
// Shape has KindNone, no bounds and intersects nothing.
type Shape struct {
	kind     Kind
	line     Line
	circle   Circle
	rect     Rectangle
	oriented OrientedRectangle
}

func LineShape(l Line) Shape {
	return Shape{kind: KindLine, line: l}
}

func CircleShape(c Circle) Shape {
	return Shape{kind: KindCircle, circle: c}
}

func RectangleShape(r Rectangle) Shape {
	return Shape{kind: KindRectangle, rect: r}
}

func OrientedRectangleShape(r OrientedRectangle) Shape {
	return Shape{kind: KindOrientedRectangle, oriented: r}
}

// Kind returns the active variant
func (s Shape) Kind() Kind {
	return s.kind
}

// Line returns the held segment and whether the shape is a line
func (s Shape) Line() (Line, bool) {
	return s.line, s.kind == KindLine
}

// Circle returns the held circle and whether the shape is a circle
func (s Shape) Circle() (Circle, bool) {
	return s.circle, s.kind == KindCircle
}

// Rectangle returns the held rectangle and whether the shape is one
func (s Shape) Rectangle() (Rectangle, bool) {
	return s.rect, s.kind == KindRectangle
}

// OrientedRectangle returns the held oriented rectangle and whether the
// shape is one
func (s Shape) OrientedRectangle() (OrientedRectangle, bool) {
	return s.oriented, s.kind == KindOrientedRectangle
}

// Bounds returns the axis-aligned bounding rectangle of the active variant
func (s Shape) Bounds() Rectangle {
	switch s.kind {
	case KindLine:
		return s.line.Bounds()
	case KindCircle:
		return s.circle.Bounds()
	case KindRectangle:
		return s.rect.Bounds()
	case KindOrientedRectangle:
		return s.oriented.Bounds()
	default:
		return Rectangle{}
	}
}

// Translate returns the shape moved by d
func (s Shape) Translate(d physics.Vector2D) Shape {
	switch s.kind {
	case KindLine:
		s.line = s.line.Translate(d)
	case KindCircle:
		s.circle = s.circle.Translate(d)
	case KindRectangle:
		s.rect = s.rect.Translate(d)
	case KindOrientedRectangle:
		s.oriented = s.oriented.Translate(d)
	}
	return s
}

// Intersects reports whether s and other overlap
func (s Shape) Intersects(other Shape) bool {
	return Intersects(s, other)
}

// ContainsPoint reports whether p lies inside the shape
func (s Shape) ContainsPoint(p physics.Vector2D) bool {
	return PointInShape(p, s)
}

func (s Shape) String() string {
	switch s.kind {
	case KindLine:
		return "Line{" + s.line.Start.String() + " -> " + s.line.End.String() + "}"
	case KindCircle:
		return "Circle{" + s.circle.Center.String() + ", r=" + formatFloat(s.circle.Radius) + "}"
	case KindRectangle:
		return s.rect.String()
	case KindOrientedRectangle:
		return s.oriented.String()
	default:
		return "Shape{}"
	}
}
