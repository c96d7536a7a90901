package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoundingShape() BoundingShape {
	return NewBoundingShape(
		CircleShape(NewCircle(vec(-5, 2), 2.5)),
		RectangleShape(NewRectangle(1, 2, 4, 5)),
		OrientedRectangleShape(NewOrientedRectangle(vec(-1, -1), vec(2, 3), deg(30))),
	)
}

func TestBoundingShapeArea(t *testing.T) {
	var b BoundingShape
	assert.False(t, b.HasArea())
	assert.Equal(t, Rectangle{}, b.Bounds())
	assert.False(t, b.Intersects(CircleShape(NewCircle(vec(0, 0), 100))))

	assert.False(t, b.Add(LineShape(NewLine(vec(0, 0), vec(1, 1)))))
	assert.False(t, b.Add(Shape{}))
	assert.False(t, b.HasArea())

	assert.True(t, b.Add(CircleShape(NewCircle(vec(0, 0), 1))))
	assert.True(t, b.HasArea())
	assert.Equal(t, 1, b.Len())
}

func TestPointInBoundingShape(t *testing.T) {
	b := newTestBoundingShape()

	tests := []struct {
		x, y     float64
		expected bool
	}{
		{3.5, 3.5, true},
		{1.1, 6.9, true},
		{4.9, 2.1, true},
		{5.2, 2.1, false},
		{3, 0.9, false},
		{-6, 1.3, true},
		{-4, 0.8, true},
		{-5.5, 1, true},
		{5.5, 1, false},
		{-5.5, -1, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, b.ContainsPoint(vec(tt.x, tt.y)), "point (%v, %v)", tt.x, tt.y)
	}
}

func TestBoundingShapeIntersections(t *testing.T) {
	b := newTestBoundingShape()

	tests := []struct {
		name     string
		shape    Shape
		expected bool
	}{
		{"circle_origin", CircleShape(NewCircle(vec(0, 0), 1)), true},
		{"circle_right", CircleShape(NewCircle(vec(5, 1.5), 1)), true},
		{"circle_right_low", CircleShape(NewCircle(vec(5, 0.5), 1)), false},
		{"rectangle_gap", RectangleShape(NewRectangle(1, 0.5, 3, 1)), false},
		{"rectangle_oriented_member", RectangleShape(NewRectangle(0.2, 0.5, 3, 1)), true},
		{"oriented_15", OrientedRectangleShape(NewOrientedRectangle(vec(4.8, -1), vec(3, 1), deg(15))), true},
		{"oriented_minus_15", OrientedRectangleShape(NewOrientedRectangle(vec(4.8, -1), vec(3, 1), deg(-15))), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, b.Intersects(tt.shape))
			assert.Equal(t, tt.expected, b.IntersectsBounding(NewBoundingShape(tt.shape)))
		})
	}
}

func TestBoundingShapeBoundsAndPosition(t *testing.T) {
	b := newTestBoundingShape()

	minY := -2 - 3*sqrt3/2
	assertRectangle(t, NewRectangle(-7.5, minY, 12.5, 7-minY), b.Bounds())

	b.SetPosition(vec(1, 0))
	assertVector(t, vec(1, 0), b.Position())

	shapes := b.Shapes()
	require.Len(t, shapes, 3)

	c, ok := shapes[0].Circle()
	require.True(t, ok)
	r, ok := shapes[1].Rectangle()
	require.True(t, ok)
	o, ok := shapes[2].OrientedRectangle()
	require.True(t, ok)

	assertVector(t, vec(-2.75, 0.799038105676658), c.Center)
	assertVector(t, vec(3.25, 0.799038105676658), r.Origin)
	assertVector(t, vec(1.25, -2.200961894323342), o.Center)

	assert.InDelta(t, 2.5, c.Radius, delta)
	assertVector(t, vec(4, 5), r.Size)
	assert.InDelta(t, deg(30), o.Rotation, delta)
}

func TestBoundingShapeClone(t *testing.T) {
	b := newTestBoundingShape()
	clone := b.Clone()
	clone.Translate(vec(10, 0))

	assert.NotEqual(t, b.Bounds(), clone.Bounds())
	assert.InDelta(t, b.Bounds().Origin.X+10, clone.Bounds().Origin.X, delta)
}
