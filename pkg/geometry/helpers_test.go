package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opd-ai/go-hitbox/pkg/physics"
)

const delta = 1e-9

var sqrt3 = math.Sqrt(3)

func vec(x, y float64) physics.Vector2D {
	return physics.Vector2D{X: x, Y: y}
}

func deg(d float64) float64 {
	return physics.DegToRad(d)
}

func assertVector(t *testing.T, expected, actual physics.Vector2D) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, "x of %v", actual)
	assert.InDelta(t, expected.Y, actual.Y, delta, "y of %v", actual)
}

func assertRectangle(t *testing.T, expected, actual Rectangle) {
	t.Helper()
	assertVector(t, expected.Origin, actual.Origin)
	assertVector(t, expected.Size, actual.Size)
}
