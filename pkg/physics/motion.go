package physics

import "math"

// Motion tracks the kinematic state of a simulated body that owns a hitbox.
type Motion struct {
	Position Vector2D
	Velocity Vector2D
	Heading  float64 // radians
	MaxSpeed float64 // zero disables the speed limit
}

// Step advances the state by deltaTime. thrust accelerates along the heading,
// turnRate rotates the heading (radians per second).
func (m *Motion) Step(deltaTime float64, thrust float64, turnRate float64) {
	// Apply rotation
	m.Heading += turnRate * deltaTime

	if thrust != 0 {
		m.Velocity = m.Velocity.Add(FromAngle(m.Heading, thrust).Scale(deltaTime))
	}

	// Limit speed
	if m.MaxSpeed > 0 && m.Velocity.Length() > m.MaxSpeed {
		m.Velocity = m.Velocity.Normalize().Scale(m.MaxSpeed)
	}

	m.Position = m.Position.Add(m.Velocity.Scale(deltaTime))
}

// WrapWithin moves the position back inside [lo, hi] on each axis by
// wrapping around the opposite edge.
func (m *Motion) WrapWithin(lo, hi Vector2D) {
	m.Position.X = wrap(m.Position.X, lo.X, hi.X)
	m.Position.Y = wrap(m.Position.Y, lo.Y, hi.Y)
}

func wrap(v, lo, hi float64) float64 {
	span := hi - lo
	if span <= 0 {
		return lo
	}
	if v >= lo && v <= hi {
		return v
	}
	r := math.Mod(v-lo, span)
	if r < 0 {
		r += span
	}
	return lo + r
}
