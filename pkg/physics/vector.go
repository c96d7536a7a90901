// pkg/physics/vector.go
package physics

import (
	"fmt"
	"math"
)

// Vector2D represents a 2D vector with x and y components
type Vector2D struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Mul returns the component-wise product of two vectors
func (v Vector2D) Mul(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X * other.X,
		Y: v.Y * other.Y,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// Div divides the vector by k. k must be non-zero.
func (v Vector2D) Div(k float64) Vector2D {
	return Vector2D{
		X: v.X / k,
		Y: v.Y / k,
	}
}

// Dot returns the dot product of two vectors
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns magnitude squared (optimization for comparisons)
func (v Vector2D) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the distance between two vectors
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vector2D) Normalize() Vector2D {
	length := v.Length()
	if length == 0 {
		return Vector2D{}
	}
	return v.Div(length)
}

// Angle returns the heading of the vector in radians
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleTo returns the unsigned angle between v and other in radians.
// Both vectors must have a non-zero length.
func (v Vector2D) AngleTo(other Vector2D) float64 {
	m := math.Sqrt(v.LengthSquared() * other.LengthSquared())
	return math.Acos(Clamp(v.Dot(other)/m, -1, 1))
}

// Project returns the projection of v onto direction.
// direction must have a non-zero length.
func (v Vector2D) Project(direction Vector2D) Vector2D {
	return direction.Scale(v.Dot(direction) / direction.LengthSquared())
}

// Perpendicular returns the component of v orthogonal to direction.
func (v Vector2D) Perpendicular(direction Vector2D) Vector2D {
	return v.Sub(v.Project(direction))
}

// Reflect mirrors v about the plane with the given unit normal.
func (v Vector2D) Reflect(normal Vector2D) Vector2D {
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

// Rotate rotates the vector counter-clockwise by angle (in radians)
func (v Vector2D) Rotate(angle float64) Vector2D {
	return v.Transform(Rotation2(angle))
}

// Min returns the component-wise minimum of two vectors
func (v Vector2D) Min(other Vector2D) Vector2D {
	return Vector2D{X: math.Min(v.X, other.X), Y: math.Min(v.Y, other.Y)}
}

// Max returns the component-wise maximum of two vectors
func (v Vector2D) Max(other Vector2D) Vector2D {
	return Vector2D{X: math.Max(v.X, other.X), Y: math.Max(v.Y, other.Y)}
}

// Equal reports whether both components are ApproxEqual.
func (v Vector2D) Equal(other Vector2D) bool {
	return ApproxEqual(v.X, other.X) && ApproxEqual(v.Y, other.Y)
}

// String implements fmt.Stringer
func (v Vector2D) String() string {
	return fmt.Sprintf("[%.8f, %.8f]", v.X, v.Y)
}

// FromAngle creates a vector from an angle and magnitude
func FromAngle(angle float64, magnitude float64) Vector2D {
	return Vector2D{
		X: magnitude * math.Cos(angle),
		Y: magnitude * math.Sin(angle),
	}
}
