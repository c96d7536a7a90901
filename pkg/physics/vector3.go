// pkg/physics/vector3.go
package physics

import (
	"fmt"
	"math"
)

// Vector3D represents a 3D vector. Collision is planar; the third axis is
// carried for positions owned by scene graphs that track depth.
type Vector3D struct {
	X float64
	Y float64
	Z float64
}

func (v Vector3D) Add(other Vector3D) Vector3D {
	return Vector3D{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vector3D) Sub(other Vector3D) Vector3D {
	return Vector3D{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Mul returns the component-wise product of two vectors
func (v Vector3D) Mul(other Vector3D) Vector3D {
	return Vector3D{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z}
}

func (v Vector3D) Scale(factor float64) Vector3D {
	return Vector3D{X: v.X * factor, Y: v.Y * factor, Z: v.Z * factor}
}

// Div divides the vector by k. k must be non-zero.
func (v Vector3D) Div(k float64) Vector3D {
	return Vector3D{X: v.X / k, Y: v.Y / k, Z: v.Z / k}
}

func (v Vector3D) Dot(other Vector3D) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the right-handed cross product v × other.
func (v Vector3D) Cross(other Vector3D) Vector3D {
	return Vector3D{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vector3D) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vector3D) LengthSquared() float64 {
	return v.Dot(v)
}

func (v Vector3D) Distance(other Vector3D) float64 {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vector3D) Normalize() Vector3D {
	length := v.Length()
	if length == 0 {
		return Vector3D{}
	}
	return v.Div(length)
}

// AngleTo returns the unsigned angle between v and other in radians.
func (v Vector3D) AngleTo(other Vector3D) float64 {
	m := math.Sqrt(v.LengthSquared() * other.LengthSquared())
	return math.Acos(Clamp(v.Dot(other)/m, -1, 1))
}

func (v Vector3D) Project(direction Vector3D) Vector3D {
	return direction.Scale(v.Dot(direction) / direction.LengthSquared())
}

func (v Vector3D) Perpendicular(direction Vector3D) Vector3D {
	return v.Sub(v.Project(direction))
}

// Reflect mirrors v about the plane with the given unit normal.
func (v Vector3D) Reflect(normal Vector3D) Vector3D {
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

// XY drops the Z component.
func (v Vector3D) XY() Vector2D {
	return Vector2D{X: v.X, Y: v.Y}
}

func (v Vector3D) Equal(other Vector3D) bool {
	return ApproxEqual(v.X, other.X) && ApproxEqual(v.Y, other.Y) && ApproxEqual(v.Z, other.Z)
}

func (v Vector3D) String() string {
	return fmt.Sprintf("[%.8f, %.8f, %.8f]", v.X, v.Y, v.Z)
}
