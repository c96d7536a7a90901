// pkg/physics/matrix.go
package physics

import (
	"fmt"
	"math"
)

// Matrix2 is a row-major 2x2 matrix. Vectors are rows and multiply from
// the left, so v.Transform(a.Mul(b)) applies a first and then b.
type Matrix2 [2][2]float64

// Identity2 returns the 2x2 identity matrix
func Identity2() Matrix2 {
	return Matrix2{{1, 0}, {0, 1}}
}

// Rotation2 returns the matrix rotating row vectors counter-clockwise by
// angle radians.
func Rotation2(angle float64) Matrix2 {
	sin, cos := math.Sincos(angle)
	return Matrix2{
		{cos, sin},
		{-sin, cos},
	}
}

func (m Matrix2) Transpose() Matrix2 {
	return Matrix2{
		{m[0][0], m[1][0]},
		{m[0][1], m[1][1]},
	}
}

// Scale multiplies every element by k
func (m Matrix2) Scale(k float64) Matrix2 {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= k
		}
	}
	return m
}

// Mul returns the product m × other
func (m Matrix2) Mul(other Matrix2) Matrix2 {
	var res Matrix2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			res[i][j] = m[i][0]*other[0][j] + m[i][1]*other[1][j]
		}
	}
	return res
}

func (m Matrix2) Determinant() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Minor returns the matrix of minors. For a 2x2 matrix each minor is the
// single element left after removing its row and column.
func (m Matrix2) Minor() Matrix2 {
	return Matrix2{
		{m[1][1], m[1][0]},
		{m[0][1], m[0][0]},
	}
}

func (m Matrix2) Cofactor() Matrix2 {
	return cofactor2(m.Minor())
}

// Adjugate is the transposed cofactor matrix
func (m Matrix2) Adjugate() Matrix2 {
	return m.Cofactor().Transpose()
}

// Inverse returns the inverse of m and false when m is singular
func (m Matrix2) Inverse() (Matrix2, bool) {
	det := m.Determinant()
	if ApproxEqual(det, 0) {
		return Matrix2{}, false
	}
	return m.Adjugate().Scale(1 / det), true
}

// Equal compares element-wise with ApproxEqual
func (m Matrix2) Equal(other Matrix2) bool {
	for i := range m {
		for j := range m[i] {
			if !ApproxEqual(m[i][j], other[i][j]) {
				return false
			}
		}
	}
	return true
}

func (m Matrix2) String() string {
	return fmt.Sprintf("[%.6f %.6f; %.6f %.6f]", m[0][0], m[0][1], m[1][0], m[1][1])
}

// Transform returns the row vector v multiplied by m
func (v Vector2D) Transform(m Matrix2) Vector2D {
	return Vector2D{
		X: v.X*m[0][0] + v.Y*m[1][0],
		Y: v.X*m[0][1] + v.Y*m[1][1],
	}
}

func cofactor2(minor Matrix2) Matrix2 {
	for i := range minor {
		for j := range minor[i] {
			if (i+j)%2 == 1 {
				minor[i][j] = -minor[i][j]
			}
		}
	}
	return minor
}

// Matrix3 is a row-major 3x3 matrix with the same row vector convention
// as Matrix2.
type Matrix3 [3][3]float64

// Identity3 returns the 3x3 identity matrix
func Identity3() Matrix3 {
	return Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// RotationX rotates about the x axis by angle radians
func RotationX(angle float64) Matrix3 {
	sin, cos := math.Sincos(angle)
	return Matrix3{
		{1, 0, 0},
		{0, cos, sin},
		{0, -sin, cos},
	}
}

// RotationY rotates about the y axis by angle radians
func RotationY(angle float64) Matrix3 {
	sin, cos := math.Sincos(angle)
	return Matrix3{
		{cos, 0, -sin},
		{0, 1, 0},
		{sin, 0, cos},
	}
}

// RotationZ rotates about the z axis by angle radians. Its upper-left
// block is Rotation2(angle).
func RotationZ(angle float64) Matrix3 {
	sin, cos := math.Sincos(angle)
	return Matrix3{
		{cos, sin, 0},
		{-sin, cos, 0},
		{0, 0, 1},
	}
}

// RotationAxis rotates about an arbitrary axis by angle radians. The axis
// is normalized first; a zero axis yields the identity.
func RotationAxis(axis Vector3D, angle float64) Matrix3 {
	if axis.LengthSquared() == 0 {
		return Identity3()
	}
	a := axis.Normalize()
	sin, cos := math.Sincos(angle)
	t := 1 - cos
	return Matrix3{
		{t*a.X*a.X + cos, t*a.X*a.Y + sin*a.Z, t*a.X*a.Z - sin*a.Y},
		{t*a.X*a.Y - sin*a.Z, t*a.Y*a.Y + cos, t*a.Y*a.Z + sin*a.X},
		{t*a.X*a.Z + sin*a.Y, t*a.Y*a.Z - sin*a.X, t*a.Z*a.Z + cos},
	}
}

func (m Matrix3) Transpose() Matrix3 {
	var res Matrix3
	for i := range m {
		for j := range m[i] {
			res[j][i] = m[i][j]
		}
	}
	return res
}

// Scale multiplies every element by k
func (m Matrix3) Scale(k float64) Matrix3 {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= k
		}
	}
	return m
}

// Mul returns the product m × other
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var res Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				res[i][j] += m[i][k] * other[k][j]
			}
		}
	}
	return res
}

// Cut returns the 2x2 matrix left after removing row and col
func (m Matrix3) Cut(row, col int) Matrix2 {
	var res Matrix2
	ti := 0
	for i := 0; i < 3; i++ {
		if i == row {
			continue
		}
		tj := 0
		for j := 0; j < 3; j++ {
			if j == col {
				continue
			}
			res[ti][tj] = m[i][j]
			tj++
		}
		ti++
	}
	return res
}

func (m Matrix3) Minor() Matrix3 {
	var res Matrix3
	for i := range m {
		for j := range m[i] {
			res[i][j] = m.Cut(i, j).Determinant()
		}
	}
	return res
}

func (m Matrix3) Cofactor() Matrix3 {
	res := m.Minor()
	for i := range res {
		for j := range res[i] {
			if (i+j)%2 == 1 {
				res[i][j] = -res[i][j]
			}
		}
	}
	return res
}

// Determinant expands along the first row
func (m Matrix3) Determinant() float64 {
	c := m.Cofactor()
	return m[0][0]*c[0][0] + m[0][1]*c[0][1] + m[0][2]*c[0][2]
}

// Adjugate is the transposed cofactor matrix
func (m Matrix3) Adjugate() Matrix3 {
	return m.Cofactor().Transpose()
}

// Inverse returns the inverse of m and false when m is singular
func (m Matrix3) Inverse() (Matrix3, bool) {
	det := m.Determinant()
	if ApproxEqual(det, 0) {
		return Matrix3{}, false
	}
	return m.Adjugate().Scale(1 / det), true
}

// Equal compares element-wise with ApproxEqual
func (m Matrix3) Equal(other Matrix3) bool {
	for i := range m {
		for j := range m[i] {
			if !ApproxEqual(m[i][j], other[i][j]) {
				return false
			}
		}
	}
	return true
}

func (m Matrix3) String() string {
	return fmt.Sprintf("[%.6f %.6f %.6f; %.6f %.6f %.6f; %.6f %.6f %.6f]",
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2])
}

// Transform returns the row vector v multiplied by m
func (v Vector3D) Transform(m Matrix3) Vector3D {
	return Vector3D{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2],
	}
}
