// pkg/physics/scalar.go
package physics

import "math"

// Epsilon is the relative tolerance used by ApproxEqual. It is the machine
// epsilon of a 32-bit float, which keeps comparisons meaningful for values
// produced by chained float64 trigonometry.
const Epsilon = 1.1920929e-7

// ApproxEqual reports whether a and b are equal within an absolute tolerance
// near zero and a relative tolerance for larger magnitudes:
//
//	|a-b| <= Epsilon * max(1, |a|, |b|)
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// Clamp limits val to the closed range [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	return math.Min(math.Max(val, lo), hi)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
