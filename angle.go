package wadlevel

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Radians returns the facing angle in radians.
func (t Thing) Radians() float64 {
	return degreesToRadians(t.Angle)
}

// Radians returns the segment direction in radians, in [0, 2π).
func (s Segment) Radians() float64 {
	return bamToRadians(s.Angle)
}

// degreesToRadians
func degreesToRadians[T constraints.Integer | constraints.Float](n T) float64 {
	return float64(n) * (math.Pi / 180)
}

const halfScale = 1 << 15

// bamToRadians converts a 16-bit binary angle. Stored angles are signed, so
// -32768 is a half turn and 0 is east.
func bamToRadians[T constraints.Signed](n T) float64 {
	return float64(uint16(n)) * math.Pi / halfScale
}
