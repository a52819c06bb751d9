package math

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Clamp limits v to the range [lo, hi].
// If lo > hi the result is lo.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// DegToRad converts an angle in degrees to radians.
func DegToRad(angle float32) float32 {
	return angle / 180 * math32.Pi
}

// RadToDeg converts an angle in radians to degrees.
func RadToDeg(angle float32) float32 {
	return angle / math32.Pi * 180
}
