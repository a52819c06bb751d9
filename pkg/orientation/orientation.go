// Package orientation converts device orientation angles into quaternions
// that can drive a 3D scene.
//
// Angles follow the DeviceOrientation convention: alpha is the compass
// heading about Z, beta the front-back tilt about X and gamma the
// left-right tilt about Y, all in degrees. A NaN angle means the sensor did
// not report it and counts as 0.
package orientation

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/orient3d/pkg/math"
)

// deviceToScene turns the device frame (screen facing up) into the scene
// frame (looking forward): -90° about X.
var deviceToScene = math.NewQuat(math32.Sqrt(0.5), -math32.Sqrt(0.5), 0, 0)

// halfAngle returns half of deg in radians, treating NaN as 0.
func halfAngle(deg float32) float32 {
	if math32.IsNaN(deg) {
		return 0
	}
	return deg * math32.Pi / 180 / 2
}

// TaitBryan converts device angles in degrees to a quaternion in the device
// frame. The rotation axes are taken in the order beta (X), gamma (Y),
// alpha (Z).
func TaitBryan(alpha, beta, gamma float32) math.Quat {
	s0, c0 := math32.Sincos(halfAngle(beta))
	s1, c1 := math32.Sincos(halfAngle(gamma))
	s2, c2 := math32.Sincos(halfAngle(alpha))

	return math.NewQuat(
		c0*c1*c2-s0*s1*s2,
		s0*c1*c2-c0*s1*s2,
		c0*s1*c2+s0*c1*s2,
		c0*c1*s2+s0*s1*c2,
	)
}

// ToQuat converts device angles to a scene rotation. screen is the screen
// orientation angle in degrees (0 for portrait, 90 or -90 for landscape).
func ToQuat(alpha, beta, gamma, screen float32) math.Quat {
	q := TaitBryan(alpha, beta, gamma).Mul(deviceToScene)

	a := -halfAngle(screen)
	s, c := math32.Sincos(a)
	return q.Mul(math.NewQuat(c, 0, -s, 0))
}

// EulerDegrees returns the roll, pitch and yaw of q in degrees.
func EulerDegrees(q math.Quat) (roll, pitch, yaw float32) {
	phi, theta, psi := q.EulerAngles()
	return math.RadToDeg(phi), math.RadToDeg(theta), math.RadToDeg(psi)
}
