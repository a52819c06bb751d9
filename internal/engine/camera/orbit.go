package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/orient3d/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	view math.Mat4
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        10.0,
		RotationX:       0.5,
		RotationY:       0.0,
		MinDistance:     1.0,
		MaxDistance:     500.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sx, cx := math32.Sincos(c.RotationX)
	sy, cy := math32.Sincos(c.RotationY)
	offset := math.Vec3{X: cx * sy, Y: sx, Z: cx * cy}
	return c.Center.Add(offset.Scale(c.Distance))
}

// ViewMatrix rebuilds and returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	c.view.LookAt(c.Position(), c.Center, WorldUp)
	return c.view
}

// HandleDrag updates rotation based on a pointer drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX = math.Clamp(c.RotationX+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	d := c.Distance - delta*c.Distance*c.ZoomSensitivity
	c.Distance = math.Clamp(d, c.MinDistance, c.MaxDistance)
}

// FitToBounds adjusts camera to view the given bounding box.
func (c *OrbitCamera) FitToBounds(lo, hi math.Vec3) {
	c.Center = lo.Add(hi).Scale(0.5)
	c.Distance = math.Clamp(hi.Distance(lo)*1.5, c.MinDistance, c.MaxDistance)
	c.RotationX = math.Clamp(0.6, c.MinPitch, c.MaxPitch) // look down at ~35 degrees
	c.RotationY = 0.0
}
