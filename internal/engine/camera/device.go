package camera

import (
	"github.com/Faultbox/orient3d/pkg/math"
	"github.com/Faultbox/orient3d/pkg/orientation"
)

var (
	forward = math.Vec3{X: 0, Y: 0, Z: -1}
	up      = math.Vec3{X: 0, Y: 1, Z: 0}
)

// DeviceCamera points where a handheld device points, so the scene can be
// looked around by moving the device.
type DeviceCamera struct {
	Position math.Vec3

	smoother *orientation.Smoother
	rotation math.Quat
	view     math.Mat4
}

// NewDeviceCamera creates a device camera at pos. smoothing is the weight
// of each new reading (1 disables smoothing).
func NewDeviceCamera(pos math.Vec3, smoothing float32) *DeviceCamera {
	c := &DeviceCamera{
		Position: pos,
		smoother: orientation.NewSmoother(smoothing),
	}
	c.SetRotation(math.QuatIdentity())
	return c
}

// HandleReading feeds a sensor reading and rebuilds the view.
func (c *DeviceCamera) HandleReading(r orientation.Reading) {
	c.SetRotation(c.smoother.Update(r))
}

// SetRotation points the camera with q and rebuilds the view.
func (c *DeviceCamera) SetRotation(q math.Quat) {
	c.rotation = q
	dir := q.Rotate(forward)
	c.view.LookAt(c.Position, c.Position.Add(dir), q.Rotate(up))
}

// Rotation returns the current camera rotation.
func (c *DeviceCamera) Rotation() math.Quat {
	return c.rotation
}

// Forward returns the direction the camera looks along.
func (c *DeviceCamera) Forward() math.Vec3 {
	return c.rotation.Rotate(forward)
}

// ViewMatrix returns the current view matrix.
func (c *DeviceCamera) ViewMatrix() math.Mat4 {
	return c.view
}
