// Package camera provides cameras that own their view and projection
// matrices and rebuild them in place each frame.
package camera

import (
	"go.uber.org/zap"

	"github.com/Faultbox/orient3d/internal/logger"
	"github.com/Faultbox/orient3d/pkg/math"
)

// WorldUp is the default up hint.
var WorldUp = math.Vec3{X: 0, Y: 1, Z: 0}

// Lens holds perspective projection parameters.
type Lens struct {
	FovY   float32 // vertical field of view, degrees
	Aspect float32 // width / height
	Near   float32
	Far    float32
}

// DefaultLens returns a 60° lens with a 16:9 aspect.
func DefaultLens() Lens {
	return Lens{FovY: 60, Aspect: 16.0 / 9.0, Near: 0.1, Far: 1000}
}

// apply overwrites m with the lens projection.
func (l Lens) apply(m *math.Mat4) {
	m.Perspective(l.FovY, l.Aspect, l.Near, l.Far)
}

// PerspectiveCamera looks from Eye towards Target.
type PerspectiveCamera struct {
	Eye    math.Vec3
	Target math.Vec3
	Up     math.Vec3
	Lens   Lens

	view       math.Mat4
	projection math.Mat4
}

// NewPerspectiveCamera creates a camera and builds its matrices.
func NewPerspectiveCamera(eye, target math.Vec3, lens Lens) *PerspectiveCamera {
	c := &PerspectiveCamera{
		Eye:    eye,
		Target: target,
		Up:     WorldUp,
		Lens:   lens,
	}
	c.Update()
	return c
}

// Update rebuilds both matrices from the current fields.
func (c *PerspectiveCamera) Update() {
	if c.Eye == c.Target {
		logger.Debug("camera eye equals target, using identity view",
			zap.Stringer("eye", c.Eye))
	}
	c.view.LookAt(c.Eye, c.Target, c.Up)
	c.Lens.apply(&c.projection)
}

// View returns the view matrix.
func (c *PerspectiveCamera) View() math.Mat4 {
	return c.view
}

// Projection returns the projection matrix.
func (c *PerspectiveCamera) Projection() math.Mat4 {
	return c.projection
}

// SetViewport updates the aspect ratio for a new framebuffer size.
// Non-positive sizes are ignored.
func (c *PerspectiveCamera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Lens.Aspect = float32(width) / float32(height)
	c.Lens.apply(&c.projection)
	logger.Debug("camera viewport resized",
		zap.Int("width", width),
		zap.Int("height", height))
}
