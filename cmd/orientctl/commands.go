package main

import (
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/orient3d/internal/config"
	"github.com/Faultbox/orient3d/internal/engine/camera"
	"github.com/Faultbox/orient3d/internal/logger"
	"github.com/Faultbox/orient3d/pkg/math"
	"github.com/Faultbox/orient3d/pkg/orientation"
)

// parseFloats parses every argument as a float32.
func parseFloats(args []string) ([]float32, error) {
	out := make([]float32, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = float32(v)
	}
	return out, nil
}

// argsOrDefault parses args when present and requires exactly n of them.
func argsOrDefault(args []string, n int, usage string) ([]float32, bool, error) {
	if len(args) == 0 {
		return nil, false, nil
	}
	if len(args) != n {
		return nil, false, fmt.Errorf("usage: orientctl %s", usage)
	}
	v, err := parseFloats(args)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func cmdView(cfg *config.Config, args []string, w io.Writer) error {
	v, ok, err := argsOrDefault(args, 6, "view [ex ey ez tx ty tz]")
	if err != nil {
		return err
	}
	if ok {
		cfg.Camera.Eye = math.Vec3{X: v[0], Y: v[1], Z: v[2]}
		cfg.Camera.Target = math.Vec3{X: v[3], Y: v[4], Z: v[5]}
	}

	cam := newCamera(cfg)
	logger.Debug("built view matrix",
		zap.Stringer("eye", cam.Eye),
		zap.Stringer("target", cam.Target),
		zap.Stringer("up", cam.Up))

	return printMatrix(w, cfg.Output, "view", cam.View())
}

func cmdProject(cfg *config.Config, args []string, w io.Writer) error {
	v, ok, err := argsOrDefault(args, 4, "project [fov aspect near far]")
	if err != nil {
		return err
	}
	if ok {
		cfg.Camera.FovY, cfg.Camera.Aspect, cfg.Camera.Near, cfg.Camera.Far = v[0], v[1], v[2], v[3]
	}

	c := cfg.Camera
	if c.Near <= 0 || c.Far <= c.Near || c.Aspect <= 0 {
		logger.Warn("degenerate frustum, projection will contain Inf or NaN",
			zap.Float32("aspect", c.Aspect),
			zap.Float32("near", c.Near),
			zap.Float32("far", c.Far))
	}

	cam := newCamera(cfg)
	return printMatrix(w, cfg.Output, "projection", cam.Projection())
}

func cmdOrient(cfg *config.Config, args []string, w io.Writer) error {
	if len(args)%3 != 0 {
		return fmt.Errorf("usage: orientctl orient [alpha beta gamma]...")
	}
	v, err := parseFloats(args)
	if err != nil {
		return err
	}

	readings := []orientation.Reading{cfg.Orientation.Reading}
	if len(v) > 0 {
		readings = readings[:0]
		for i := 0; i < len(v); i += 3 {
			r := cfg.Orientation.Reading
			r.Alpha, r.Beta, r.Gamma = v[i], v[i+1], v[i+2]
			readings = append(readings, r)
		}
	}

	// Successive readings are smoothed like a live sensor stream
	dev := camera.NewDeviceCamera(cfg.Camera.Eye, cfg.Orientation.Smoothing)
	for _, r := range readings {
		if !r.Valid() {
			logger.Warn("reading has missing angles, skipping", zap.Any("reading", r))
		}
		dev.HandleReading(r)
	}
	logger.Debug("orientation computed", zap.Int("readings", len(readings)))

	return printOrientation(w, cfg.Output, dev.Rotation(), dev.Forward())
}

func cmdEuler(cfg *config.Config, args []string, w io.Writer) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: orientctl euler <w> <x> <y> <z>")
	}
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	q := math.NewQuat(v[0], v[1], v[2], v[3])
	if l := q.Length(); l < 0.999 || l > 1.001 {
		logger.Warn("quaternion is not unit length", zap.Float32("length", l))
	}
	return printOrientation(w, cfg.Output, q, q.Rotate(math.Vec3{Z: -1}))
}

func cmdConfig(cfg *config.Config, w io.Writer) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func newCamera(cfg *config.Config) *camera.PerspectiveCamera {
	c := cfg.Camera
	cam := &camera.PerspectiveCamera{
		Eye:    c.Eye,
		Target: c.Target,
		Up:     c.Up,
		Lens:   camera.Lens{FovY: c.FovY, Aspect: c.Aspect, Near: c.Near, Far: c.Far},
	}
	cam.Update()
	return cam
}
