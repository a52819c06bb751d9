// Package config handles orientctl configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/orient3d/pkg/math"
	"github.com/Faultbox/orient3d/pkg/orientation"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds all settings.
type Config struct {
	Camera      CameraConfig      `yaml:"camera"`
	Orientation OrientationConfig `yaml:"orientation"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// CameraConfig describes the view and projection to build.
type CameraConfig struct {
	Eye    math.Vec3 `yaml:"eye"`
	Target math.Vec3 `yaml:"target"`
	Up     math.Vec3 `yaml:"up"`
	FovY   float32   `yaml:"fov_y"` // degrees
	Aspect float32   `yaml:"aspect"`
	Near   float32   `yaml:"near"`
	Far    float32   `yaml:"far"`
}

// OrientationConfig holds a device orientation sample.
type OrientationConfig struct {
	orientation.Reading `yaml:",inline"`
	Smoothing           float32 `yaml:"smoothing"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format    string `yaml:"format"`    // text, json or yaml
	Precision int    `yaml:"precision"` // digits after the point in text output
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	JSON    bool   `yaml:"json"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Camera: CameraConfig{
			Eye:    math.Vec3{X: 0, Y: 0, Z: 5},
			Target: math.Vec3{},
			Up:     math.Vec3{X: 0, Y: 1, Z: 0},
			FovY:   60,
			Aspect: 16.0 / 9.0,
			Near:   0.1,
			Far:    1000,
		},
		Orientation: OrientationConfig{
			Smoothing: 1,
		},
		Output: OutputConfig{
			Format:    FormatText,
			Precision: 4,
		},
		Logging: LoggingConfig{
			Level:   "warn",
			LogFile: "",
		},
	}
}

// Validate checks settings that cannot be represented numerically.
// Degenerate camera parameters are left to the matrix code.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	if c.Output.Precision < 0 || c.Output.Precision > 9 {
		return fmt.Errorf("precision %d out of range [0, 9]", c.Output.Precision)
	}
	return nil
}
