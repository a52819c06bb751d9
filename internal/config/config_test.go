package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/orient3d/pkg/math"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, math.Vec3{Z: 5}, cfg.Camera.Eye)
	assert.Equal(t, math.Vec3{Y: 1}, cfg.Camera.Up)
	assert.Equal(t, float32(60), cfg.Camera.FovY)
	assert.Equal(t, float32(1), cfg.Orientation.Smoothing)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.LogFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
camera:
  eye: {x: 1, y: 2, z: 3}
  target: {x: 0, y: 0, z: -1}
  fov_y: 90
  aspect: 1.5
  near: 0.5
  far: 50
orientation:
  alpha: 10
  beta: 20
  gamma: 30
  screen: 90
  smoothing: 0.25
output:
  format: json
logging:
  level: debug
  log_file: orientctl.log
  json: true
`)

	cfg := Default()
	require.NoError(t, loadFromFile(cfg, path))

	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, cfg.Camera.Eye)
	assert.Equal(t, math.Vec3{Z: -1}, cfg.Camera.Target)
	assert.Equal(t, math.Vec3{Y: 1}, cfg.Camera.Up, "unset fields keep defaults")
	assert.Equal(t, float32(90), cfg.Camera.FovY)
	assert.Equal(t, float32(1.5), cfg.Camera.Aspect)
	assert.Equal(t, float32(50), cfg.Camera.Far)

	assert.Equal(t, float32(10), cfg.Orientation.Alpha)
	assert.Equal(t, float32(30), cfg.Orientation.Gamma)
	assert.Equal(t, float32(90), cfg.Orientation.Screen)
	assert.Equal(t, float32(0.25), cfg.Orientation.Smoothing)

	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, 4, cfg.Output.Precision)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "orientctl.log", cfg.Logging.LogFile)
	assert.True(t, cfg.Logging.JSON)
}

func TestLoadFromFileInvalid(t *testing.T) {
	path := writeConfig(t, `
camera:
  fov_y: not a number
  invalid syntax here
`)
	assert.Error(t, loadFromFile(Default(), path))
}

func TestLoadFromFileMissing(t *testing.T) {
	assert.Error(t, loadFromFile(Default(), "/nonexistent/path/orientctl.yaml"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"yaml output", func(c *Config) { c.Output.Format = FormatYAML }, false},
		{"unknown format", func(c *Config) { c.Output.Format = "xml" }, true},
		{"negative precision", func(c *Config) { c.Output.Precision = -1 }, true},
		{"degenerate camera is allowed", func(c *Config) { c.Camera.Near = 0; c.Camera.Aspect = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	assert.NotEmpty(t, dir)
	assert.True(t, filepath.IsAbs(dir), "ConfigDir should return absolute path, got %s", dir)
}

func TestFindConfigFile(t *testing.T) {
	origDir, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	require.NoError(t, os.Chdir(tmpDir))

	assert.Empty(t, findConfigFile())

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, FileName), []byte("output:\n  format: yaml\n"), 0644))
	assert.NotEmpty(t, findConfigFile())
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "format and precision flags",
			setup: func() { *flagFormat = FormatYAML; *flagPrecision = 2 },
			verify: func(cfg *Config) {
				assert.Equal(t, FormatYAML, cfg.Output.Format)
				assert.Equal(t, 2, cfg.Output.Precision)
			},
			teardown: func() { *flagFormat = ""; *flagPrecision = -1 },
		},
		{
			name:  "camera flags",
			setup: func() { *flagFov = 75; *flagAspect = 2 },
			verify: func(cfg *Config) {
				assert.Equal(t, float32(75), cfg.Camera.FovY)
				assert.Equal(t, float32(2), cfg.Camera.Aspect)
			},
			teardown: func() { *flagFov = 0; *flagAspect = 0 },
		},
		{
			name:  "screen flag",
			setup: func() { *flagScreen = -90 },
			verify: func(cfg *Config) {
				assert.Equal(t, float32(-90), cfg.Orientation.Screen)
			},
			teardown: func() { *flagScreen = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	path := writeConfig(t, `
camera:
  fov_y: 45
  aspect: 1.25
`)

	*flagConfig = path
	*flagFov = 100
	defer func() {
		*flagConfig = ""
		*flagFov = 0
	}()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, float32(100), cfg.Camera.FovY, "flag beats file")
	assert.Equal(t, float32(1.25), cfg.Camera.Aspect, "file beats default")
}

func TestLoadRejectsInvalid(t *testing.T) {
	*flagConfig = writeConfig(t, "output:\n  format: toml\n")
	defer func() { *flagConfig = "" }()

	_, err := Load()
	assert.Error(t, err)
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Camera.Eye = math.Vec3{X: -2, Y: 4, Z: 1}
	cfg.Orientation.Beta = 45
	require.NoError(t, cfg.SaveTo(path))

	loaded := Default()
	require.NoError(t, loadFromFile(loaded, path))
	assert.Equal(t, cfg, loaded)
}
