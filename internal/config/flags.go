package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagFormat    = flag.String("format", "", "Output format: text, json or yaml")
	flagPrecision = flag.Int("precision", -1, "Digits after the point in text output")
	flagFov       = flag.Float64("fov", 0, "Vertical field of view in degrees")
	flagAspect    = flag.Float64("aspect", 0, "Aspect ratio (width/height)")
	flagScreen    = flag.Float64("screen", 0, "Screen orientation angle in degrees")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag command-line arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagPrecision >= 0 {
		cfg.Output.Precision = *flagPrecision
	}
	if *flagFov > 0 {
		cfg.Camera.FovY = float32(*flagFov)
	}
	if *flagAspect > 0 {
		cfg.Camera.Aspect = float32(*flagAspect)
	}
	if *flagScreen != 0 {
		cfg.Orientation.Screen = float32(*flagScreen)
	}
}
