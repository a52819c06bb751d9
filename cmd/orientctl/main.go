// orientctl builds view and projection matrices and converts device
// orientation angles from the command line.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/orient3d/internal/config"
	"github.com/Faultbox/orient3d/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	file := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		file = logger.DefaultFileConfig(cfg.Logging.LogFile)
		file.JSON = cfg.Logging.JSON
	}
	if err := logger.Init(cfg.Logging.Level, file, true); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, config.Args(), os.Stdout); err != nil {
		logger.Error("command failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

// run dispatches a command and writes its result to w.
func run(cfg *config.Config, args []string, w io.Writer) error {
	if len(args) < 1 {
		printUsage(w)
		return fmt.Errorf("no command given")
	}

	command := args[0]
	args = args[1:]
	logger.Debug("running command", zap.String("command", command), zap.Strings("args", args))

	switch command {
	case "view", "lookat":
		return cmdView(cfg, args, w)
	case "project", "perspective":
		return cmdProject(cfg, args, w)
	case "orient":
		return cmdOrient(cfg, args, w)
	case "euler":
		return cmdEuler(cfg, args, w)
	case "config":
		return cmdConfig(cfg, w)
	case "help", "-h", "--help":
		printUsage(w)
		return nil
	default:
		printUsage(w)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `orientctl - view, projection and orientation math

Usage:
  orientctl [flags] <command> [args]

Commands:
  view [ex ey ez tx ty tz]         Look-at view matrix (defaults from config)
  project [fov aspect near far]    Perspective projection matrix
  orient [alpha beta gamma]...     Device orientation to quaternion (smoothed)
  euler <w> <x> <y> <z>            Quaternion to roll/pitch/yaw degrees
  config                           Print the effective configuration

Flags:
  -config <file>   YAML config (default ./orientctl.yaml)
  -format <fmt>    text, json or yaml
  -precision <n>   digits in text output
  -fov, -aspect    projection overrides
  -screen <deg>    screen orientation angle
  -debug           debug logging

Examples:
  orientctl view 0 2 8 0 0 0
  orientctl -format json project 90 1 1 100
  orientctl -screen 90 orient 30 45 0`)
}
