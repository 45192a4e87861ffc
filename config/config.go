// Package config loads the settings shared by the demo programs from an optional YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every error Validate returns.
var ErrInvalid = errors.New("config: invalid")

// Config holds every setting of a demo program.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
	Scroll ScrollConfig `yaml:"scroll"`
	Studio StudioConfig `yaml:"studio"`
	Log    LogConfig    `yaml:"log"`
}

// WindowConfig sets up the program window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// CameraConfig sets up the scene camera.
type CameraConfig struct {
	FieldOfView float64 `yaml:"fov"` // Vertical field of view in degrees
	Near        float64 `yaml:"near"`
	Far         float64 `yaml:"far"`
}

// ScrollConfig sets how far input scrolls the page.
type ScrollConfig struct {
	WheelSpeed float64 `yaml:"wheelSpeed"` // Pixels per wheel notch
	KeySpeed   float64 `yaml:"keySpeed"`   // Pixels per second while a scroll key is held
}

// StudioConfig sets up development mode, where animation state can be edited live.
type StudioConfig struct {
	Enabled bool `yaml:"enabled"`
	// AppName names the directory saved state overrides are kept in.
	AppName string `yaml:"appName"`
	// WatchFile is the YAML state file that's watched for edits; "" picks <project name>.yaml in the working directory.
	WatchFile string `yaml:"watchFile"`
}

// LogConfig sets up logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, or error
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "scrollstage"},
		Camera: CameraConfig{FieldOfView: 45, Near: 1, Far: 1000},
		Scroll: ScrollConfig{WheelSpeed: 60, KeySpeed: 900},
		Studio: StudioConfig{AppName: "scrollstage"},
		Log:    LogConfig{Level: "info"},
	}
}

// Parse decodes YAML over the defaults; settings the YAML leaves out keep their default values. Unknown keys are errors.
func Parse(data []byte) (Config, error) {

	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decoding: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil

}

// Load reads the file at the path given; an empty path returns the defaults.
func Load(path string) (Config, error) {

	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil

}

// Validate checks that every setting is usable.
func (cfg Config) Validate() error {

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, cfg.Window.Width, cfg.Window.Height)
	}

	if cfg.Camera.FieldOfView <= 0 || cfg.Camera.FieldOfView >= 180 {
		return fmt.Errorf("%w: camera fov %v is outside of (0, 180)", ErrInvalid, cfg.Camera.FieldOfView)
	}

	if cfg.Camera.Near <= 0 || cfg.Camera.Far <= cfg.Camera.Near {
		return fmt.Errorf("%w: camera clipping range %v to %v", ErrInvalid, cfg.Camera.Near, cfg.Camera.Far)
	}

	if cfg.Scroll.WheelSpeed < 0 || cfg.Scroll.KeySpeed < 0 {
		return fmt.Errorf("%w: negative scroll speed", ErrInvalid)
	}

	if cfg.Studio.Enabled && strings.TrimSpace(cfg.Studio.AppName) == "" {
		return fmt.Errorf("%w: studio needs an app name", ErrInvalid)
	}

	if _, err := cfg.Log.SlogLevel(); err != nil {
		return err
	}

	return nil

}

// SlogLevel returns the configured level as a slog.Level.
func (lc LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(lc.Level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: log level %q", ErrInvalid, lc.Level)
}

// NewLogger creates a text logger writing to w at the configured level.
func (lc LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := lc.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
