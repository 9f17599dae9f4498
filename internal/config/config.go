// Package config handles application configuration using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/gogpu/overlay/settings"
	"github.com/gogpu/overlay/window"
)

// Name is the config file base name, searched with every extension viper
// understands.
const Name = "maniacpanel"

// EnvPrefix prefixes environment overrides, e.g. MANIACPANEL_WINDOW_WIDTH.
const EnvPrefix = "MANIACPANEL"

// Config is the application configuration.
type Config struct {
	Window   WindowConfig   `mapstructure:"window"`
	Font     FontConfig     `mapstructure:"font"`
	Settings SettingsConfig `mapstructure:"settings"`
	Device   DeviceConfig   `mapstructure:"device"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Headless HeadlessConfig `mapstructure:"headless"`
}

// WindowConfig selects the window backend and its initial geometry.
type WindowConfig struct {
	Backend string `mapstructure:"backend"` // "auto", "win32" or "headless"
	Title   string `mapstructure:"title"`   // empty means random
	X       int    `mapstructure:"x"`
	Y       int    `mapstructure:"y"`
	Width   int    `mapstructure:"width"`
	Height  int    `mapstructure:"height"`
}

// FontConfig selects the UI font.
type FontConfig struct {
	Size float64 `mapstructure:"size"`
	Path string  `mapstructure:"path"` // empty means the embedded Go Regular
}

// SettingsConfig locates the persisted panel settings.
type SettingsConfig struct {
	Path string `mapstructure:"path"`
}

// DeviceConfig tunes device recovery.
type DeviceConfig struct {
	MaxResetPolls int `mapstructure:"max_reset_polls"` // visible lost-device polls, 16ms apart; 0 means unbounded
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// HeadlessConfig tunes the offscreen backend.
type HeadlessConfig struct {
	Frames     int    `mapstructure:"frames"`      // 0 means run until interrupted
	CaptureDir string `mapstructure:"capture_dir"` // empty disables PNG capture
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Backend: window.Auto,
			X:       window.DefaultX,
			Y:       window.DefaultY,
			Width:   window.DefaultWidth,
			Height:  window.DefaultHeight,
		},
		Font:     FontConfig{Size: 16},
		Settings: SettingsConfig{Path: settings.DefaultFileName},
		Device:   DeviceConfig{MaxResetPolls: 600},
		Logging:  LoggingConfig{Level: "info"},
	}
}

// SetDefaults registers every key of Default with v so that environment
// variables and flags can override them.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("window.backend", d.Window.Backend)
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.x", d.Window.X)
	v.SetDefault("window.y", d.Window.Y)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)

	v.SetDefault("font.size", d.Font.Size)
	v.SetDefault("font.path", d.Font.Path)

	v.SetDefault("settings.path", d.Settings.Path)

	v.SetDefault("device.max_reset_polls", d.Device.MaxResetPolls)

	v.SetDefault("logging.level", d.Logging.Level)

	v.SetDefault("headless.frames", d.Headless.Frames)
	v.SetDefault("headless.capture_dir", d.Headless.CaptureDir)
}

// Load reads the configuration into v and decodes it.
//
// An explicit path must exist. Without one, Name.* is searched in the
// user config directory and the working directory, and a missing file is
// not an error. Environment variables override the file; LOG_LEVEL is
// honored as well as MANIACPANEL_LOGGING_LEVEL.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(Name)
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, Name))
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("logging.level", EnvPrefix+"_LOGGING_LEVEL", "LOG_LEVEL"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", describe(v, path), err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unable to decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func describe(v *viper.Viper, path string) string {
	if path != "" {
		return path
	}
	if used := v.ConfigFileUsed(); used != "" {
		return used
	}
	return Name
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Font.Size <= 0:
		return fmt.Errorf("config: font size %v must be positive", c.Font.Size)
	case c.Device.MaxResetPolls < 0:
		return fmt.Errorf("config: max_reset_polls %d must not be negative", c.Device.MaxResetPolls)
	case c.Headless.Frames < 0:
		return fmt.Errorf("config: headless frames %d must not be negative", c.Headless.Frames)
	case c.Settings.Path == "":
		return errors.New("config: settings path is empty")
	}
	return nil
}

// WindowOptions converts the window and headless sections into window
// options.
func (c *Config) WindowOptions() window.Options {
	return window.Options{
		Title:      c.Window.Title,
		X:          c.Window.X,
		Y:          c.Window.Y,
		Width:      c.Window.Width,
		Height:     c.Window.Height,
		MaxFrames:  c.Headless.Frames,
		CaptureDir: c.Headless.CaptureDir,
	}
}
