// Package config loads qrpack settings from ~/.qrpack/config.yaml with
// QRPACK_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/zhubert/qrpack/internal/errors"
)

// EnvPrefix marks environment variables that override file settings.
const EnvPrefix = "QRPACK_"

// MaxChunkLength is the largest text a highest-correction QR symbol holds.
const MaxChunkLength = 1273

// Config holds the user's settings.
type Config struct {
	AssetsDir            string `yaml:"assets_dir" koanf:"assets_dir"`
	OutputDir            string `yaml:"output_dir" koanf:"output_dir"`
	StatePath            string `yaml:"state_path" koanf:"state_path"`
	MaxChunkLength       int    `yaml:"max_chunk_length" koanf:"max_chunk_length"`
	CanvasWidth          int    `yaml:"canvas_width" koanf:"canvas_width"`
	CanvasHeight         int    `yaml:"canvas_height" koanf:"canvas_height"`
	QRSize               int    `yaml:"qr_size" koanf:"qr_size"`
	NotificationsEnabled bool   `yaml:"notifications_enabled" koanf:"notifications_enabled"`
	DesktopNotifications bool   `yaml:"desktop_notifications" koanf:"desktop_notifications"`
	Theme                string `yaml:"theme" koanf:"theme"`
}

// Dir returns ~/.qrpack.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".qrpack"), nil
}

// DefaultPath returns ~/.qrpack/config.yaml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() *Config {
	statePath := ""
	if dir, err := Dir(); err == nil {
		statePath = filepath.Join(dir, "storage.json")
	}
	return &Config{
		AssetsDir:            ".",
		OutputDir:            ".",
		StatePath:            statePath,
		MaxChunkLength:       MaxChunkLength,
		CanvasWidth:          3000,
		CanvasHeight:         3600,
		QRSize:               2600,
		NotificationsEnabled: true,
		DesktopNotifications: false,
		Theme:                "dark-purple",
	}
}

// Load reads the YAML file at path over the defaults, then overlays
// environment overrides (QRPACK_OUTPUT_DIR -> output_dir, etc.). A missing
// file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.ConfigLoadFailed(path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, errors.ConfigLoadFailed(path, fmt.Errorf("loading env overrides: %w", err))
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	cfg.AssetsDir = expandHome(cfg.AssetsDir)
	cfg.OutputDir = expandHome(cfg.OutputDir)
	cfg.StatePath = expandHome(cfg.StatePath)
	return cfg, nil
}

// Save writes the settings to path as YAML, creating its directory.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	return nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if c.MaxChunkLength < 1 || c.MaxChunkLength > MaxChunkLength {
		return errors.ConfigInvalid(fmt.Sprintf("max_chunk_length must be between 1 and %d, got %d", MaxChunkLength, c.MaxChunkLength))
	}
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return errors.ConfigInvalid(fmt.Sprintf("canvas size must be positive, got %dx%d", c.CanvasWidth, c.CanvasHeight))
	}
	if c.QRSize <= 0 {
		return errors.ConfigInvalid("qr_size must be positive")
	}
	if c.QRSize > c.CanvasWidth || c.QRSize > c.CanvasHeight {
		return errors.ConfigInvalid(fmt.Sprintf("qr_size %d does not fit a %dx%d canvas", c.QRSize, c.CanvasWidth, c.CanvasHeight))
	}
	if c.OutputDir == "" {
		return errors.ConfigInvalid("output_dir is required")
	}
	if c.StatePath == "" {
		return errors.ConfigInvalid("state_path is required")
	}
	return nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
