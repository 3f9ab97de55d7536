package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zhubert/qrpack/internal/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxChunkLength != 1273 {
		t.Errorf("max_chunk_length = %d, want 1273", cfg.MaxChunkLength)
	}
	if cfg.CanvasWidth != 3000 || cfg.CanvasHeight != 3600 || cfg.QRSize != 2600 {
		t.Errorf("canvas = %dx%d qr %d", cfg.CanvasWidth, cfg.CanvasHeight, cfg.QRSize)
	}
	if !cfg.NotificationsEnabled || cfg.DesktopNotifications {
		t.Error("in-app notifications should default on and desktop off")
	}
	if !strings.HasSuffix(cfg.StatePath, filepath.Join(".qrpack", "storage.json")) {
		t.Errorf("state_path = %q", cfg.StatePath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	original := DefaultConfig()
	original.OutputDir = "/tmp/qr-out"
	original.MaxChunkLength = 800
	original.Theme = "nord"
	original.DesktopNotifications = true

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *original {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, original)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("Load of missing file should not fail: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("canvas_width: 2800\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CanvasWidth != 2800 {
		t.Errorf("canvas_width = %d, want 2800", cfg.CanvasWidth)
	}
	if cfg.CanvasHeight != 3600 {
		t.Errorf("unset keys should keep defaults, canvas_height = %d", cfg.CanvasHeight)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, errors.KindConfig) {
		t.Errorf("Load() error = %v, want KindConfig", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output_dir: from-file\nqr_size: 2000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("QRPACK_OUTPUT_DIR", "from-env")
	t.Setenv("QRPACK_NOTIFICATIONS_ENABLED", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != "from-env" {
		t.Errorf("output_dir = %q, want env override", cfg.OutputDir)
	}
	if cfg.NotificationsEnabled {
		t.Error("notifications_enabled should be overridden to false")
	}
	if cfg.QRSize != 2000 {
		t.Errorf("qr_size = %d, want file value 2000", cfg.QRSize)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandHome("~/qr"); got != filepath.Join(home, "qr") {
		t.Errorf("expandHome(~/qr) = %q", got)
	}
	if got := expandHome("/abs"); got != "/abs" {
		t.Errorf("expandHome(/abs) = %q", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"chunk too large", func(c *Config) { c.MaxChunkLength = 2000 }, "max_chunk_length"},
		{"chunk zero", func(c *Config) { c.MaxChunkLength = 0 }, "max_chunk_length"},
		{"negative canvas", func(c *Config) { c.CanvasWidth = -1 }, "canvas size"},
		{"qr too big", func(c *Config) { c.QRSize = 3500 }, "does not fit"},
		{"qr zero", func(c *Config) { c.QRSize = 0 }, "qr_size"},
		{"no output dir", func(c *Config) { c.OutputDir = "" }, "output_dir"},
		{"no state path", func(c *Config) { c.StatePath = "" }, "state_path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, errors.KindInvalid) {
				t.Errorf("kind = %v, want KindInvalid", errors.GetKind(err))
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}
