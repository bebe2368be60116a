package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"rdfview/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.Viewport.Width != 800 || cfg.Viewport.Height != 600 {
		t.Errorf("Viewport = %+v, want 800x600", cfg.Viewport)
	}
	if cfg.Forces.LinkDistance != 150 || cfg.Forces.ChargeStrength != -500 || cfg.Forces.CollideRadius != 50 {
		t.Errorf("unexpected forces %+v", cfg.Forces)
	}
	if cfg.Drag.ReheatTarget != 0.3 {
		t.Errorf("ReheatTarget = %f, want 0.3", cfg.Drag.ReheatTarget)
	}
	if cfg.Viewer.FrameInterval.Duration() != 16*time.Millisecond {
		t.Errorf("FrameInterval = %s, want 16ms", cfg.Viewer.FrameInterval.Duration())
	}
	if cfg.Mode() != domain.ModeGraph {
		t.Errorf("Mode = %s, want graphe", cfg.Mode())
	}
	if cfg.Database.Path != "./rdfview.db" {
		t.Errorf("Database.Path = %s, want ./rdfview.db", cfg.Database.Path)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate: %v", err)
	}
}

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, `
viewport:
  width: 1024
forces:
  charge_strength: -300
viewer:
  mode: cartouches
  frame_interval: 33ms
server:
  addr: ":8080"
`)

	cfg, found, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if found != path {
		t.Errorf("path = %s, want %s", found, path)
	}

	if cfg.Viewport.Width != 1024 || cfg.Viewport.Height != 600 {
		t.Errorf("Viewport = %+v, want 1024x600", cfg.Viewport)
	}
	if cfg.Forces.ChargeStrength != -300 || cfg.Forces.LinkDistance != 150 {
		t.Errorf("unexpected forces %+v", cfg.Forces)
	}
	if cfg.Mode() != domain.ModeCartouches {
		t.Errorf("Mode = %s, want cartouches", cfg.Mode())
	}
	if cfg.Viewer.FrameInterval.Duration() != 33*time.Millisecond {
		t.Errorf("FrameInterval = %s, want 33ms", cfg.Viewer.FrameInterval.Duration())
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %s, want :8080", cfg.Server.Addr)
	}
}

func TestLoadFromPathErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "viewport: [", "parse config"},
		{"bad duration", "viewer:\n  frame_interval: soon\n", "parse config"},
		{"bad mode", "viewer:\n  mode: tableau\n", "invalid config"},
		{"negative width", "viewport:\n  width: -10\n", "invalid config"},
		{"decay above one", "forces:\n  velocity_decay: 1.5\n", "invalid config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := LoadFromPath(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		if _, _, err := LoadFromPath(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestSessionOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Viewport.Width = 1200
	cfg.Forces.CollideRadius = 30
	cfg.Drag.ReheatTarget = 0.5

	opts := cfg.SessionOptions()
	if opts.Layout.Width != 1200 || opts.Layout.Height != 600 {
		t.Errorf("unexpected layout size %+v", opts.Layout)
	}
	if opts.Layout.CollideRadius != 30 || opts.Layout.LinkDistance != 150 {
		t.Errorf("unexpected layout forces %+v", opts.Layout)
	}
	if opts.ReheatTarget != 0.5 {
		t.Errorf("ReheatTarget = %f, want 0.5", opts.ReheatTarget)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Viewer.Mode = "cartouches"
	cfg.Server.KeepAlive = Duration(5 * time.Second)
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, _, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if loaded.Mode() != domain.ModeCartouches {
		t.Errorf("Mode = %s, want cartouches", loaded.Mode())
	}
	if loaded.Server.KeepAlive.Duration() != 5*time.Second {
		t.Errorf("KeepAlive = %s, want 5s", loaded.Server.KeepAlive.Duration())
	}
}

func TestFindConfigPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))

	oldWd, _ := os.Getwd()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(oldWd)

	if found := FindConfigPath(); found != "" && !strings.HasPrefix(found, "/etc/") {
		t.Errorf("expected no config in empty dirs, got %s", found)
	}

	xdgPath := filepath.Join(tmpDir, "xdg", ConfigDirName, "config.yaml")
	if err := DefaultConfig().Save(xdgPath); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if found := FindConfigPath(); found != xdgPath {
		t.Errorf("FindConfigPath() = %s, want %s", found, xdgPath)
	}

	if err := DefaultConfig().Save(filepath.Join(tmpDir, ConfigFileName)); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if found := FindConfigPath(); filepath.Base(found) != ConfigFileName {
		t.Errorf("expected working directory config to win, got %s", found)
	}

	explicit := writeConfig(t, "version: 1\n")
	t.Setenv(EnvConfigPath, explicit)
	if found := FindConfigPath(); found != explicit {
		t.Errorf("FindConfigPath() = %s, want %s", found, explicit)
	}

	// A missing explicit path falls through to the next candidate
	t.Setenv(EnvConfigPath, "/nonexistent/path.yaml")
	if found := FindConfigPath(); filepath.Base(found) != ConfigFileName {
		t.Errorf("expected fall back to working directory, got %s", found)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultConfigPath(); got != "/tmp/xdg/rdfview/config.yaml" {
		t.Errorf("DefaultConfigPath() = %s", got)
	}
}

func TestDuration(t *testing.T) {
	d := Duration(5 * time.Minute)

	if d.Duration() != 5*time.Minute {
		t.Errorf("Duration() = %s, want 5m", d.Duration())
	}

	marshaled, err := d.MarshalYAML()
	if err != nil {
		t.Fatalf("MarshalYAML() error: %v", err)
	}
	if marshaled != "5m0s" {
		t.Errorf("MarshalYAML() = %v, want 5m0s", marshaled)
	}
}

func TestSummary(t *testing.T) {
	summary := DefaultConfig().Summary()
	for _, want := range []string{"800x600", "graphe", ":5000"} {
		if !strings.Contains(summary, want) {
			t.Errorf("expected summary to contain %q, got %s", want, summary)
		}
	}
}
