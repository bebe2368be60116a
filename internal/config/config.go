// Package config provides configuration management for rdfview.
//
// Config file locations (priority order):
//  1. $RDFVIEW_CONFIG
//  2. ./rdfview.yaml
//  3. $XDG_CONFIG_HOME/rdfview/config.yaml
//  4. ~/.config/rdfview/config.yaml
//  5. /etc/rdfview/config.yaml
//
// Missing values take their defaults; command-line flags override the
// file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"rdfview/internal/domain"
	"rdfview/internal/drag"
	"rdfview/internal/layout"
	"rdfview/internal/scene"
	"rdfview/internal/session"
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns the 800x600 graph view settings
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}

	if c.Viewport.Width == 0 {
		c.Viewport.Width = scene.DefaultViewport.Width
	}
	if c.Viewport.Height == 0 {
		c.Viewport.Height = scene.DefaultViewport.Height
	}

	if c.Forces.LinkDistance == 0 {
		c.Forces.LinkDistance = layout.DefaultLinkDistance
	}
	if c.Forces.ChargeStrength == 0 {
		c.Forces.ChargeStrength = layout.DefaultChargeStrength
	}
	if c.Forces.CollideRadius == 0 {
		c.Forces.CollideRadius = layout.DefaultCollideRadius
	}
	if c.Forces.AlphaMin == 0 {
		c.Forces.AlphaMin = layout.DefaultAlphaMin
	}
	if c.Forces.VelocityDecay == 0 {
		c.Forces.VelocityDecay = layout.DefaultVelocityDecay
	}

	if c.Drag.ReheatTarget == 0 {
		c.Drag.ReheatTarget = drag.ReheatTarget
	}

	if c.Viewer.Mode == "" {
		c.Viewer.Mode = string(domain.ModeGraph)
	}
	if c.Viewer.FrameInterval == 0 {
		c.Viewer.FrameInterval = Duration(16 * time.Millisecond)
	}
	if c.Viewer.WatchDebounce == 0 {
		c.Viewer.WatchDebounce = Duration(500 * time.Millisecond)
	}
	if c.Viewer.SettleSteps == 0 {
		c.Viewer.SettleSteps = 1000
	}
	if c.Viewer.SnapshotPath == "" {
		c.Viewer.SnapshotPath = "rdfview.svg"
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":5000"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = Duration(10 * time.Second)
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = Duration(30 * time.Second)
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = Duration(60 * time.Second)
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = Duration(10 * time.Second)
	}
	if c.Server.KeepAlive == 0 {
		c.Server.KeepAlive = Duration(30 * time.Second)
	}

	if c.Database.Path == "" {
		c.Database.Path = "./rdfview.db"
	}

	if c.Log.File == "" {
		c.Log.File = "rdfview.log"
	}
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Mode returns the configured display mode
func (c *Config) Mode() domain.Mode {
	return domain.ParseMode(c.Viewer.Mode)
}

// SessionOptions returns the engine settings for a session
func (c *Config) SessionOptions() session.Options {
	return session.Options{
		Layout: layout.Config{
			Width:          c.Viewport.Width,
			Height:         c.Viewport.Height,
			LinkDistance:   c.Forces.LinkDistance,
			ChargeStrength: c.Forces.ChargeStrength,
			CollideRadius:  c.Forces.CollideRadius,
			AlphaMin:       c.Forces.AlphaMin,
			VelocityDecay:  c.Forces.VelocityDecay,
		},
		ReheatTarget: c.Drag.ReheatTarget,
	}
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	return fmt.Sprintf("Viewport: %gx%g, Mode: %s\nForces: link %g, charge %g, collide %g\nServer: %s, Database: %s",
		c.Viewport.Width, c.Viewport.Height, c.Mode(),
		c.Forces.LinkDistance, c.Forces.ChargeStrength, c.Forces.CollideRadius,
		c.Server.Addr, c.Database.Path)
}
