package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the rdfview configuration file
type Config struct {
	Version  int            `yaml:"version"`
	Viewport ViewportConfig `yaml:"viewport"`
	Forces   ForcesConfig   `yaml:"forces"`
	Drag     DragConfig     `yaml:"drag"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// ViewportConfig is the size of the logical drawing area
type ViewportConfig struct {
	Width  float64 `yaml:"width" validate:"gt=0"`
	Height float64 `yaml:"height" validate:"gt=0"`
}

// ForcesConfig holds the force simulation parameters
type ForcesConfig struct {
	LinkDistance   float64 `yaml:"link_distance" validate:"gt=0"`
	ChargeStrength float64 `yaml:"charge_strength"`
	CollideRadius  float64 `yaml:"collide_radius" validate:"gte=0"`
	AlphaMin       float64 `yaml:"alpha_min" validate:"gt=0,lt=1"`
	VelocityDecay  float64 `yaml:"velocity_decay" validate:"gt=0,lte=1"`
}

// DragConfig holds drag interaction settings
type DragConfig struct {
	ReheatTarget float64 `yaml:"reheat_target" validate:"gt=0,lte=1"`
}

// ViewerConfig holds terminal viewer settings
type ViewerConfig struct {
	Mode          string   `yaml:"mode" validate:"oneof=graphe cartouches"`
	FrameInterval Duration `yaml:"frame_interval" validate:"gt=0"`
	WatchDebounce Duration `yaml:"watch_debounce" validate:"gte=0"`
	SettleSteps   int      `yaml:"settle_steps" validate:"gt=0"`
	SnapshotPath  string   `yaml:"snapshot_path"`
}

// ServerConfig holds generator service settings
type ServerConfig struct {
	Addr            string   `yaml:"addr" validate:"required"`
	ReadTimeout     Duration `yaml:"read_timeout"`
	WriteTimeout    Duration `yaml:"write_timeout"`
	IdleTimeout     Duration `yaml:"idle_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
	KeepAlive       Duration `yaml:"keepalive"`
}

// DatabaseConfig holds database settings
type DatabaseConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// LogConfig holds logging settings
type LogConfig struct {
	File string `yaml:"file"`
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
