// Package config loads the display server's startup configuration:
// an all-pointer JSON struct with Get* accessors that fall back to
// documented defaults, matching internal/config.TuningConfig's
// pattern in the teacher codebase.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// ServerConfig is the root configuration for a displayd process.
// Fields omitted from the JSON file retain their default values, so a
// partial config file is safe.
type ServerConfig struct {
	ListenAddr     *string  `json:"listen_addr,omitempty"`
	MediaRoot      *string  `json:"media_root,omitempty"`
	WindowWidth    *int     `json:"window_width,omitempty"`
	WindowHeight   *int     `json:"window_height,omitempty"`
	MaxSubscribers *int     `json:"max_subscribers,omitempty"`
	DefaultRate    *float64 `json:"default_rate,omitempty"`
}

// Empty returns a ServerConfig with all fields unset; use Get*
// accessors to read values with defaults applied.
func Empty() *ServerConfig { return &ServerConfig{} }

// Load reads and parses a ServerConfig from a JSON file.
func Load(path string) (*ServerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Empty()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that any set values are within acceptable ranges.
func (c *ServerConfig) Validate() error {
	if c.WindowWidth != nil && *c.WindowWidth < 1 {
		return fmt.Errorf("window_width must be >= 1, got %d", *c.WindowWidth)
	}
	if c.WindowHeight != nil && *c.WindowHeight < 1 {
		return fmt.Errorf("window_height must be >= 1, got %d", *c.WindowHeight)
	}
	if c.MaxSubscribers != nil && *c.MaxSubscribers < 0 {
		return fmt.Errorf("max_subscribers must be >= 0, got %d", *c.MaxSubscribers)
	}
	if c.DefaultRate != nil && *c.DefaultRate <= 0 {
		return fmt.Errorf("default_rate must be > 0, got %f", *c.DefaultRate)
	}
	return nil
}

// GetListenAddr returns the configured listen address or the spec's
// documented default, "0.0.0.0:50051".
func (c *ServerConfig) GetListenAddr() string {
	if c.ListenAddr == nil || *c.ListenAddr == "" {
		return "0.0.0.0:50051"
	}
	return *c.ListenAddr
}

// GetMediaRoot returns the configured media root directory, or "."
// when unset (media uris are then resolved relative to the process's
// working directory).
func (c *ServerConfig) GetMediaRoot() string {
	if c.MediaRoot == nil || *c.MediaRoot == "" {
		return "."
	}
	return *c.MediaRoot
}

// GetWindowWidth returns the configured initial surface width.
func (c *ServerConfig) GetWindowWidth() int {
	if c.WindowWidth == nil {
		return 1280
	}
	return *c.WindowWidth
}

// GetWindowHeight returns the configured initial surface height.
func (c *ServerConfig) GetWindowHeight() int {
	if c.WindowHeight == nil {
		return 720
	}
	return *c.WindowHeight
}

// GetMaxSubscribers returns the maximum concurrent SubscribeState
// clients, or 0 for unlimited.
func (c *ServerConfig) GetMaxSubscribers() int {
	if c.MaxSubscribers == nil {
		return 0
	}
	return *c.MaxSubscribers
}

// GetDefaultRate returns the transport clock's initial playback rate.
func (c *ServerConfig) GetDefaultRate() float64 {
	if c.DefaultRate == nil {
		return 1.0
	}
	return *c.DefaultRate
}
