// Package config loads service settings from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "RENAMER"

// Config holds the server settings. All fields are read from the
// environment with the RENAMER_ prefix and fall back to defaults.
type Config struct {
	Port        int    `envconfig:"PORT" default:"3000"`
	OutputDir   string `envconfig:"OUTPUT_DIR" default:"renamed"`
	MaxUploadMB int64  `envconfig:"MAX_UPLOAD_MB" default:"50"`
	Debug       bool   `envconfig:"DEBUG" default:"false"`
}

// Load reads the environment into a Config.
func Load() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process(envPrefix, c); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	return c, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// MaxUploadBytes returns the multipart memory cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}
