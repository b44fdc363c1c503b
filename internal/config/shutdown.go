package config

import "time"

// ShutdownConfig represents graceful shutdown settings.
type ShutdownConfig struct {
	Timeout int `yaml:"timeout" env:"SUPPLYHUB_SHUTDOWN_TIMEOUT" env-default:"5"`
}

// GetTimeout returns the shutdown timeout as a duration.
func (c *ShutdownConfig) GetTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
