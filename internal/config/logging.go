package config

import "supplyhub/pkg/logger"

// LoggingConfig represents the logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level" env:"SUPPLYHUB_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"SUPPLYHUB_LOGGER_MODE" env-default:"production"`
}

// GetEnvironment maps the configured mode onto a logger environment.
func (c *LoggingConfig) GetEnvironment() logger.Environment {
	if c.Mode == "development" {
		return logger.Development
	}
	return logger.Production
}
