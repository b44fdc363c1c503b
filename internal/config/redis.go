package config

import (
	"fmt"
	"time"
)

// RedisConfig represents the cache connection settings.
type RedisConfig struct {
	Host           string        `yaml:"host" env:"SUPPLYHUB_REDIS_HOST" env-default:"localhost"`
	Port           int           `yaml:"port" env:"SUPPLYHUB_REDIS_PORT" env-default:"6379"`
	Password       string        `yaml:"password" env:"SUPPLYHUB_REDIS_PASSWORD" env-default:""`
	DB             int           `yaml:"db" env:"SUPPLYHUB_REDIS_DB" env-default:"0"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"SUPPLYHUB_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"SUPPLYHUB_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"SUPPLYHUB_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	DefaultTTL     time.Duration `yaml:"default_ttl" env:"SUPPLYHUB_REDIS_DEFAULT_TTL" env-default:"24h"`
}

// GetAddress returns the Redis address in host:port form.
func (c *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
