package config

import (
	"fmt"
)

// PostgresConfig represents the database connection settings.
type PostgresConfig struct {
	Host     string `yaml:"host" env:"SUPPLYHUB_POSTGRES_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"SUPPLYHUB_POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"SUPPLYHUB_POSTGRES_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"SUPPLYHUB_POSTGRES_PASSWORD" env-default:"postgres"`
	Database string `yaml:"database" env:"SUPPLYHUB_POSTGRES_DB" env-default:"supplyhub"`
	MinConn  int    `yaml:"min_conn" env:"SUPPLYHUB_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn  int    `yaml:"max_conn" env:"SUPPLYHUB_POSTGRES_MAX_CONN" env-default:"10"`
}

// GetDSN returns the connection string for the pgx pool.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Database)
}

// GetConnectionURL returns the URL form of the connection string used by migrations.
func (p *PostgresConfig) GetConnectionURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.Database)
}
