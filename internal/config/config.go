package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Roommapper"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	Match struct {
		Threshold       int    `envconfig:"MATCH_THRESHOLD" default:"80"`
		Scorer          string `envconfig:"MATCH_SCORER" default:"token_sort"`
		BulkConcurrency int    `envconfig:"BULK_CONCURRENCY" default:"4"`
	}

	Reference struct {
		Driver string `envconfig:"REFERENCE_DRIVER" default:"csv"`
		Path   string `envconfig:"REFERENCE_PATH" default:"data/processed/reference_rooms.csv"`
		Table  string `envconfig:"REFERENCE_TABLE" default:"reference_rooms"`
	}

	// DB is only used when the reference driver is pgx.
	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"roommapper"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func (c *Config) Validate() error {
	if c.Match.Threshold < 0 || c.Match.Threshold > 100 {
		return fmt.Errorf("MATCH_THRESHOLD must be within 0..100, got %d", c.Match.Threshold)
	}

	if c.Match.BulkConcurrency < 1 {
		return fmt.Errorf("BULK_CONCURRENCY must be positive, got %d", c.Match.BulkConcurrency)
	}

	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
