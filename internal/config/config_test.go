package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/roommapper/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 80, cfg.Match.Threshold)
	assert.Equal(t, "token_sort", cfg.Match.Scorer)
	assert.Equal(t, 4, cfg.Match.BulkConcurrency)
	assert.Equal(t, "csv", cfg.Reference.Driver)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("MATCH_THRESHOLD", "90")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("REFERENCE_DRIVER", "pgx")
	t.Setenv("DB_HOST", "db")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 90, cfg.Match.Threshold)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "pgx", cfg.Reference.Driver)
	assert.Equal(t, "postgres://postgres:@db:5432/roommapper?sslmode=disable", cfg.ConnectionString())
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"MATCH_THRESHOLD":  "101",
		"BULK_CONCURRENCY": "0",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
