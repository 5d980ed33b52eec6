// internal/common/config/loader_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "shopping-assistant", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 5.99, cfg.Assistant.Shipping.BaseFee)
	assert.Equal(t, 5, cfg.Assistant.Shipping.MinDays)
	assert.Equal(t, 7, cfg.Assistant.Shipping.MaxDays)
	assert.Equal(t, "memory", cfg.Catalog.Backend)
	assert.Equal(t, 300, cfg.Catalog.CacheTTL)
	assert.Equal(t, "localhost:6379", cfg.Database.Redis.Address)
	assert.Equal(t, "disable", cfg.Database.Postgres.SSLMode)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Catalog.Backend = "postgres"
	cfg.Assistant.Shipping.MinDays = 2
	cfg.Assistant.Shipping.MaxDays = 3
	applyDefaults(cfg)

	assert.Equal(t, "postgres", cfg.Catalog.Backend)
	assert.Equal(t, 2, cfg.Assistant.Shipping.MinDays)
	assert.Equal(t, 3, cfg.Assistant.Shipping.MaxDays)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	t.Run("defaults pass", func(t *testing.T) {
		require.NoError(t, validateConfig(valid()))
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := valid()
		cfg.Catalog.Backend = "dynamo"
		err := validateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown catalog backend")
	})

	t.Run("postgres backend needs a host", func(t *testing.T) {
		cfg := valid()
		cfg.Catalog.Backend = "postgres"
		require.Error(t, validateConfig(cfg))

		cfg.Database.Postgres.Host = "localhost"
		require.NoError(t, validateConfig(cfg))
	})

	t.Run("inverted shipping window", func(t *testing.T) {
		cfg := valid()
		cfg.Assistant.Shipping.MinDays = 9
		err := validateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "min_days")
	})

	t.Run("negative base fee", func(t *testing.T) {
		cfg := valid()
		cfg.Assistant.Shipping.BaseFee = -1
		require.Error(t, validateConfig(cfg))
	})
}

func TestPostgresConfig_GetDSN(t *testing.T) {
	cfg := PostgresConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "assistant",
		Password: "secret",
		Database: "catalog",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=db.internal port=5432 user=assistant password=secret dbname=catalog sslmode=disable",
		cfg.GetDSN())
}
