// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	// Enable ENV override like CATALOG_BACKEND, DATABASE_REDIS_ADDRESS
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}
	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig() // ignore error if not found

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}
	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "shopping-assistant"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Metrics.Address == "" {
		cfg.Metrics.Address = ":9102"
	}
	if cfg.Assistant.Shipping.BaseFee == 0 {
		cfg.Assistant.Shipping.BaseFee = 5.99
	}
	if cfg.Assistant.Shipping.MinDays == 0 {
		cfg.Assistant.Shipping.MinDays = 5
	}
	if cfg.Assistant.Shipping.MaxDays == 0 {
		cfg.Assistant.Shipping.MaxDays = 7
	}
	if cfg.Catalog.Backend == "" {
		cfg.Catalog.Backend = "memory"
	}
	if cfg.Catalog.CacheTTL == 0 {
		cfg.Catalog.CacheTTL = 300
	}
	if cfg.Database.Redis.Address == "" {
		cfg.Database.Redis.Address = "localhost:6379"
	}
	if cfg.Database.Postgres.SSLMode == "" {
		cfg.Database.Postgres.SSLMode = "disable"
	}
	if cfg.Database.Postgres.MaxConnections == 0 {
		cfg.Database.Postgres.MaxConnections = 10
	}
	if cfg.Database.Postgres.MaxIdle == 0 {
		cfg.Database.Postgres.MaxIdle = 5
	}
}

func validateConfig(cfg *Config) error {
	switch cfg.Catalog.Backend {
	case "memory", "postgres":
	default:
		return fmt.Errorf("unknown catalog backend %q", cfg.Catalog.Backend)
	}
	if cfg.Catalog.Backend == "postgres" && cfg.Database.Postgres.Host == "" {
		return fmt.Errorf("catalog backend is postgres but database.postgres.host is empty")
	}
	if cfg.Assistant.Shipping.MinDays > cfg.Assistant.Shipping.MaxDays {
		return fmt.Errorf("shipping min_days (%d) > max_days (%d)",
			cfg.Assistant.Shipping.MinDays, cfg.Assistant.Shipping.MaxDays)
	}
	if cfg.Assistant.Shipping.BaseFee < 0 {
		return fmt.Errorf("shipping base_fee must be non-negative")
	}
	return nil
}
