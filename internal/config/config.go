package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	DB    DBConfig    `mapstructure:"db"`
	Bench BenchConfig `mapstructure:"bench"`
}

type DBConfig struct {
	// Driver selects the backend: "postgres" or "sqlite".
	Driver       string `mapstructure:"driver"`
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type BenchConfig struct {
	// Count is the number of generated input aggregates per strategy run.
	Count int `mapstructure:"count"`
	// BatchSize configures the concurrent batched strategy only.
	BatchSize int `mapstructure:"batch_size"`
	// Strategies limits a run to the named strategies; empty means all.
	Strategies []string `mapstructure:"strategies"`
}

// Load reads config.yaml when present and lets ORDERBENCH_-prefixed
// environment variables override any key.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.orderbench/")

	v.SetEnvPrefix("ORDERBENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "file:orderbench.db")
	v.SetDefault("db.max_open_conns", 50)
	v.SetDefault("bench.count", 500)
	v.SetDefault("bench.batch_size", 100)
	v.SetDefault("bench.strategies", []string{})

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
