// Package config loads the client configuration from flags, environment
// variables and an optional .env file, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env           string `mapstructure:"env"`
	ServerAddress string `mapstructure:"server_address"`
	EnableTLS     bool   `mapstructure:"enable_tls"`
	DataDir       string `mapstructure:"data_dir"`
	SyncDelayMS   int    `mapstructure:"sync_delay_ms"`
}

// MustLoad loads the configuration or panics. Called once at startup.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func Load() (*Config, error) {
	// Missing .env is fine, env vars and defaults still apply.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("medtracker")
	v.AutomaticEnv()

	v.SetDefault("env", EnvLocal)
	v.SetDefault("server_address", "localhost:4001")
	v.SetDefault("enable_tls", false)
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("sync_delay_ms", 100)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	return &cfg, nil
}

// DatabasePath is the location of the local SQLite store.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "medtracker.db")
}

// SyncDelay is the pause between consecutive record pushes in a sweep.
func (c *Config) SyncDelay() time.Duration {
	return time.Duration(c.SyncDelayMS) * time.Millisecond
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".medtracker"
	}
	return filepath.Join(home, ".medtracker")
}
