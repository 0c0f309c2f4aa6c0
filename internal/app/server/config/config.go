// Package config loads the development server configuration from the
// environment.
package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	RunAddress string
	DemoEmail  string
	DemoPass   string
}

func MustLoad() *Config {
	// Missing .env is fine, env vars and defaults still apply.
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("app_env", "local")
	viper.SetDefault("run_address", ":4001")
	viper.SetDefault("demo_email", "demo@example.com")
	viper.SetDefault("demo_password", "demo1234")

	return &Config{
		Env:        viper.GetString("app_env"),
		RunAddress: viper.GetString("run_address"),
		DemoEmail:  viper.GetString("demo_email"),
		DemoPass:   viper.GetString("demo_password"),
	}
}
