package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds ambient settings read from the environment. Request
// parameters (prompt, url, api_key) always arrive on stdin, never here.
type Config struct {
	LogLevel string        `envconfig:"GENBRIDGE_LOG_LEVEL" default:"info"`
	Timeout  time.Duration `envconfig:"GENBRIDGE_TIMEOUT" default:"180s"`
}

// loadConfig loads envFile (or an optional ./.env) into the process
// environment, then reads the ambient settings. The .env preload happens
// before credential resolution so API_KEY_ENV indirection can see it.
func loadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env config: %w", err)
	}

	return cfg, nil
}
