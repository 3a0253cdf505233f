package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

// Env holds the settings read from environment variables
type Env struct {
	BackendURL     string        `env:"SHORTENER_BACKEND_URL"`
	RequestTimeout time.Duration `env:"SHORTENER_REQUEST_TIMEOUT"`
	LogLevel       string        `env:"SHORTENER_LOG_LEVEL" envDefault:"info"`
}

// LoadEnv parses the environment
func LoadEnv() (*Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
