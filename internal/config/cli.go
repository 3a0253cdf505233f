package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"
)

// ErrNoURLs is returned when the command line names no URL to shorten
var ErrNoURLs = errors.New("at least one URL is required")

// CLIConfig is the configuration of the shorten command
type CLIConfig struct {
	BackendURL string
	Timeout    time.Duration
	Copy       bool
	LogLevel   string
	URLs       []string
}

// Configure builds the command configuration from the environment and
// args. Flags take precedence over environment variables.
func Configure(args []string, output io.Writer) (*CLIConfig, error) {
	envCfg, err := LoadEnv()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg := &CLIConfig{
		BackendURL: DefaultBackendURL,
		Timeout:    DefaultRequestTimeoutSec * time.Second,
		LogLevel:   envCfg.LogLevel,
	}
	if envCfg.BackendURL != "" {
		cfg.BackendURL = envCfg.BackendURL
	}
	if envCfg.RequestTimeout > 0 {
		cfg.Timeout = envCfg.RequestTimeout
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	fs := flag.NewFlagSet("shorten", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: shorten [flags] URL...\n\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.BackendURL, "backend", cfg.BackendURL, "Shortening backend address (e.g. http://127.0.0.1:5000)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Per-request timeout")
	fs.BoolVar(&cfg.Copy, "copy", false, "Copy the most recent successful short URL to the clipboard")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.URLs = fs.Args()
	if len(cfg.URLs) == 0 {
		fs.Usage()
		return nil, ErrNoURLs
	}
	return cfg, nil
}
