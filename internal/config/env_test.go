package config

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the shortener variables for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SHORTENER_BACKEND_URL", "SHORTENER_REQUEST_TIMEOUT", "SHORTENER_LOG_LEVEL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadEnv()
	require.NoError(t, err)

	assert.Empty(t, cfg.BackendURL)
	assert.Zero(t, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SHORTENER_BACKEND_URL", "http://env.example:9000")
	t.Setenv("SHORTENER_REQUEST_TIMEOUT", "3s")
	t.Setenv("SHORTENER_LOG_LEVEL", "debug")

	cfg, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "http://env.example:9000", cfg.BackendURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadEnv_BadDuration(t *testing.T) {
	t.Setenv("SHORTENER_REQUEST_TIMEOUT", "soon")

	_, err := LoadEnv()
	assert.Error(t, err)
}

func TestConfigure(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		args     []string
		expected CLIConfig
	}{
		{
			name: "defaults",
			args: []string{"https://example.com"},
			expected: CLIConfig{
				BackendURL: DefaultBackendURL,
				Timeout:    10 * time.Second,
				LogLevel:   "info",
				URLs:       []string{"https://example.com"},
			},
		},
		{
			name: "environment",
			env: map[string]string{
				"SHORTENER_BACKEND_URL":     "http://env.example",
				"SHORTENER_REQUEST_TIMEOUT": "2s",
				"SHORTENER_LOG_LEVEL":       "warn",
			},
			args: []string{"https://a.example", "https://b.example"},
			expected: CLIConfig{
				BackendURL: "http://env.example",
				Timeout:    2 * time.Second,
				LogLevel:   "warn",
				URLs:       []string{"https://a.example", "https://b.example"},
			},
		},
		{
			name: "flags win over environment",
			env: map[string]string{
				"SHORTENER_BACKEND_URL":     "http://env.example",
				"SHORTENER_REQUEST_TIMEOUT": "2s",
			},
			args: []string{"-backend", "http://flag.example", "-timeout", "5s", "-copy", "-log-level", "debug", "https://example.com"},
			expected: CLIConfig{
				BackendURL: "http://flag.example",
				Timeout:    5 * time.Second,
				Copy:       true,
				LogLevel:   "debug",
				URLs:       []string{"https://example.com"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Configure(tt.args, &bytes.Buffer{})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *cfg)
		})
	}
}

func TestConfigure_NoURLs(t *testing.T) {
	clearEnv(t)
	var out bytes.Buffer

	_, err := Configure([]string{"-copy"}, &out)

	assert.ErrorIs(t, err, ErrNoURLs)
	assert.Contains(t, out.String(), "Usage: shorten")
}

func TestConfigure_UnknownFlag(t *testing.T) {
	clearEnv(t)
	_, err := Configure([]string{"-nope", "https://example.com"}, &bytes.Buffer{})
	assert.Error(t, err)
}
