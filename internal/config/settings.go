package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyBackendURL     = "backend_url"
	KeyRequestTimeout = "request_timeout_sec"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultBackendURL        = "http://127.0.0.1:5000"
	DefaultRequestTimeoutSec = 10
	DefaultLanguage          = "system"
	DefaultLogLevel          = "info"
)

// Request timeout bounds, in seconds
const (
	MinRequestTimeoutSec = 1
	MaxRequestTimeoutSec = 120
)

// Settings manages application configuration. Values come from Fyne
// preferences; environment variables, when set, take precedence for the
// running session without being written back.
type Settings struct {
	app fyne.App
	env *Env
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app, env: &Env{}}
}

// WithEnv sets the environment overrides
func (s *Settings) WithEnv(env *Env) *Settings {
	if env != nil {
		s.env = env
	}
	return s
}

// GetBackendURL returns the shortening backend address
func (s *Settings) GetBackendURL() string {
	if s.env.BackendURL != "" {
		return s.env.BackendURL
	}
	backendURL := s.app.Preferences().String(KeyBackendURL)
	if backendURL == "" {
		s.SetBackendURL(DefaultBackendURL)
		return DefaultBackendURL
	}
	return backendURL
}

// SetBackendURL sets the shortening backend address
func (s *Settings) SetBackendURL(backendURL string) {
	backendURL = strings.TrimSpace(backendURL)
	if backendURL == "" {
		backendURL = DefaultBackendURL
	}
	s.app.Preferences().SetString(KeyBackendURL, backendURL)
}

// IsBackendURLOverridden reports whether the environment pins the backend address
func (s *Settings) IsBackendURLOverridden() bool {
	return s.env.BackendURL != ""
}

// GetRequestTimeoutSeconds returns the configured request timeout in seconds
func (s *Settings) GetRequestTimeoutSeconds() int {
	value := s.app.Preferences().Int(KeyRequestTimeout)
	if value <= 0 {
		s.SetRequestTimeoutSeconds(DefaultRequestTimeoutSec)
		return DefaultRequestTimeoutSec
	}
	return value
}

// SetRequestTimeoutSeconds sets the request timeout in seconds
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	if seconds < MinRequestTimeoutSec {
		seconds = MinRequestTimeoutSec
	}
	if seconds > MaxRequestTimeoutSec {
		seconds = MaxRequestTimeoutSec
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, seconds)
}

// GetRequestTimeout returns the per-request deadline
func (s *Settings) GetRequestTimeout() time.Duration {
	if s.env.RequestTimeout > 0 {
		return s.env.RequestTimeout
	}
	return time.Duration(s.GetRequestTimeoutSeconds()) * time.Second
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLogLevel returns the log level from the environment
func (s *Settings) GetLogLevel() string {
	if s.env.LogLevel == "" {
		return DefaultLogLevel
	}
	return s.env.LogLevel
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
