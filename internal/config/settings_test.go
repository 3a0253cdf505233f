package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}

	if settings.IsBackendURLOverridden() {
		t.Error("Backend URL should not be overridden without environment")
	}
}

func TestBackendURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetBackendURL(); got != DefaultBackendURL {
		t.Errorf("Expected default backend URL %s, got %s", DefaultBackendURL, got)
	}

	// Test setting custom value
	settings.SetBackendURL("  https://sho.rt/api  ")
	if got := settings.GetBackendURL(); got != "https://sho.rt/api" {
		t.Errorf("Expected backend URL https://sho.rt/api, got %s", got)
	}

	// Test empty value defaults back
	settings.SetBackendURL("")
	if got := settings.GetBackendURL(); got != DefaultBackendURL {
		t.Errorf("Empty backend URL should default to %s, got %s", DefaultBackendURL, got)
	}
}

func TestBackendURL_EnvOverride(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app).WithEnv(&Env{BackendURL: "http://env.example:8080"})

	settings.SetBackendURL("http://prefs.example")

	if got := settings.GetBackendURL(); got != "http://env.example:8080" {
		t.Errorf("Environment should win, got %s", got)
	}
	if !settings.IsBackendURLOverridden() {
		t.Error("Expected backend URL to be reported as overridden")
	}
	if got := app.Preferences().String(KeyBackendURL); got != "http://prefs.example" {
		t.Errorf("Preference should keep its own value, got %s", got)
	}
}

func TestRequestTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetRequestTimeoutSeconds(); got != DefaultRequestTimeoutSec {
		t.Errorf("Expected default timeout %d, got %d", DefaultRequestTimeoutSec, got)
	}
	if got := settings.GetRequestTimeout(); got != DefaultRequestTimeoutSec*time.Second {
		t.Errorf("Expected default duration %v, got %v", DefaultRequestTimeoutSec*time.Second, got)
	}

	// Test setting custom value
	settings.SetRequestTimeoutSeconds(30)
	if got := settings.GetRequestTimeoutSeconds(); got != 30 {
		t.Errorf("Expected timeout 30, got %d", got)
	}

	// Test boundary values
	settings.SetRequestTimeoutSeconds(0) // Should be clamped to 1
	if settings.GetRequestTimeoutSeconds() != MinRequestTimeoutSec {
		t.Error("Timeout should be clamped to minimum 1")
	}

	settings.SetRequestTimeoutSeconds(500) // Should be clamped to 120
	if settings.GetRequestTimeoutSeconds() != MaxRequestTimeoutSec {
		t.Error("Timeout should be clamped to maximum 120")
	}
}

func TestRequestTimeout_EnvOverride(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app).WithEnv(&Env{RequestTimeout: 1500 * time.Millisecond})

	if got := settings.GetRequestTimeout(); got != 1500*time.Millisecond {
		t.Errorf("Expected env timeout 1.5s, got %v", got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")

	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("Expected language 'ru', got %s", got)
	}
}

func TestLogLevel(t *testing.T) {
	app := test.NewApp()

	if got := NewSettings(app).GetLogLevel(); got != DefaultLogLevel {
		t.Errorf("Expected default log level %s, got %s", DefaultLogLevel, got)
	}

	if got := NewSettings(app).WithEnv(&Env{LogLevel: "debug"}).GetLogLevel(); got != "debug" {
		t.Errorf("Expected log level debug, got %s", got)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
