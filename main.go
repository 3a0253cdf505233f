package main

import (
	"fmt"
	"net/http"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog/log"

	"github.com/ytget/url-shortener/internal/config"
	"github.com/ytget/url-shortener/internal/controller"
	"github.com/ytget/url-shortener/internal/logger"
	"github.com/ytget/url-shortener/internal/platform"
	"github.com/ytget/url-shortener/internal/shortener"
	"github.com/ytget/url-shortener/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.url-shortener"
	AppName = "URL Shortener"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		// Bad overrides are ignored rather than blocking the desktop app
		logger.Init(config.DefaultLogLevel)
		log.Warn().Err(err).Msg("Ignoring invalid environment configuration")
		env = &config.Env{LogLevel: config.DefaultLogLevel}
	}
	logger.Init(env.LogLevel)

	log.Info().Str("version", version).Msg(AppName + " starting")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp).WithEnv(env)

	client := shortener.NewClient(
		settings.GetBackendURL(),
		settings.GetRequestTimeout(),
		shortener.WithTransport(logger.NewTransport(http.DefaultTransport)),
	)
	log.Info().
		Str("backend_url", client.BaseURL()).
		Dur("timeout", settings.GetRequestTimeout()).
		Msg("Shortening backend configured")

	ctrl := controller.New(client, platform.NewFyneClipboard(myApp.Clipboard()))
	defer ctrl.Close()

	// Create and setup UI
	ui.NewRootUI(myWindow, ctrl, client, settings)

	// Show and run
	myWindow.ShowAndRun()
}
