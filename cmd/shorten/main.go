// Command shorten submits URLs to the shortening backend from the terminal.
//
//	shorten [-backend URL] [-timeout 10s] [-copy] [-log-level info] URL...
//
// Each URL goes through the same submission state machine as the desktop
// client. The session history is printed at the end. The exit status is 1
// when any submission failed and 2 on a usage error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/rs/zerolog/log"

	"github.com/ytget/url-shortener/internal/config"
	"github.com/ytget/url-shortener/internal/controller"
	"github.com/ytget/url-shortener/internal/logger"
	"github.com/ytget/url-shortener/internal/model"
	"github.com/ytget/url-shortener/internal/platform"
	"github.com/ytget/url-shortener/internal/shortener"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, platform.NewSystemClipboard())
	stop()
	os.Exit(code)
}

// run executes the command and returns its exit status
func run(ctx context.Context, args []string, stdout, stderr io.Writer, clipboard platform.Clipboard) int {
	cfg, err := config.Configure(args, stderr)
	if err != nil {
		if !errors.Is(err, config.ErrNoURLs) {
			fmt.Fprintln(stderr, err)
		}
		return exitUsage
	}

	logger.InitWithWriter(stderr, cfg.LogLevel)

	client := shortener.NewClient(
		cfg.BackendURL,
		cfg.Timeout,
		shortener.WithTransport(logger.NewTransport(http.DefaultTransport)),
	)
	ctrl := controller.New(client, clipboard)
	defer ctrl.Close()

	code := exitOK
	for _, input := range cfg.URLs {
		state := ctrl.Submit(ctx, input)
		if state.HasError() {
			fmt.Fprintf(stderr, "%s: %s\n", input, state.Error)
			code = exitFailed
			continue
		}
		fmt.Fprintln(stdout, state.Result.ShortURL)
	}

	history := ctrl.History()
	if cfg.Copy && len(history) > 0 {
		// Most recent success, even when later arguments failed
		last := history[len(history)-1]
		if err := ctrl.Copy(last.ShortURL); err != nil {
			log.Warn().Err(err).Msg("Could not copy short URL")
			fmt.Fprintln(stderr, err)
		}
	}

	printHistory(stdout, history)
	return code
}

// printHistory writes the session history as an aligned table
func printHistory(w io.Writer, history []model.HistoryEntry) {
	if len(history) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Shortened URL History")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSHORT\tORIGINAL")
	for i, entry := range history {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, entry.ShortURL, entry.GetDisplayOriginal(80))
	}
	tw.Flush()
}
