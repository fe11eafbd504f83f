package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/asterizk/starhop/internal/apod"
	"github.com/asterizk/starhop/internal/config"
	"github.com/asterizk/starhop/internal/credentials"
	starhttp "github.com/asterizk/starhop/internal/http"
	"github.com/asterizk/starhop/internal/pipeline"
	"github.com/asterizk/starhop/internal/ui"
	"github.com/asterizk/starhop/internal/wallpaper"
)

func main() {
	// Command line flags
	var (
		apiKeyFlag      = flag.String("api-key", "", "NASA API key (overrides env/file)")
		noWallpaperFlag = flag.Bool("no-wallpaper", false, "Skip setting the wallpaper; just save the captioned image")
		dateFlag        = flag.String("date", "", "Fetch a specific day's picture (YYYY-MM-DD, default today)")
		outputFlag      = flag.String("output", "", "Pictures directory (overrides config)")
		configFlag      = flag.String("config", "", "Path to config file")
		verboseFlag     = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *outputFlag != "" {
		settings.PicturesDir = *outputFlag
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	printEvent := func(event pipeline.ProgressEvent) {
		if event.Level == pipeline.LevelVerbose && !*verboseFlag {
			return
		}
		fmt.Println(ui.RenderEvent(event))
	}

	setter := wallpaper.ForCurrentPlatform(func(msg string) {
		printEvent(pipeline.ProgressEvent{Message: msg, Level: pipeline.LevelInfo})
	})

	manager := pipeline.NewManager(settings, setter, printEvent)

	err := manager.Run(ctx, pipeline.Options{
		APIKey:      *apiKeyFlag,
		Date:        *dateFlag,
		NoWallpaper: *noWallpaperFlag,
	})
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("Run cancelled.")
			os.Exit(130)
		}
		fail(err)
	}
}

// fail translates pipeline errors into friendly messages and exits non-zero.
func fail(err error) {
	var statusErr *starhttp.StatusError
	var noImage *apod.NoImageError

	switch {
	case errors.Is(err, credentials.ErrNoKey), errors.Is(err, credentials.ErrDemoKey):
		fmt.Fprintln(os.Stderr, err)
	case errors.As(err, &noImage):
		fmt.Fprintln(os.Stderr, err)
	case errors.As(err, &statusErr) && statusErr.Code == http.StatusForbidden:
		fmt.Fprintln(os.Stderr, "HTTP 403: Check your API key (quota or invalid key).")
	case errors.As(err, &statusErr) && statusErr.Code == http.StatusTooManyRequests:
		fmt.Fprintln(os.Stderr, "HTTP 429: Rate limited. Try again later or use your own API key.")
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
