package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/asterizk/starhop/internal/apod"
	"github.com/asterizk/starhop/internal/caption"
	"github.com/asterizk/starhop/internal/config"
	"github.com/asterizk/starhop/internal/credentials"
	"github.com/asterizk/starhop/internal/http"
	ioutils "github.com/asterizk/starhop/internal/io"
	"github.com/asterizk/starhop/internal/wallpaper"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a pipeline progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Options are the per-run inputs from the CLI.
type Options struct {
	// APIKey overrides environment and key-file resolution when non-empty.
	APIKey string

	// Date requests a specific day's picture (YYYY-MM-DD). Empty means
	// today.
	Date string

	// NoWallpaper skips the wallpaper step; the captioned image is still
	// saved.
	NoWallpaper bool
}

// Manager runs the fetch-caption-save-wallpaper sequence.
type Manager struct {
	settings   *config.Settings
	httpClient *http.Client
	apodClient *apod.Client
	resolver   *credentials.Resolver
	renderer   *caption.Renderer
	wallpaper  wallpaper.Setter

	onProgress func(ProgressEvent)
}

// NewManager creates a Manager wired from settings. The setter is injected
// so tests and unsupported platforms can substitute their own.
func NewManager(settings *config.Settings, setter wallpaper.Setter, onProgress func(ProgressEvent)) *Manager {
	httpClient := http.NewClient()

	m := &Manager{
		settings:   settings,
		httpClient: httpClient,
		apodClient: apod.NewClient(httpClient, settings.FetchMaxRetries, settings.FetchRetryBase),
		resolver: &credentials.Resolver{
			EnvVar:      settings.APIKeyEnvVar,
			KeyFilePath: settings.KeyFilePath,
		},
		renderer:   caption.NewRenderer(settings.ToCaptionConfig()),
		wallpaper:  setter,
		onProgress: onProgress,
	}
	m.apodClient.Notice = func(msg string) {
		m.progress(ProgressEvent{Message: msg, Level: LevelWarning})
	}
	return m
}

// Run executes one end-to-end pass: resolve the key, fetch metadata, pick
// and download the image, render the caption, persist the output, and
// apply the wallpaper unless disabled.
func (m *Manager) Run(ctx context.Context, opts Options) error {
	key, err := m.resolver.Resolve(opts.APIKey)
	if err != nil {
		return err
	}

	requestURL := apod.BuildURL(m.settings.APIBaseURL, key, opts.Date)
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Fetching: %s?api_key=%s&thumbs=true", m.settings.APIBaseURL, credentials.Mask(key)),
		Level:   LevelInfo,
	})

	resp, err := m.apodClient.Fetch(ctx, requestURL)
	if err != nil {
		return err
	}

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Today's picture: %s (%s, %s)", resp.DisplayTitle(), resp.MediaType, resp.Date),
		Level:   LevelVerbose,
	})
	if resp.Copyright != "" {
		m.progress(ProgressEvent{Message: "Image credit: " + resp.Copyright, Level: LevelVerbose})
	}

	imageURL, err := apod.PickImageURL(resp)
	if err != nil {
		return err
	}

	date := resp.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	outPath := m.settings.OutputPath(ioutils.SanitizeFileName(date))

	err = ioutils.WithTempFile("starhop-*.img", func(tmpPath string) error {
		m.progress(ProgressEvent{Message: "Downloading image: " + imageURL, Level: LevelVerbose})
		if err := m.httpClient.DownloadFile(ctx, imageURL, tmpPath); err != nil {
			return fmt.Errorf("download image: %w", err)
		}

		img, err := ioutils.LoadImage(tmpPath)
		if err != nil {
			return fmt.Errorf("decode image: %w", err)
		}

		rendered := m.renderer.Render(img, resp.DisplayTitle(), resp.Explanation)
		if err := ioutils.SavePNG(rendered, outPath); err != nil {
			return fmt.Errorf("save captioned image: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	m.progress(ProgressEvent{Message: "Saved captioned image to: " + outPath, Level: LevelSuccess})

	if opts.NoWallpaper {
		m.progress(ProgressEvent{Message: "Wallpaper step disabled by flag.", Level: LevelVerbose})
		return nil
	}

	m.progress(ProgressEvent{Message: "Setting the new desktop picture: " + outPath, Level: LevelInfo})
	if err := m.wallpaper.Apply(ctx, outPath); err != nil {
		// Wallpaper plumbing is best-effort; the captioned image is
		// already on disk.
		m.progress(ProgressEvent{Message: "Wallpaper step failed: " + err.Error(), Level: LevelWarning})
	}

	return nil
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
