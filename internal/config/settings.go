package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/asterizk/starhop/internal/caption"
)

// Settings holds all configuration options.
//
// Every fixed path the tool touches (key file, pictures directory, API base)
// lives here rather than in package-level constants so tests can point the
// pipeline at temporary locations.
type Settings struct {
	// API settings
	APIBaseURL   string `json:"api_base_url"`
	APIKeyEnvVar string `json:"api_key_env_var"`
	KeyFilePath  string `json:"key_file_path"`

	// Fetch retry settings
	FetchMaxRetries int     `json:"fetch_max_retries"`
	FetchRetryBase  float64 `json:"fetch_retry_base"`

	// Output settings
	PicturesDir string `json:"pictures_dir"`

	// Caption settings
	TitleFontPaths       []string `json:"title_font_paths"`
	DescriptionFontPaths []string `json:"description_font_paths"`
	TitleFontScale       float64  `json:"title_font_scale"`
	DescriptionFontScale float64  `json:"description_font_scale"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		APIBaseURL:   "https://api.nasa.gov/planetary/apod",
		APIKeyEnvVar: "NASA_APOD_KEY",
		KeyFilePath:  filepath.Join(homeDir, "Library", "Application Support", "StarHop", "nasa_apod_key"),

		FetchMaxRetries: 3,
		FetchRetryBase:  1.5,

		PicturesDir: filepath.Join(homeDir, "Pictures"),

		TitleFontPaths: []string{
			"/System/Library/Fonts/Supplemental/Arial Black.ttf",
			"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
		},
		DescriptionFontPaths: []string{
			"/System/Library/Fonts/Supplemental/Arial Narrow Italic.ttf",
			"/System/Library/Fonts/Supplemental/Arial Italic.ttf",
		},
		TitleFontScale:       0.020,
		DescriptionFontScale: 0.015,
	}
}

// OutputPath returns the destination for a captioned image, one file per
// calendar date. Reruns for the same date overwrite.
func (s *Settings) OutputPath(date string) string {
	return filepath.Join(s.PicturesDir, "apod", date+".png")
}

// ToCaptionConfig converts settings to caption.Config.
func (s *Settings) ToCaptionConfig() *caption.Config {
	return &caption.Config{
		TitleFontPaths:       s.TitleFontPaths,
		DescriptionFontPaths: s.DescriptionFontPaths,
		TitleScale:           s.TitleFontScale,
		DescriptionScale:     s.DescriptionFontScale,
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error: defaults are returned so the tool works
// out of the box.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file, creating parent directories as
// needed. The installer uses this to seed a per-user config.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
