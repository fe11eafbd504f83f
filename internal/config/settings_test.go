package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.APIBaseURL != "https://api.nasa.gov/planetary/apod" {
		t.Errorf("APIBaseURL = %q", s.APIBaseURL)
	}
	if s.FetchMaxRetries != 3 {
		t.Errorf("FetchMaxRetries = %d, want 3", s.FetchMaxRetries)
	}
	if s.TitleFontScale != 0.020 || s.DescriptionFontScale != 0.015 {
		t.Errorf("font scales = %v/%v, want 0.020/0.015", s.TitleFontScale, s.DescriptionFontScale)
	}
}

func TestOutputPath(t *testing.T) {
	s := DefaultSettings()
	s.PicturesDir = "/pics"

	got := s.OutputPath("2024-01-01")
	want := filepath.Join("/pics", "apod", "2024-01-01.png")
	if got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.APIBaseURL == "" {
		t.Error("missing file should yield defaults")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	s := DefaultSettings()
	s.PicturesDir = "/custom/pictures"
	s.FetchMaxRetries = 5
	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.PicturesDir != "/custom/pictures" {
		t.Errorf("PicturesDir = %q", loaded.PicturesDir)
	}
	if loaded.FetchMaxRetries != 5 {
		t.Errorf("FetchMaxRetries = %d, want 5", loaded.FetchMaxRetries)
	}
	if !strings.HasSuffix(loaded.OutputPath("d"), filepath.Join("apod", "d.png")) {
		t.Errorf("OutputPath broken after round trip: %q", loaded.OutputPath("d"))
	}
}
