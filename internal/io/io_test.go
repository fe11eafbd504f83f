package ioutils

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2024-01-01", "2024-01-01"},
		{"date:with:colons", "date_with_colons"},
		{"date/with\\slashes", "date_with_slashes"},
		{"date|with|pipes", "date_with_pipes"},
		{"date?with*wildcards", "date_with_wildcards"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWithTempFile_RemovesOnSuccess(t *testing.T) {
	var captured string
	err := WithTempFile("starhop-test-*", func(path string) error {
		captured = path
		return os.WriteFile(path, []byte("data"), 0644)
	})
	if err != nil {
		t.Fatalf("WithTempFile() error = %v", err)
	}

	if _, err := os.Stat(captured); !os.IsNotExist(err) {
		t.Errorf("temp file %s should be removed after success", captured)
	}
}

func TestWithTempFile_RemovesOnFailure(t *testing.T) {
	boom := errors.New("boom")

	var captured string
	err := WithTempFile("starhop-test-*", func(path string) error {
		captured = path
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithTempFile() error = %v, want callback error", err)
	}

	if _, err := os.Stat(captured); !os.IsNotExist(err) {
		t.Errorf("temp file %s should be removed after failure", captured)
	}
}

func TestSavePNG_CreatesParents(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.SetRGBA(1, 1, color.RGBA{R: 255, A: 255})

	path := filepath.Join(t.TempDir(), "apod", "2024-01-01.png")
	if err := SavePNG(img, path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	loaded, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage() error = %v", err)
	}
	if loaded.Bounds() != img.Bounds() {
		t.Errorf("round-tripped bounds %v, want %v", loaded.Bounds(), img.Bounds())
	}
}
