package ioutils

import (
	"image"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	"image/png"
	"os"
	"path/filepath"
)

// LoadImage decodes an image file. JPEG, PNG and GIF are supported, which
// covers everything the APOD feed serves.
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	return img, err
}

// SavePNG writes img to path as PNG, creating parent directories as needed.
// An existing file at path is overwritten.
func SavePNG(img image.Image, path string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
