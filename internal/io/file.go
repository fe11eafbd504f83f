// Package ioutils provides file system utilities for starhop.
//
// This package contains functions for:
//   - Directory creation
//   - Filename sanitization
//   - Scoped temporary files with guaranteed cleanup
//   - Image decode and PNG persistence
package ioutils

import (
	"os"
	"regexp"
	"strings"
)

// EnsureDir creates a directory and all parent directories if they don't
// exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/Users/me/Pictures/apod")
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// SanitizeFileName removes or replaces characters that are invalid in
// file/folder names. The date used in output paths comes from a remote
// response, so it passes through here before touching the filesystem.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("2024-01-01")        // Returns "2024-01-01"
//	SanitizeFileName("../../etc/passwd")  // Returns ".._.._etc_passwd"
func SanitizeFileName(name string) string {
	// Replace invalid path/file characters with underscore
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots (Windows doesn't allow filenames ending with dots)
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space for cleaner names
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	// Remove trailing whitespace
	name = strings.TrimRight(name, " ")

	return name
}

// WithTempFile creates a temporary file, hands its path to fn, and removes
// the file on every exit path, including when fn fails.
//
// Example:
//
//	err := WithTempFile("apod-*.img", func(path string) error {
//	    if err := client.DownloadFile(ctx, url, path); err != nil {
//	        return err
//	    }
//	    return processImage(path)
//	})
func WithTempFile(pattern string, fn func(path string) error) error {
	file, err := os.CreateTemp("", pattern)
	if err != nil {
		return err
	}
	path := file.Name()
	file.Close()
	defer os.Remove(path)

	return fn(path)
}
