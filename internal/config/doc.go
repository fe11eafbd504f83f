// Package config provides configuration management for starhop.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Per-date output path computation
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// API key file under ~/Library/Application Support/StarHop
//	// Captioned images under ~/Pictures/apod
//	// Three fetch attempts with exponential backoff
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Configuration Options
//
// Settings includes options for:
//   - APOD API base URL and key sources
//   - Fetch retry behavior
//   - Output directory
//   - Caption fonts and sizing factors
package config
