// Package pipeline orchestrates one starhop run.
//
// Manager sequences the steps: resolve the API key, fetch the day's APOD
// metadata (with bounded retry), select an image URL, download to a
// temporary file that is always cleaned up, render the caption, save the
// dated PNG, and best-effort apply the wallpaper.
//
// Progress is reported through a callback of ProgressEvent values, letting
// the CLI decide how to display (and whether to show verbose events).
package pipeline
