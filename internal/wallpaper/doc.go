// Package wallpaper applies an image as the desktop background.
//
// The Setter interface hides the platform: ForCurrentPlatform returns the
// macOS implementation on darwin and a no-op everywhere else, so callers
// never branch on GOOS.
//
// The macOS setter runs two independent best-effort mechanisms in
// sequence, an AppleScript pass over every desktop and an NSWorkspace
// styling pass over the active one. Failures are logged, never fatal.
package wallpaper
