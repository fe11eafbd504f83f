//go:build !darwin

package wallpaper

// ForCurrentPlatform returns the Setter for the running OS.
func ForCurrentPlatform(notice func(msg string)) Setter {
	return NewNoop(notice)
}
