package wallpaper

import "context"

// Setter applies an image as the desktop background.
//
// Implementations are best-effort: partial failure inside Apply is logged
// through the notice callback rather than returned, because wallpaper
// plumbing is OS-version-sensitive and a half-applied wallpaper should
// never fail the whole run.
type Setter interface {
	Apply(ctx context.Context, imagePath string) error
}

// Noop is the Setter for platforms without wallpaper support. It reports
// the skip and does nothing else.
type Noop struct {
	notice func(msg string)
}

// NewNoop creates a Noop setter. notice may be nil.
func NewNoop(notice func(msg string)) *Noop {
	return &Noop{notice: notice}
}

// Apply implements Setter.
func (n *Noop) Apply(ctx context.Context, imagePath string) error {
	if n.notice != nil {
		n.notice("Wallpaper not supported on this platform; skipping.")
	}
	return nil
}
