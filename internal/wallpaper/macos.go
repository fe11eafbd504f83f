package wallpaper

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// allDesktopsScript sets the picture on every desktop across all displays.
// The delay between desktops works around a race in the compositor when
// Spaces update back to back.
const allDesktopsScript = `tell application "System Events"
  set p to "%s"
  set ds to a reference to every desktop
  repeat with d in ds
    set picture of contents of d to p
    delay 0.1
  end repeat
end tell`

// styleScript is a JXA snippet using the ObjC bridge to restyle the active
// desktop per physical screen: fit-to-screen scaling, no cropping, black
// fill behind the letterbox bars.
const styleScript = `ObjC.import('AppKit');
var ws = $.NSWorkspace.sharedWorkspace;
var url = $.NSURL.fileURLWithPath('%s');
var opts = $.NSMutableDictionary.alloc.init;
opts.setObjectForKey($.NSNumber.numberWithInt($.NSImageScaleProportionallyUpOrDown), $.NSWorkspaceDesktopImageScalingKey);
opts.setObjectForKey($.NSNumber.numberWithBool(false), $.NSWorkspaceDesktopImageAllowClippingKey);
opts.setObjectForKey($.NSColor.blackColor, $.NSWorkspaceDesktopImageFillColorKey);
var screens = $.NSScreen.screens;
for (var i = 0; i < screens.count; i++) {
  var err = $();
  ws.setDesktopImageURLForScreenOptionsError(url, screens.objectAtIndex(i), opts, err);
}`

// Runner executes an osascript invocation. Tests substitute a recorder.
type Runner func(ctx context.Context, args ...string) error

// MacOS applies wallpaper through two independent mechanisms:
//
//  1. AppleScript via System Events, which reaches every desktop on every
//     display (including inactive Spaces).
//  2. A JXA ObjC-bridge call to NSWorkspace, which styles the currently
//     active desktop per screen (scaling, clipping, fill color).
//
// Either mechanism failing is logged and does not stop the other.
type MacOS struct {
	run    Runner
	notice func(msg string)
}

// NewMacOS creates the macOS setter. notice may be nil.
func NewMacOS(notice func(msg string)) *MacOS {
	return &MacOS{run: runOsascript, notice: notice}
}

func runOsascript(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "/usr/bin/osascript", args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("osascript: %v: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Apply implements Setter. It returns an error only when the image path
// itself is unusable; mechanism failures are absorbed.
func (m *MacOS) Apply(ctx context.Context, imagePath string) error {
	abs, err := filepath.Abs(imagePath)
	if err != nil {
		return err
	}

	quoted := strings.ReplaceAll(abs, `"`, `\"`)
	if err := m.run(ctx, "-e", fmt.Sprintf(allDesktopsScript, quoted)); err != nil {
		m.say("AppleScript step failed; continuing: " + err.Error())
	} else {
		m.say("Wallpaper image applied to all desktops (AppleScript).")
	}

	jsQuoted := strings.ReplaceAll(strings.ReplaceAll(abs, `\`, `\\`), `'`, `\'`)
	if err := m.run(ctx, "-l", "JavaScript", "-e", fmt.Sprintf(styleScript, jsQuoted)); err != nil {
		m.say("Desktop styling step skipped: " + err.Error())
	} else {
		m.say("Applied fit-to-screen scaling with black fill.")
	}

	return nil
}

func (m *MacOS) say(msg string) {
	if m.notice != nil {
		m.notice(msg)
	}
}
