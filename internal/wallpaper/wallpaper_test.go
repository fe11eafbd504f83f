package wallpaper

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type call struct {
	args []string
}

func fakeRunner(calls *[]call, failFirst bool) Runner {
	return func(ctx context.Context, args ...string) error {
		*calls = append(*calls, call{args: args})
		if failFirst && len(*calls) == 1 {
			return errors.New("compositor busy")
		}
		return nil
	}
}

func TestMacOS_RunsBothMechanisms(t *testing.T) {
	var calls []call
	m := &MacOS{run: fakeRunner(&calls, false)}

	if err := m.Apply(context.Background(), "/tmp/apod/2024-01-01.png"); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if len(calls) != 2 {
		t.Fatalf("got %d osascript invocations, want 2", len(calls))
	}

	// First: AppleScript over every desktop.
	first := strings.Join(calls[0].args, " ")
	if !strings.Contains(first, "every desktop") {
		t.Errorf("first invocation should target every desktop: %q", first)
	}
	if !strings.Contains(first, "/tmp/apod/2024-01-01.png") {
		t.Errorf("first invocation should carry the image path: %q", first)
	}

	// Second: JXA styling pass.
	if calls[1].args[0] != "-l" || calls[1].args[1] != "JavaScript" {
		t.Errorf("second invocation should use the JavaScript OSA language: %v", calls[1].args[:2])
	}
	second := strings.Join(calls[1].args, " ")
	if !strings.Contains(second, "NSWorkspaceDesktopImageAllowClippingKey") {
		t.Errorf("styling pass should disable clipping: %q", second)
	}
}

func TestMacOS_FirstMechanismFailureDoesNotStopSecond(t *testing.T) {
	var calls []call
	var notices []string
	m := &MacOS{
		run:    fakeRunner(&calls, true),
		notice: func(msg string) { notices = append(notices, msg) },
	}

	if err := m.Apply(context.Background(), "/tmp/pic.png"); err != nil {
		t.Fatalf("Apply() error = %v, mechanism failure must not propagate", err)
	}

	if len(calls) != 2 {
		t.Errorf("got %d invocations, want 2 even after first failure", len(calls))
	}

	var failureLogged bool
	for _, n := range notices {
		if strings.Contains(n, "continuing") {
			failureLogged = true
		}
	}
	if !failureLogged {
		t.Errorf("failure should be logged, notices = %v", notices)
	}
}

func TestNoop_Apply(t *testing.T) {
	var notices []string
	n := NewNoop(func(msg string) { notices = append(notices, msg) })

	if err := n.Apply(context.Background(), "/anywhere.png"); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(notices) != 1 {
		t.Errorf("noop should report the skip once, got %v", notices)
	}
}
