package credentials

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoKey is returned when no source yields a usable API key.
var ErrNoKey = errors.New(
	"NASA API key is required. Re-run the installer to save your key, " +
		"or pass --api-key / set the key environment variable")

// ErrDemoKey is returned when the shared demo credential is supplied.
// DEMO_KEY is heavily rate limited and shared across all anonymous users,
// so it is rejected no matter where it came from.
var ErrDemoKey = errors.New("DEMO_KEY is not allowed. Please supply your personal NASA API key")

// Resolver locates an API key. Sources are checked in order: explicit CLI
// value, environment variable, then the per-user key file written by the
// installer.
type Resolver struct {
	// EnvVar is the name of the environment variable holding the key.
	EnvVar string

	// KeyFilePath is the per-user file holding a single plain-text key.
	KeyFilePath string
}

// Resolve returns the first non-empty key from CLI value, environment, or
// key file, rejecting the demo sentinel regardless of source.
//
// A missing key file is not an error; an unreadable one is ignored the same
// way so a stale installer artifact can't break the tool.
func (r *Resolver) Resolve(cliValue string) (string, error) {
	key := strings.TrimSpace(cliValue)

	if key == "" {
		key = strings.TrimSpace(os.Getenv(r.EnvVar))
	}

	if key == "" {
		if data, err := os.ReadFile(r.KeyFilePath); err == nil {
			key = strings.TrimSpace(string(data))
		}
	}

	if key == "" {
		return "", ErrNoKey
	}

	if strings.EqualFold(key, "DEMO_KEY") {
		return "", ErrDemoKey
	}

	return key, nil
}

// Mask elides the middle of a key for log output: first and last four
// characters visible when the key is long enough, fully masked otherwise.
//
//	Mask("abcdefghijkl")  // "abcd…ijkl"
//	Mask("short")         // "****"
func Mask(key string) string {
	if len(key) >= 8 {
		return fmt.Sprintf("%s…%s", key[:4], key[len(key)-4:])
	}
	return "****"
}
