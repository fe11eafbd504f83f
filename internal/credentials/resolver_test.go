package credentials

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeKeyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nasa_apod_key")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolver_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		cliValue string
		envValue string
		fileKey  string
		want     string
	}{
		{"cli wins over env and file", "cli-key", "env-key", "file-key", "cli-key"},
		{"cli wins over env", "cli-key", "env-key", "", "cli-key"},
		{"env wins over file", "", "env-key", "file-key", "env-key"},
		{"file used last", "", "", "file-key", "file-key"},
		{"whitespace cli falls through", "   ", "env-key", "", "env-key"},
		{"file content trimmed", "", "", "  file-key\n", "file-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STARHOP_TEST_KEY", tt.envValue)

			r := &Resolver{
				EnvVar:      "STARHOP_TEST_KEY",
				KeyFilePath: writeKeyFile(t, tt.fileKey),
			}

			got, err := r.Resolve(tt.cliValue)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolver_NoKey(t *testing.T) {
	t.Setenv("STARHOP_TEST_KEY", "")

	r := &Resolver{
		EnvVar:      "STARHOP_TEST_KEY",
		KeyFilePath: filepath.Join(t.TempDir(), "missing"),
	}

	_, err := r.Resolve("")
	if !errors.Is(err, ErrNoKey) {
		t.Errorf("Resolve() error = %v, want ErrNoKey", err)
	}
}

func TestResolver_DemoKeyRejected(t *testing.T) {
	tests := []struct {
		name     string
		cliValue string
		envValue string
		fileKey  string
	}{
		{"from cli", "DEMO_KEY", "", ""},
		{"from env", "", "DEMO_KEY", ""},
		{"from file", "", "", "DEMO_KEY\n"},
		{"lowercase", "demo_key", "", ""},
		{"mixed case", "Demo_Key", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STARHOP_TEST_KEY", tt.envValue)

			r := &Resolver{
				EnvVar:      "STARHOP_TEST_KEY",
				KeyFilePath: writeKeyFile(t, tt.fileKey),
			}

			_, err := r.Resolve(tt.cliValue)
			if !errors.Is(err, ErrDemoKey) {
				t.Errorf("Resolve() error = %v, want ErrDemoKey", err)
			}
		})
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"abcdefghijkl", "abcd…ijkl"},
		{"12345678", "1234…5678"},
		{"short", "****"},
		{"", "****"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := Mask(tt.key); got != tt.want {
				t.Errorf("Mask(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
