package clipboard

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func fakeLookPath(available map[string]string) func(string) (string, error) {
	return func(name string) (string, error) {
		if path, ok := available[name]; ok {
			return path, nil
		}
		return "", exec.ErrNotFound
	}
}

func TestDetectPrefersConfiguredCommand(t *testing.T) {
	look := fakeLookPath(map[string]string{"mycopy": "/opt/bin/mycopy"})
	sink, err := detect("linux", []string{"mycopy", "--primary"}, true, look)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	cmd, ok := sink.(Command)
	if !ok {
		t.Fatalf("expected Command sink, got %T", sink)
	}
	if diff := cmp.Diff([]string{"/opt/bin/mycopy", "--primary"}, cmd.Args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectConfiguredCommandMissing(t *testing.T) {
	_, err := detect("linux", []string{"nope"}, true, fakeLookPath(nil))
	if !errors.Is(err, exec.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDetectUsesSystemClipboard(t *testing.T) {
	sink, err := detect("darwin", nil, true, fakeLookPath(nil))
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if sink.Name() != "system" {
		t.Fatalf("expected system sink, got %s", sink.Name())
	}
}

func TestDetectFallbackCommands(t *testing.T) {
	tests := []struct {
		name      string
		goos      string
		available map[string]string
		want      []string
	}{
		{
			name:      "xclip selects the clipboard",
			goos:      "linux",
			available: map[string]string{"xclip": "/usr/bin/xclip", "wl-copy": "/usr/bin/wl-copy"},
			want:      []string{"/usr/bin/xclip", "-selection", "clipboard"},
		},
		{
			name:      "xsel input mode",
			goos:      "linux",
			available: map[string]string{"xsel": "/usr/bin/xsel"},
			want:      []string{"/usr/bin/xsel", "--clipboard", "--input"},
		},
		{
			name:      "wayland",
			goos:      "linux",
			available: map[string]string{"wl-copy": "/usr/bin/wl-copy"},
			want:      []string{"/usr/bin/wl-copy"},
		},
		{
			name:      "windows clip",
			goos:      "windows",
			available: map[string]string{"clip.exe": `C:\Windows\System32\clip.exe`},
			want:      []string{`C:\Windows\System32\clip.exe`},
		},
		{
			name:      "windows powershell",
			goos:      "windows",
			available: map[string]string{"pwsh": `C:\pwsh.exe`},
			want:      []string{`C:\pwsh.exe`, "-NoLogo", "-NoProfile", "-Command", "Set-Clipboard"},
		},
	}

	for _, tt := range tests {
		sink, err := detect(tt.goos, nil, false, fakeLookPath(tt.available))
		if err != nil {
			t.Fatalf("%s: detect: %v", tt.name, err)
		}
		cmd, ok := sink.(Command)
		if !ok {
			t.Fatalf("%s: expected Command sink, got %T", tt.name, sink)
		}
		if diff := cmp.Diff(tt.want, cmd.Args); diff != "" {
			t.Fatalf("%s: args mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestDetectNothingAvailable(t *testing.T) {
	if _, err := detect("linux", nil, false, fakeLookPath(nil)); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestCommandWritesStdin(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	out := filepath.Join(t.TempDir(), "clip.txt")
	sink := Command{Args: []string{sh, "-c", "cat > " + out}}

	if err := sink.WriteText("41 42 43"); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "41 42 43" {
		t.Fatalf("unexpected clipboard content %q", got)
	}
}

func TestCommandFailureIsReported(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	sink := Command{Args: []string{sh, "-c", "echo boom >&2; exit 3"}}
	err = sink.WriteText("x")
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected exit error, got %v", err)
	}
}

func TestEmptyCommandUnavailable(t *testing.T) {
	if err := (Command{}).WriteText("x"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
