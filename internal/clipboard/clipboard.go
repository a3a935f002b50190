// Package clipboard provides the copy sinks the viewer writes selections to.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned by Detect when no sink works on this system.
var ErrUnavailable = errors.New("clipboard: no sink available")

// Sink receives copied text.
type Sink interface {
	WriteText(text string) error
	Name() string
}

// System writes through atotto/clipboard.
type System struct{}

func (System) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}
	return nil
}

func (System) Name() string { return "system" }

// Command pipes the text to an external program's stdin.
type Command struct {
	Args []string
}

func (c Command) WriteText(text string) error {
	if len(c.Args) == 0 {
		return ErrUnavailable
	}
	cmd := exec.Command(c.Args[0], c.Args[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %w: %s", c.Args[0], err, msg)
		}
		return fmt.Errorf("%s: %w", c.Args[0], err)
	}
	return nil
}

func (c Command) Name() string {
	if len(c.Args) == 0 {
		return "command"
	}
	return c.Args[0]
}

var (
	lookPath          = exec.LookPath
	systemUnsupported = func() bool { return clipboard.Unsupported }
)

// Detect picks a sink. A configured command wins; then the system
// clipboard; then the first known clipboard program found on PATH.
func Detect(command []string) (Sink, error) {
	return detect(runtime.GOOS, command, !systemUnsupported(), lookPath)
}

func detect(goos string, command []string, systemOK bool, lookPath func(string) (string, error)) (Sink, error) {
	if len(command) > 0 && command[0] != "" {
		path, err := lookPath(command[0])
		if err != nil {
			return nil, fmt.Errorf("clipboard command %q: %w", command[0], err)
		}
		args := append([]string{path}, command[1:]...)
		return Command{Args: args}, nil
	}

	if systemOK {
		return System{}, nil
	}

	if args, ok := detectCommand(goos, lookPath); ok {
		return Command{Args: args}, nil
	}
	return nil, ErrUnavailable
}

func detectCommand(goos string, lookPath func(string) (string, error)) ([]string, bool) {
	trySingle := func(candidates ...string) ([]string, bool) {
		for _, candidate := range candidates {
			if path, err := lookPath(candidate); err == nil && path != "" {
				return []string{path}, true
			}
		}
		return nil, false
	}

	if strings.EqualFold(goos, "windows") {
		if cmd, ok := trySingle("clip.exe", "clip"); ok {
			return cmd, true
		}
		for _, ps := range []string{"powershell", "powershell.exe", "pwsh"} {
			if path, err := lookPath(ps); err == nil && path != "" {
				return []string{path, "-NoLogo", "-NoProfile", "-Command", "Set-Clipboard"}, true
			}
		}
		return nil, false
	}

	if path, err := lookPath("xclip"); err == nil && path != "" {
		return []string{path, "-selection", "clipboard"}, true
	}
	if path, err := lookPath("xsel"); err == nil && path != "" {
		return []string{path, "--clipboard", "--input"}, true
	}
	return trySingle("pbcopy", "wl-copy")
}
