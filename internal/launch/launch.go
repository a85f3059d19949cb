// Package launch opens files with the platform's default application.
package launch

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
)

// ErrUnsupportedPlatform is returned when no default-application opener is known for the OS.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Launcher opens a path with its associated application.
type Launcher interface {
	Launch(path string) error
}

// LaunchError reports a failure to start the opener for a path.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// System launches through the OS opener (open, xdg-open, start).
// The child is started and released; System never waits for it, so the
// opened application's exit status is not observed.
type System struct {
	GOOS string

	start func(*exec.Cmd) error
}

// NewSystem returns a System for the running OS.
func NewSystem() *System {
	return &System{GOOS: runtime.GOOS, start: startDetached}
}

// Launch opens path with the default application.
func (s *System) Launch(path string) error {
	cmd, err := Command(s.GOOS, path)
	if err != nil {
		return &LaunchError{Path: path, Err: err}
	}

	start := s.start
	if start == nil {
		start = startDetached
	}

	slog.Debug("launching", "path", path, "cmd", cmd.Args)
	if err := start(cmd); err != nil {
		return &LaunchError{Path: path, Err: err}
	}
	return nil
}

// Command builds the opener invocation for path on goos.
func Command(goos, path string) (*exec.Cmd, error) {
	switch goos {
	case "darwin":
		return exec.Command("open", path), nil
	case "windows":
		// The empty argument is the window title; without it start treats a quoted path as the title.
		return exec.Command("cmd", "/c", "start", "", path), nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "illumos":
		return exec.Command("xdg-open", path), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
