// Package config resolves where shelf keeps its data.
package config

import (
	"os"
	"path/filepath"
)

// AppName names the per-user configuration directory.
const AppName = "shelf"

// AppConfig is passed explicitly to every operation.
type AppConfig struct {
	// Home is the directory holding the backing "files" store.
	Home string
}

// New returns an AppConfig for home, or for DefaultHome if home is empty.
func New(home string) AppConfig {
	if home == "" {
		home = DefaultHome()
	}
	return AppConfig{Home: home}
}

// DefaultHome returns the per-user configuration directory for shelf.
//
// Resolution order:
//   - <os.UserConfigDir()>/shelf
//   - ~/.shelf
//   - .shelf in the working directory
func DefaultHome() string {
	return defaultHome(os.UserConfigDir, os.UserHomeDir)
}

func defaultHome(configDir, homeDir func() (string, error)) string {
	if dir, err := configDir(); err == nil && dir != "" {
		return filepath.Join(dir, AppName)
	}
	if dir, err := homeDir(); err == nil && dir != "" {
		return filepath.Join(dir, "."+AppName)
	}
	return "." + AppName
}
