package store

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Write replaces the store kept in home, creating home if needed.
//
// The new content goes to a uniquely named sibling file which is then
// renamed over the backing file. This keeps a crash from leaving a
// half-written store behind; it is not a lock and does not stop concurrent
// writers from overwriting each other.
func Write(home string, s Store) error {
	if err := os.MkdirAll(home, 0o755); err != nil {
		return &IOError{Op: "mkdir", Path: home, Err: err}
	}

	data, err := marshalStore(s)
	if err != nil {
		return &SerializeError{Err: err}
	}

	path := Path(home)
	// Write through a symlinked backing file instead of replacing the link.
	if target, err := filepath.EvalSymlinks(path); err == nil {
		path = target
	}
	tmp := filepath.Join(filepath.Dir(path), ".files-"+uuid.NewString()+".tmp")

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		os.Remove(tmp)
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &IOError{Op: "write", Path: path, Err: err}
	}

	slog.Debug("store written", "path", path, "items", s.Len())
	return nil
}
