package store

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
)

// Read loads the store kept in home.
//
// If the backing file does not exist yet, an empty store is written first
// and then read back, so the file is guaranteed to exist afterwards.
func Read(home string) (Store, error) {
	path := Path(home)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		slog.Debug("store missing, creating empty store", "path", path)
		if err := Write(home, Store{}); err != nil {
			return Store{}, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Store{}, &IOError{Op: "read", Path: path, Err: err}
	}

	s, err := unmarshalStore(data)
	if err != nil {
		return Store{}, &ParseError{Path: path, Err: err}
	}

	slog.Debug("store loaded", "path", path, "items", s.Len())
	return s, nil
}
