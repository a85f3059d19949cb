// Package marks implements the shelf commands on top of the store.
//
// Every operation reads the store fresh from conf.Home. Add and Remove
// write the full store back; Open and List never write (apart from the
// empty store Read creates on first use).
package marks

import (
	"log/slog"

	"github.com/roach88/shelf/internal/config"
	"github.com/roach88/shelf/internal/launch"
	"github.com/roach88/shelf/internal/store"
)

// Add records file under id, replacing the path of an existing mark with the same id.
func Add(conf config.AppConfig, id, file string) error {
	s, err := store.Read(conf.Home)
	if err != nil {
		return err
	}

	updated, err := Upsert(s, store.Item{ID: id, File: file})
	if err != nil {
		return err
	}

	if err := store.Write(conf.Home, updated); err != nil {
		return err
	}
	slog.Debug("mark added", "id", id, "file", file)
	return nil
}

// Remove deletes the first mark with id. A missing id is not an error;
// the store is written back unchanged and false is returned.
func Remove(conf config.AppConfig, id string) (bool, error) {
	s, err := store.Read(conf.Home)
	if err != nil {
		return false, err
	}

	updated, removed := Delete(s, id)
	slog.Debug("mark remove", "id", id, "removed", removed)

	if err := store.Write(conf.Home, updated); err != nil {
		return false, err
	}
	return removed, nil
}

// Open hands the path stored under id to l unchanged.
func Open(conf config.AppConfig, id string, l launch.Launcher) error {
	s, err := store.Read(conf.Home)
	if err != nil {
		return err
	}

	item, ok := s.Find(id)
	if !ok {
		return &NotFoundError{ID: id}
	}

	slog.Debug("opening mark", "id", id, "file", item.File)
	return l.Launch(item.File)
}

// List returns all marks in store order.
func List(conf config.AppConfig) ([]store.Item, error) {
	s, err := store.Read(conf.Home)
	if err != nil {
		return nil, err
	}
	return s.Items, nil
}

// Line formats item the way list prints it.
func Line(item store.Item) string {
	return item.ID + " => " + item.File
}
