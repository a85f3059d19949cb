package store

import (
	"fmt"
	"path/filepath"
)

// FileName is the name of the backing file inside the home directory.
const FileName = "files"

// Item maps a mark id to a file path.
type Item struct {
	ID   string `yaml:"id" json:"id"`
	File string `yaml:"file" json:"file"`
}

// Store is the ordered list of marks.
// A nil Items slice and an empty one are both the empty store.
type Store struct {
	Items []Item
}

// Len returns the number of items.
func (s Store) Len() int {
	return len(s.Items)
}

// Find returns the first item with the given id.
func (s Store) Find(id string) (Item, bool) {
	if i := s.Index(id); i >= 0 {
		return s.Items[i], true
	}
	return Item{}, false
}

// Index returns the position of the first item with the given id, or -1.
func (s Store) Index(id string) int {
	for i, item := range s.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Path returns the location of the backing file for a home directory.
func Path(home string) string {
	return filepath.Join(home, FileName)
}

// IOError reports a filesystem failure while reading or writing the store.
type IOError struct {
	Op   string // "read", "write" or "mkdir"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError reports a backing file that exists but does not hold a valid store.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SerializeError reports a store that could not be encoded.
type SerializeError struct {
	Err error
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("serialize store: %v", e.Err)
}

func (e *SerializeError) Unwrap() error {
	return e.Err
}
