package marks

import (
	"slices"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/roach88/shelf/internal/store"
)

// Upsert returns s with item applied, leaving s untouched.
//
// If an item with the same id exists, its file is replaced in place and its
// position kept. The replacement path is converted lossily: invalid byte
// sequences become U+FFFD. Otherwise item is appended, but only if its
// path is valid text; an invalid path yields an *EncodingError.
func Upsert(s store.Store, item store.Item) (store.Store, error) {
	if i := s.Index(item.ID); i >= 0 {
		items := slices.Clone(s.Items)
		items[i].File = lossyText(item.File)
		return store.Store{Items: items}, nil
	}

	if !isText(item.File) {
		return s, &EncodingError{Path: item.File}
	}

	items := append(slices.Clone(s.Items), item)
	return store.Store{Items: items}, nil
}

// Delete returns s without the first item whose id matches, leaving s untouched.
// The bool reports whether an item was removed.
func Delete(s store.Store, id string) (store.Store, bool) {
	i := s.Index(id)
	if i < 0 {
		return s, false
	}

	items := slices.Delete(slices.Clone(s.Items), i, i+1)
	if len(items) == 0 {
		return store.Store{}, true
	}
	return store.Store{Items: items}, true
}

// isText reports whether path is valid UTF-8.
func isText(path string) bool {
	_, _, err := transform.String(encoding.UTF8Validator, path)
	return err == nil
}

// lossyText replaces invalid UTF-8 sequences in path with U+FFFD.
func lossyText(path string) string {
	out, _, err := transform.String(unicode.UTF8.NewDecoder(), path)
	if err != nil {
		return strings.ToValidUTF8(path, "\uFFFD")
	}
	return out
}
