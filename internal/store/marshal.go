package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// marshalStore encodes a store as a YAML sequence of {id, file} mappings.
// Output is deterministic: field order follows Item and item order follows the store.
func marshalStore(s Store) ([]byte, error) {
	items := s.Items
	if items == nil {
		items = []Item{}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(items); err != nil {
		return nil, fmt.Errorf("marshal store: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal store: %w", err)
	}
	return buf.Bytes(), nil
}

// unmarshalStore parses YAML produced by marshalStore.
// Unknown keys and additional documents are rejected. An empty document is the empty store.
func unmarshalStore(data []byte) (Store, error) {
	var items []Item
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&items); err != nil {
		if errors.Is(err, io.EOF) {
			return Store{}, nil
		}
		return Store{}, fmt.Errorf("unmarshal store: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return Store{}, errors.New("unmarshal store: trailing content after first document")
	}
	if len(items) == 0 {
		return Store{}, nil
	}
	return Store{Items: items}, nil
}
