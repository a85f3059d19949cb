package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// createTestHome returns a home directory that does not exist yet.
func createTestHome(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "shelf")
}

// writeRaw puts raw bytes in the backing file, bypassing Write.
func writeRaw(t *testing.T, home, content string) {
	t.Helper()
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(Path(home), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func assertStoreEqual(t *testing.T, got, want Store) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("store = %+v, want %+v", got, want)
	}
}
