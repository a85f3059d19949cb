// Package store provides file-backed persistence for shelf marks.
//
// The store is a single YAML file named "files" inside the configuration
// home directory. It holds an ordered sequence of (id, file) records:
//
//	- id: notes
//	  file: /home/me/notes.md
//	- id: todo
//	  file: ./TODO.txt
//
// # Lifecycle
//
//   - Read synthesizes and persists an empty store when the file is missing,
//     so the file always exists after the first invocation.
//   - Write replaces the whole file; there are no incremental updates.
//   - There is no locking. Two processes doing read-modify-write at the same
//     time can lose one update (last writer wins).
//
// Ordering and uniqueness of ids are maintained by the callers in
// internal/marks, not by this package.
package store
