package marks

import "fmt"

// NotFoundError is returned by Open when no mark has the requested id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("mark %q not found", e.ID)
}

// EncodingError is returned by Add when a new mark's path is not valid UTF-8 text.
type EncodingError struct {
	Path string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("file %q contains non-unicode characters", e.Path)
}
