package dirgroup

import "errors"

// Validation errors returned before any traversal begins. They are
// wrapped with context; match with errors.Is.
var (
	// ErrNotDirectory indicates the request path is missing or not a directory.
	ErrNotDirectory = errors.New("path is not a directory")

	// ErrInvalidSizeRange indicates size bounds that cannot match any file.
	ErrInvalidSizeRange = errors.New("invalid size range")
)
