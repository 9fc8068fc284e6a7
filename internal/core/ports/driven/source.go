package driven

import "context"

// SourceReader loads the input text of a conversion.
type SourceReader interface {
	// Read returns the decoded text at path.
	// Returns domain.ErrMissingInput when the file does not exist.
	Read(ctx context.Context, path string) (string, error)
}
