package driven

import "context"

// FileWatcher notifies about changes to a single file.
type FileWatcher interface {
	// Watch blocks until ctx is cancelled. It calls onChange once after the
	// watch is registered, then after each debounced modification of path.
	// Calls to onChange are serialised.
	Watch(ctx context.Context, path string, onChange func(ctx context.Context)) error
}
