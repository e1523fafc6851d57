package driven

import "context"

// FileWatcher reports changes to a file.
type FileWatcher interface {
	// Watch emits one value per burst of changes to path until ctx is done.
	// The channel is closed when watching stops.
	Watch(ctx context.Context, path string) (<-chan WatchEvent, error)
}

// WatchEvent is one coalesced change notification.
type WatchEvent struct {
	// Path is the file that changed.
	Path string

	// Err is set when the underlying watcher reported a failure.
	Err error
}
