package watcher

import "context"

// Watcher keeps an in-memory index of which transcripts are on disk by
// watching the cache directory. The index is advisory: the cache itself
// stays the source of truth, the index only saves a disk probe for
// logging and quick checks.
type Watcher interface {
	// Start begins watching. It returns after the watch is established;
	// event handling continues in the background until Stop or ctx is done.
	Start(ctx context.Context) error
	// Stop closes the underlying watch and releases resources.
	Stop() error
	// Has reports whether a transcript for videoID was seen on disk.
	Has(videoID string) bool
}
