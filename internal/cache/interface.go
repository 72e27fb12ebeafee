package cache

import "errors"

// ErrNotFound is returned by Get when no transcript is cached for the video.
// Callers branch on it to distinguish "not cached yet" from real I/O faults.
var ErrNotFound = errors.New("transcript not cached")

// Cache defines the interface for the on-disk transcript store.
type Cache interface {
	// Get returns the cached transcript for a video, ErrNotFound when absent.
	Get(videoID string) (string, error)
	// Put stores the transcript, overwriting any previous entry.
	Put(videoID, text string) error
	// Keys lists the video IDs currently cached.
	Keys() ([]string, error)
}
