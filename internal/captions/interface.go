package captions

import (
	"context"

	"github.com/nguyentantai21042004/summary-flow/internal/extractor"
)

// Fetcher defines the interface for caption retrieval and normalization.
type Fetcher interface {
	// Download fetches the raw caption payload for a selected track.
	Download(ctx context.Context, track *extractor.CaptionTrack) ([]byte, error)
	// Parse turns a raw caption payload into plain transcript text,
	// dispatching on the track's format extension.
	Parse(ext string, data []byte) (string, error)
}
