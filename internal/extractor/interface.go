package extractor

import "context"

// Extractor defines the interface for video metadata and caption track access.
type Extractor interface {
	// ValidateURL reports whether the URL matches a recognized YouTube shape.
	ValidateURL(url string) bool
	// ExtractInfo fetches video metadata via yt-dlp.
	ExtractInfo(ctx context.Context, url string) (*VideoInfo, error)
	// SelectTrack picks the highest-priority caption track, false when the
	// video has no tracks at all.
	SelectTrack(info *VideoInfo) (*CaptionTrack, bool)
}
