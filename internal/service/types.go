package service

// SummarizeResult holds everything the summarize response surfaces about
// a processed video.
type SummarizeResult struct {
	VideoID      string
	Title        string
	ThumbnailURL string
	AspectRatio  float64
	WebpageURL   string
	Summary      string
}
