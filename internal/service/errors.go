package service

import (
	"errors"
	"fmt"
)

// Sentinel errors the HTTP layer maps to status codes.
var (
	ErrInvalidURL = errors.New("invalid YouTube URL")
	ErrTooLong    = errors.New("video duration exceeds the maximum allowed")
	ErrExtraction = errors.New("failed to extract video info")
	ErrDownload   = errors.New("failed to download captions")
	ErrSummarize  = errors.New("failed to generate summary")
	ErrNotCached  = errors.New("transcript not found for this video")
)

// NoCaptionsError reports a video with no caption tracks of any kind.
// It carries the video ID so the response can name the video.
type NoCaptionsError struct {
	VideoID string
}

func (e *NoCaptionsError) Error() string {
	return fmt.Sprintf("captions are not available for video %s", e.VideoID)
}
