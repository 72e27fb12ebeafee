package service

import "context"

// Service orchestrates the summarize and chat flows.
type Service interface {
	// Summarize runs the full pipeline for a video URL: metadata, caption
	// selection, download, parse, cache and LLM summary.
	Summarize(ctx context.Context, url string) (*SummarizeResult, error)
	// Chat answers a question against a previously cached transcript.
	Chat(ctx context.Context, videoID, question string) (string, error)
}
