package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/summary-flow/internal/cache"
)

// Summarize runs the pipeline end to end. The transcript is re-fetched even
// when already cached, so a refreshed caption track replaces the old entry.
func (s *implService) Summarize(ctx context.Context, url string) (*SummarizeResult, error) {
	start := time.Now()

	if !s.extractor.ValidateURL(url) {
		return nil, ErrInvalidURL
	}

	info, err := s.extractor.ExtractInfo(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	duration := info.DurationSeconds()
	if duration >= s.cfg.Video.MaxDuration {
		return nil, fmt.Errorf("%w: %ds (max %ds)", ErrTooLong, duration, s.cfg.Video.MaxDuration)
	}

	track, ok := s.extractor.SelectTrack(info)
	if !ok {
		return nil, &NoCaptionsError{VideoID: info.ID}
	}

	s.logger.Info(ctx, "Processing %s: duration %ds, track %s/%s (auto=%t)",
		info.ID, duration, track.Language, track.Ext, track.Auto)

	if s.index != nil && s.index.Has(info.ID) {
		s.logger.Info(ctx, "Transcript for %s already cached, refreshing", info.ID)
	}

	raw, err := s.captions.Download(ctx, track)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}

	transcript, err := s.captions.Parse(track.Ext, raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s captions: %w", track.Ext, err)
	}

	if err := s.cache.Put(info.ID, transcript); err != nil {
		return nil, fmt.Errorf("cache transcript: %w", err)
	}

	summary, err := s.summarizer.Summarize(ctx, info.Title, transcript)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSummarize, err)
	}

	s.logger.Info(ctx, "[DONE] %s: %d transcript chars in %s",
		info.ID, len(transcript), time.Since(start).Round(time.Millisecond))

	return &SummarizeResult{
		VideoID:      info.ID,
		Title:        info.Title,
		ThumbnailURL: info.BestThumbnailURL(),
		AspectRatio:  info.ResolvedAspectRatio(),
		WebpageURL:   info.ResolvedWebpageURL(),
		Summary:      summary,
	}, nil
}

// Chat answers a question from the cached transcript only; it never reaches
// back out to the video. The watcher index answers the negative case without
// touching disk; the cache read stays authoritative on a hit.
func (s *implService) Chat(ctx context.Context, videoID, question string) (string, error) {
	if s.index != nil && !s.index.Has(videoID) {
		return "", fmt.Errorf("%w: %s", ErrNotCached, videoID)
	}

	transcript, err := s.cache.Get(videoID)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrNotCached, videoID)
		}
		return "", fmt.Errorf("read transcript: %w", err)
	}

	answer, err := s.summarizer.Answer(ctx, question, transcript)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummarize, err)
	}

	return answer, nil
}
