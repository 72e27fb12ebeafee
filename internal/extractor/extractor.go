package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

// urlPatterns covers the YouTube URL shapes the service accepts. Anything
// else is rejected before a single network call is made.
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https?://(?:www\.|m\.)?youtube\.com/watch\?.*v=[a-zA-Z0-9_-]{11}`),
	regexp.MustCompile(`^https?://youtu\.be/[a-zA-Z0-9_-]{11}`),
	regexp.MustCompile(`^https?://(?:www\.)?youtube\.com/(?:embed|v)/[a-zA-Z0-9_-]{11}`),
	regexp.MustCompile(`^https?://(?:www\.)?youtube\.com/shorts/[a-zA-Z0-9_-]{11}`),
	regexp.MustCompile(`^https?://(?:www\.)?youtube\.com/live/[a-zA-Z0-9_-]{11}`),
}

// ValidateURL reports whether url matches a recognized YouTube URL shape.
func (e *implExtractor) ValidateURL(url string) bool {
	for _, p := range urlPatterns {
		if p.MatchString(url) {
			return true
		}
	}
	return false
}

// ExtractInfo runs yt-dlp to fetch the video's info JSON without downloading
// any media. The call is bounded by the configured extract timeout.
func (e *implExtractor) ExtractInfo(ctx context.Context, url string) (*VideoInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(e.cfg.Video.ExtractTimeout)*time.Second)
	defer cancel()

	args := []string{
		"-J",
		"--skip-download",
		"--no-warnings",
		url,
	}

	e.logger.Debug(ctx, "Extracting video info: %s", url)

	out, err := e.executor.Execute(ctx, e.cfg.Video.YtdlpPath, args...)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp extract: %w", err)
	}

	var info VideoInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		return nil, fmt.Errorf("decode video info: %w", err)
	}
	if info.ID == "" {
		return nil, fmt.Errorf("video info has no id")
	}

	e.logger.Info(ctx, "Video %s: duration %d:%02d, %d subtitle languages, %d auto-caption languages",
		info.ID, info.DurationSeconds()/60, info.DurationSeconds()%60,
		len(info.Subtitles), len(info.AutomaticCaptions))

	return &info, nil
}
