package captions

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/nguyentantai21042004/summary-flow/internal/extractor"
)

// maxCaptionBytes caps a caption download. Even multi-hour auto captions stay
// well under this.
const maxCaptionBytes = 4 * 1024 * 1024

// Download fetches the raw caption payload from the track URL.
func (f *implFetcher) Download(ctx context.Context, track *extractor.CaptionTrack) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, track.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build caption request: %w", err)
	}

	f.logger.Debug(ctx, "Downloading captions: %s (%s, %s)", track.Name, track.Language, track.Ext)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download captions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download captions: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCaptionBytes))
	if err != nil {
		return nil, fmt.Errorf("read captions: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("download captions: empty response")
	}

	return data, nil
}
