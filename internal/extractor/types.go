package extractor

// VideoInfo is the subset of yt-dlp's info JSON the pipeline consumes.
// It is produced once per request and never persisted.
type VideoInfo struct {
	ID                string                    `json:"id"`
	Title             string                    `json:"title"`
	Duration          float64                   `json:"duration"` // seconds
	WebpageURL        string                    `json:"webpage_url"`
	AspectRatio       float64                   `json:"aspect_ratio"`
	Thumbnails        []Thumbnail               `json:"thumbnails"`
	Subtitles         map[string][]CaptionTrack `json:"subtitles"`
	AutomaticCaptions map[string][]CaptionTrack `json:"automatic_captions"`
}

type Thumbnail struct {
	URL        string `json:"url"`
	Preference int    `json:"preference"`
}

// CaptionTrack is one selectable subtitle stream. Language and Auto are not
// part of the yt-dlp track object (the language is the map key); the selector
// fills them in.
type CaptionTrack struct {
	Ext  string `json:"ext"`
	Name string `json:"name"`
	URL  string `json:"url"`

	Language string `json:"-"`
	Auto     bool   `json:"-"`
}

// DurationSeconds returns the video duration in whole seconds.
func (v *VideoInfo) DurationSeconds() int {
	return int(v.Duration)
}

// BestThumbnailURL returns the thumbnail with the highest preference score,
// or "" when the video has no thumbnail candidates.
func (v *VideoInfo) BestThumbnailURL() string {
	if len(v.Thumbnails) == 0 {
		return ""
	}
	best := v.Thumbnails[0]
	for _, t := range v.Thumbnails[1:] {
		if t.Preference > best.Preference {
			best = t
		}
	}
	return best.URL
}

// ResolvedWebpageURL returns the webpage URL, falling back to the canonical
// watch URL constructed from the video ID.
func (v *VideoInfo) ResolvedWebpageURL() string {
	if v.WebpageURL != "" {
		return v.WebpageURL
	}
	return "https://www.youtube.com/watch?v=" + v.ID
}

// ResolvedAspectRatio returns the aspect ratio, defaulting to 16:9 when
// yt-dlp did not report one.
func (v *VideoInfo) ResolvedAspectRatio() float64 {
	if v.AspectRatio > 0 {
		return v.AspectRatio
	}
	return 1.78
}
