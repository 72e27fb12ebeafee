package captions

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
)

var (
	// ErrUnsupportedFormat marks a caption format with no registered decoder.
	ErrUnsupportedFormat = errors.New("unsupported caption format")
	// ErrMalformed marks a payload that does not decode as its claimed format.
	ErrMalformed = errors.New("malformed caption data")
)

// decodeFunc turns one caption format's raw payload into plain text lines in
// chronological order.
type decodeFunc func(data []byte) ([]string, error)

// decoders dispatches parsing by format extension. Adding a format means
// adding an entry here; callers never change.
var decoders = map[string]decodeFunc{
	"json3": decodeJSON3,
	"srv1":  decodeSRV1,
	"vtt":   decodeVTT,
}

// Parse normalizes a raw caption payload to plain transcript text. Unknown
// formats fail instead of leaking raw markup to the summarizer.
func (f *implFetcher) Parse(ext string, data []byte) (string, error) {
	dec, ok := decoders[strings.ToLower(ext)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	lines, err := dec(data)
	if err != nil {
		return "", err
	}

	return strings.Join(collapseRepeats(lines), " "), nil
}

// collapseRepeats drops consecutive duplicate lines. Auto-generated captions
// repeat partial text across overlapping cue segments.
func collapseRepeats(lines []string) []string {
	out := make([]string, 0, len(lines))
	prev := ""
	for _, line := range lines {
		line = squashSpaces(line)
		if line == "" || line == prev {
			continue
		}
		out = append(out, line)
		prev = line
	}
	return out
}

var spaceRe = regexp.MustCompile(`\s+`)

func squashSpaces(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// json3 is YouTube's JSON caption format: a list of events, each with text
// segments.
type json3Doc struct {
	Events []struct {
		Segs []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

func decodeJSON3(data []byte) ([]string, error) {
	var doc json3Doc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.Events == nil {
		return nil, fmt.Errorf("%w: no events", ErrMalformed)
	}

	var lines []string
	for _, ev := range doc.Events {
		var sb strings.Builder
		for _, seg := range ev.Segs {
			sb.WriteString(seg.UTF8)
		}
		lines = append(lines, strings.ReplaceAll(sb.String(), "\n", " "))
	}
	return lines, nil
}

// srv1 is YouTube's legacy timedtext XML: <transcript><text start dur>…</text>.
type srv1Doc struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Value string `xml:",chardata"`
	} `xml:"text"`
}

var tagRe = regexp.MustCompile(`<[^>]+>`)

func decodeSRV1(data []byte) ([]string, error) {
	var doc srv1Doc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	lines := make([]string, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		text := html.UnescapeString(t.Value)
		text = tagRe.ReplaceAllString(text, "")
		lines = append(lines, text)
	}
	return lines, nil
}

var (
	vttTimingRe   = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{3}\s*-->\s*\d{2}:\d{2}:\d{2}\.\d{3}`)
	vttCueIDRe    = regexp.MustCompile(`^\d+$`)
	vttMetadataRe = regexp.MustCompile(`^(WEBVTT|Kind|Language|NOTE|STYLE|REGION)\b`)
)

// decodeVTT strips WebVTT structure: header and metadata lines, timing cues,
// standalone cue identifiers and inline tags.
func decodeVTT(data []byte) ([]string, error) {
	content := string(data)
	if !strings.Contains(content, "WEBVTT") {
		return nil, fmt.Errorf("%w: missing WEBVTT header", ErrMalformed)
	}

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if vttMetadataRe.MatchString(line) || vttTimingRe.MatchString(line) {
			continue
		}
		if vttCueIDRe.MatchString(strings.TrimSpace(line)) {
			continue
		}
		line = tagRe.ReplaceAllString(line, "")
		lines = append(lines, html.UnescapeString(line))
	}
	return lines, nil
}
