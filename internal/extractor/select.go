package extractor

import (
	"sort"
	"strings"
)

// formatPriority orders caption formats within one language. json3 keeps the
// most structure, srv1 is a simple XML, vtt needs the heaviest cleanup.
var formatPriority = []string{"json3", "srv1", "vtt"}

// SelectTrack applies the fixed caption priority policy:
//
//  1. manually authored track in each preferred language, in order
//  2. auto-generated track in each preferred language, in order
//  3. any manually authored English track
//  4. any auto-generated English track
//  5. remaining manual tracks, then auto tracks, by language code
//
// Language keys are always scanned in sorted order, so the same input track
// set yields the same track regardless of map iteration order. Returns false
// only when the video has no caption tracks at all.
func (e *implExtractor) SelectTrack(info *VideoInfo) (*CaptionTrack, bool) {
	manual := indexTracks(info.Subtitles, false)
	auto := indexTracks(info.AutomaticCaptions, true)

	for _, lang := range e.cfg.Video.Languages {
		if t, ok := manual[lang]; ok {
			return t, true
		}
	}
	for _, lang := range e.cfg.Video.Languages {
		if t, ok := auto[lang]; ok {
			return t, true
		}
	}

	for _, pick := range []map[string]*CaptionTrack{manual, auto} {
		for _, lang := range sortedKeys(pick) {
			if strings.HasPrefix(lang, "en") {
				return pick[lang], true
			}
		}
	}
	for _, pick := range []map[string]*CaptionTrack{manual, auto} {
		if langs := sortedKeys(pick); len(langs) > 0 {
			return pick[langs[0]], true
		}
	}

	return nil, false
}

// indexTracks reduces each language's track list to its best-format track and
// annotates language and origin.
func indexTracks(tracks map[string][]CaptionTrack, auto bool) map[string]*CaptionTrack {
	out := make(map[string]*CaptionTrack, len(tracks))
	for lang, list := range tracks {
		if len(list) == 0 {
			continue
		}
		best := pickFormat(list)
		best.Language = lang
		best.Auto = auto
		if best.Name == "" {
			best.Name = lang
		}
		out[lang] = &best
	}
	return out
}

func pickFormat(list []CaptionTrack) CaptionTrack {
	for _, ext := range formatPriority {
		for _, t := range list {
			if strings.EqualFold(t.Ext, ext) {
				return t
			}
		}
	}
	return list[0]
}

func sortedKeys(m map[string]*CaptionTrack) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
