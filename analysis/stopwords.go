package analysis

import (
	"strings"

	"lyriclens/analysis/data"
)

// Embedded stopword sets, parsed once at startup.
var (
	stopwordsWestern     map[string]struct{}
	stopwordsLogographic map[string]struct{}
)

func init() {
	stopwordsWestern = parseStopwords(data.StopwordsEN)
	stopwordsLogographic = parseStopwords(data.StopwordsJA)
}

func parseStopwords(raw string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, line := range strings.Split(raw, "\n") {
		word := strings.ToLower(strings.TrimSpace(line))
		if word != "" {
			set[word] = struct{}{}
		}
	}
	return set
}

// StopWords returns the stopword set for a language branch, merged with any
// custom words from the config. The logographic set unions in the western
// set as well: mixed-script lyrics routinely carry English ad-libs and
// loanwords that would otherwise slip through.
func StopWords(cfg Config, language Language) map[string]struct{} {
	set := make(map[string]struct{}, len(stopwordsWestern)+len(cfg.CustomStopWords))
	for w := range stopwordsWestern {
		set[w] = struct{}{}
	}
	if language == LanguageLogographic {
		for w := range stopwordsLogographic {
			set[w] = struct{}{}
		}
	}
	for _, w := range cfg.CustomStopWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}
