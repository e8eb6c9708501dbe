package analysis

import (
	"math"
	"sort"
	"strings"
	"time"
)

// CountTokens tallies occurrences per token.
func CountTokens(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts
}

// ToFrequencies converts a count table into a sorted frequency list.
// Entries below minCount are dropped, percentages are computed against
// totalWords and rounded to two decimals, and the result is ordered by count
// descending with ties broken alphabetically. A zero totalWords yields nil.
func ToFrequencies(counts map[string]int, totalWords, minCount int) []WordFrequency {
	if totalWords == 0 {
		return nil
	}
	freqs := make([]WordFrequency, 0, len(counts))
	for word, count := range counts {
		if count < minCount {
			continue
		}
		freqs = append(freqs, WordFrequency{
			Word:       word,
			Count:      count,
			Percentage: round2(float64(count) / float64(totalWords) * 100),
		})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Word < freqs[j].Word
	})
	return freqs
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// Analyze runs the full pipeline on one song's raw lyrics: strip headers,
// normalize, tokenize, lemmatize (western only), filter, count. A song whose
// tokens are all filtered away returns a valid zero-valued result; only
// blank input is an error.
func Analyze(text string, songID int, songTitle, artistName string, cfg Config) (*AnalysisResult, error) {
	tokens, err := preprocess(text, cfg)
	if err != nil {
		return nil, err
	}

	language := cfg.resolveLanguage(text)
	filtered := ApplyFilters(tokens, cfg, language)

	result := &AnalysisResult{
		SongID:     songID,
		SongTitle:  songTitle,
		ArtistName: artistName,
		AnalyzedAt: time.Now().UTC(),
	}
	if len(filtered) == 0 {
		return result, nil
	}

	counts := CountTokens(filtered)
	result.TotalWords = len(filtered)
	result.UniqueWords = len(counts)
	result.Frequencies = ToFrequencies(counts, result.TotalWords, 1)
	return result, nil
}

// preprocess covers every stage before filtering. Tokens come out lowercased
// regardless of branch: mixed-script lyrics can smuggle cased Latin tokens
// through the logographic normalizer.
func preprocess(text string, cfg Config) ([]string, error) {
	cleaned, err := StripHeaders(text)
	if err != nil {
		return nil, err
	}

	language := cfg.resolveLanguage(cleaned)
	normalized := Normalize(cleaned, language)

	tokens, err := tokenizeForLanguage(normalized, cfg, language)
	if err != nil {
		return nil, err
	}
	for i, tok := range tokens {
		tokens[i] = strings.ToLower(tok)
	}

	return Lemmatize(tokens, cfg, cleaned)
}

func tokenizeForLanguage(text string, cfg Config, language Language) ([]string, error) {
	tok := NewTokenizer(language, "")
	if language == LanguageLogographic && cfg.UsePOSFiltering {
		if morph, ok := tok.(*MorphTokenizer); ok {
			return morph.ContentWords(text)
		}
	}
	return tok.Tokenize(text)
}

// Aggregate combines per-song results into one corpus result. Each song's
// already-counted frequencies are summed per word (nothing is re-tokenized),
// then percentages and the minimum-count threshold are applied once over the
// combined totals. An empty input yields a zero-valued aggregate.
func Aggregate(results []*AnalysisResult, artistName string, cfg Config) *AggregateResult {
	agg := &AggregateResult{
		ArtistName: artistName,
		AnalyzedAt: time.Now().UTC(),
	}
	if len(results) == 0 {
		return agg
	}

	combined := make(map[string]int)
	for _, result := range results {
		for _, freq := range result.Frequencies {
			combined[freq.Word] += freq.Count
		}
		agg.SongResults = append(agg.SongResults, *result)
	}

	total := 0
	for _, count := range combined {
		total += count
	}

	agg.SongsAnalyzed = len(results)
	agg.TotalWords = total
	agg.UniqueWords = len(combined)
	agg.Frequencies = ToFrequencies(combined, total, cfg.MinCount)
	return agg
}

// PerSongCounts rebuilds each song's count table from its frequency list,
// in the same order as results. The TF-IDF scorer keys document frequency
// off these.
func PerSongCounts(results []*AnalysisResult) []map[string]int {
	perSong := make([]map[string]int, 0, len(results))
	for _, result := range results {
		counts := make(map[string]int, len(result.Frequencies))
		for _, freq := range result.Frequencies {
			counts[freq.Word] = freq.Count
		}
		perSong = append(perSong, counts)
	}
	return perSong
}
