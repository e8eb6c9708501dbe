package analysis

import "time"

// WordFrequency is a single word with its occurrence count and share of the
// total word count.
type WordFrequency struct {
	Word       string  `json:"word"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// AnalysisResult is the outcome of analyzing one song. Frequencies are
// sorted by count descending, ties broken alphabetically.
type AnalysisResult struct {
	SongID      int             `json:"song_id"`
	SongTitle   string          `json:"song_title"`
	ArtistName  string          `json:"artist_name"`
	TotalWords  int             `json:"total_words"`
	UniqueWords int             `json:"unique_words"`
	Frequencies []WordFrequency `json:"frequencies"`
	AnalyzedAt  time.Time       `json:"analyzed_at"`
}

// TopWords returns the n most frequent words.
func (r *AnalysisResult) TopWords(n int) []WordFrequency {
	if n > len(r.Frequencies) {
		n = len(r.Frequencies)
	}
	return r.Frequencies[:n]
}

// AggregateResult combines per-song results across an artist's catalogue.
// Counts are summed per word before percentages and the minimum-count
// threshold are applied.
type AggregateResult struct {
	ArtistName    string           `json:"artist_name"`
	SongsAnalyzed int              `json:"songs_analyzed"`
	TotalWords    int              `json:"total_words"`
	UniqueWords   int              `json:"unique_words"`
	Frequencies   []WordFrequency  `json:"frequencies"`
	SongResults   []AnalysisResult `json:"song_results"`
	AnalyzedAt    time.Time        `json:"analyzed_at"`
}

// TopWords returns the n most frequent words across the corpus.
func (r *AggregateResult) TopWords(n int) []WordFrequency {
	if n > len(r.Frequencies) {
		n = len(r.Frequencies)
	}
	return r.Frequencies[:n]
}

// TokenWithPosition is a token annotated with where it occurred. Produced
// only by the context pipeline; OriginalLine keeps the unnormalized text so
// snippets read like the actual lyric.
type TokenWithPosition struct {
	Token        string
	LineIndex    int
	WordIndex    int
	OriginalLine string
	SongID       int
	SongTitle    string
}

// WordContext is one example usage of a word, with track metadata. Album and
// year are pass-through fields filled in by callers that have them.
type WordContext struct {
	Line  string `json:"line"`
	Track string `json:"track"`
	Album string `json:"album,omitempty"`
	Year  int    `json:"year,omitempty"`
}
