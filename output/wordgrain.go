// Package output renders analysis results as WordGrain documents, plain
// JSON, CSV, or aligned text tables.
package output

import (
	"math"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"lyriclens/analysis"
)

// SchemaURL identifies the WordGrain document version.
const SchemaURL = "https://mumbl.dev/schemas/wordgrain/v0.1.0"

const generator = "lyriclens/0.1.0"

// Grain is one vocabulary entry. The enrichment fields are pointers so that
// a plain document omits them entirely instead of emitting zero values.
type Grain struct {
	Word                string  `json:"word"`
	Frequency           int     `json:"frequency"`
	FrequencyNormalized float64 `json:"frequency_normalized"`

	TFIDF          *float64 `json:"tfidf,omitempty"`
	POS            string   `json:"pos,omitempty"`
	Sentiment      string   `json:"sentiment,omitempty"`
	SentimentScore *float64 `json:"sentiment_score,omitempty"`
	IsSlang        *bool    `json:"is_slang,omitempty"`
	Contexts       any      `json:"contexts,omitempty"`
}

// Meta describes the corpus the grains were drawn from. CorpusSize is the
// number of tracks analyzed; Language is an ISO 639-1 code.
type Meta struct {
	Source      string    `json:"source"`
	Artist      string    `json:"artist"`
	GeneratedAt time.Time `json:"generated_at"`
	CorpusSize  int       `json:"corpus_size"`
	TotalWords  int       `json:"total_words"`
	Generator   string    `json:"generator"`
	Language    string    `json:"language"`
}

// Document is a complete WordGrain file.
type Document struct {
	Schema string  `json:"$schema"`
	Meta   Meta    `json:"meta"`
	Grains []Grain `json:"grains"`
}

// NewDocument builds a plain WordGrain document carrying the full aggregate
// vocabulary; top-N truncation belongs to the display formats, not this
// export. Frequency is normalized to occurrences per 10,000 corpus words.
func NewDocument(agg *analysis.AggregateResult, language string) *Document {
	grains := make([]Grain, 0, len(agg.Frequencies))
	for _, freq := range agg.Frequencies {
		grains = append(grains, Grain{
			Word:                freq.Word,
			Frequency:           freq.Count,
			FrequencyNormalized: perTenThousand(freq.Count, agg.TotalWords),
		})
	}
	return &Document{
		Schema: SchemaURL,
		Meta: Meta{
			Source:      "genius",
			Artist:      agg.ArtistName,
			GeneratedAt: agg.AnalyzedAt,
			CorpusSize:  agg.SongsAnalyzed,
			TotalWords:  agg.TotalWords,
			Generator:   generator,
			Language:    language,
		},
		Grains: grains,
	}
}

// NewEnhancedDocument builds a WordGrain document with whichever enrichment
// passes the config enables: TF-IDF, part of speech, sentiment, slang flags,
// and example contexts. positioned carries the corpus tokens with line
// positions and is only consulted when a contexts mode is set.
func NewEnhancedDocument(agg *analysis.AggregateResult, positioned []analysis.TokenWithPosition, cfg analysis.Config, language string) (*Document, error) {
	doc := NewDocument(agg, language)

	words := make([]string, 0, len(doc.Grains))
	for _, g := range doc.Grains {
		words = append(words, g.Word)
	}

	var tfidf map[string]float64
	if cfg.ComputeTFIDF {
		perSong := analysis.PerSongCounts(resultPtrs(agg.SongResults))
		combined := make(map[string]int, len(agg.Frequencies))
		for _, freq := range agg.Frequencies {
			combined[freq.Word] = freq.Count
		}
		tfidf = analysis.CorpusTFIDF(perSong, combined, agg.TotalWords, true)
	}

	var posTags map[string]string
	if cfg.ComputePOS && len(words) > 0 {
		var err error
		posTags, err = analysis.POSTags(words)
		if err != nil {
			return nil, err
		}
	}

	var sentiments map[string]analysis.WordSentiment
	if cfg.ComputeSentiment {
		sentiments = analysis.SentimentScores(words)
	}

	var slang map[string]bool
	if cfg.DetectSlang {
		slang = analysis.SlangFlags(words, nil)
	}

	for i := range doc.Grains {
		g := &doc.Grains[i]
		word := g.Word

		if tfidf != nil {
			score := tfidf[word]
			g.TFIDF = &score
		}
		if posTags != nil {
			g.POS = posTags[word]
		}
		if sentiments != nil {
			s := sentiments[word]
			g.Sentiment = s.Category
			score := s.Score
			g.SentimentScore = &score
		}
		if slang != nil {
			isSlang := slang[word]
			g.IsSlang = &isSlang
		}

		switch cfg.ContextsMode {
		case analysis.ContextsShort:
			if ctxs := analysis.ShortContexts(positioned, word, cfg.MaxContextsPerWord, 2); ctxs != nil {
				g.Contexts = ctxs
			}
		case analysis.ContextsFull:
			if ctxs := analysis.FullContexts(positioned, word, cfg.MaxContextsPerWord); ctxs != nil {
				g.Contexts = ctxs
			}
		}
	}
	return doc, nil
}

func resultPtrs(results []analysis.AnalysisResult) []*analysis.AnalysisResult {
	ptrs := make([]*analysis.AnalysisResult, len(results))
	for i := range results {
		ptrs[i] = &results[i]
	}
	return ptrs
}

func perTenThousand(count, total int) float64 {
	if total == 0 {
		return 0
	}
	v := float64(count) / float64(total) * 10000
	return math.Round(v*100) / 100
}

// Slugify lowercases an artist name, strips diacritics, and joins the
// alphanumeric runs with hyphens. "Björk" becomes "bjork".
func Slugify(name string) string {
	decomposed := norm.NFKD.String(strings.ToLower(name))

	var b strings.Builder
	lastHyphen := true
	for _, r := range decomposed {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case unicode.Is(unicode.Mn, r):
			// combining mark left over from decomposition, drop it
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Filename is the conventional WordGrain output name for an artist.
func Filename(artist string) string {
	slug := Slugify(artist)
	if slug == "" {
		slug = "artist"
	}
	return slug + ".wg.json"
}
