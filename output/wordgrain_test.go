package output

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lyriclens/analysis"
)

func sampleAggregate() *analysis.AggregateResult {
	return &analysis.AggregateResult{
		ArtistName:    "Test Artist",
		SongsAnalyzed: 2,
		TotalWords:    100,
		UniqueWords:   3,
		Frequencies: []analysis.WordFrequency{
			{Word: "gonna", Count: 60, Percentage: 60},
			{Word: "night", Count: 30, Percentage: 30},
			{Word: "rain", Count: 10, Percentage: 10},
		},
		SongResults: []analysis.AnalysisResult{
			{SongID: 1, TotalWords: 50, Frequencies: []analysis.WordFrequency{
				{Word: "gonna", Count: 40}, {Word: "night", Count: 10},
			}},
			{SongID: 2, TotalWords: 50, Frequencies: []analysis.WordFrequency{
				{Word: "gonna", Count: 20}, {Word: "night", Count: 20}, {Word: "rain", Count: 10},
			}},
		},
		AnalyzedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument(sampleAggregate(), "en")

	assert.Equal(t, SchemaURL, doc.Schema)
	assert.Equal(t, "genius", doc.Meta.Source)
	assert.Equal(t, "Test Artist", doc.Meta.Artist)
	assert.Equal(t, 2, doc.Meta.CorpusSize)
	assert.Equal(t, 100, doc.Meta.TotalWords)
	assert.Equal(t, "en", doc.Meta.Language)
	assert.Equal(t, generator, doc.Meta.Generator)

	// The full vocabulary is exported, never a top-N slice.
	require.Len(t, doc.Grains, 3)
	assert.Equal(t, "gonna", doc.Grains[0].Word)
	assert.Equal(t, 60, doc.Grains[0].Frequency)
	// 60 of 100 words is 6000 per 10k.
	assert.Equal(t, 6000.0, doc.Grains[0].FrequencyNormalized)
	assert.Equal(t, "rain", doc.Grains[2].Word)
	assert.Nil(t, doc.Grains[0].TFIDF)
	assert.Nil(t, doc.Grains[0].IsSlang)
}

func TestNewDocumentJSONShape(t *testing.T) {
	doc := NewDocument(sampleAggregate(), "en")

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, SchemaURL, decoded["$schema"])

	// Meta carries the schema's field names.
	meta := decoded["meta"].(map[string]any)
	assert.Equal(t, "genius", meta["source"])
	assert.Equal(t, 2.0, meta["corpus_size"])
	assert.Equal(t, "en", meta["language"])
	assert.Contains(t, meta, "generated_at")

	grains := decoded["grains"].([]any)
	grain := grains[0].(map[string]any)
	assert.Equal(t, 60.0, grain["frequency"])
	assert.Contains(t, grain, "frequency_normalized")
	// Enrichment fields are omitted from plain documents.
	assert.NotContains(t, grain, "tfidf")
	assert.NotContains(t, grain, "is_slang")
	assert.NotContains(t, grain, "contexts")
}

func TestNewEnhancedDocument(t *testing.T) {
	cfg := analysis.DefaultConfig()
	cfg.ComputeTFIDF = true
	cfg.DetectSlang = true

	doc, err := NewEnhancedDocument(sampleAggregate(), nil, cfg, "en")
	require.NoError(t, err)
	require.Len(t, doc.Grains, 3)

	for _, g := range doc.Grains {
		require.NotNil(t, g.TFIDF, g.Word)
		require.NotNil(t, g.IsSlang, g.Word)
	}

	byWord := map[string]Grain{}
	for _, g := range doc.Grains {
		byWord[g.Word] = g
	}

	assert.True(t, *byWord["gonna"].IsSlang)
	assert.False(t, *byWord["night"].IsSlang)
	// gonna and night appear in both songs, so their idf is 0; rain is the
	// only single-document word and normalizes to 1.0.
	assert.Equal(t, 0.0, *byWord["gonna"].TFIDF)
	assert.Equal(t, 1.0, *byWord["rain"].TFIDF)
}

func TestNewEnhancedDocumentSentiment(t *testing.T) {
	cfg := analysis.DefaultConfig()
	cfg.ComputeSentiment = true

	agg := sampleAggregate()
	agg.Frequencies = []analysis.WordFrequency{{Word: "love", Count: 10, Percentage: 100}}

	doc, err := NewEnhancedDocument(agg, nil, cfg, "en")
	require.NoError(t, err)
	require.Len(t, doc.Grains, 1)

	assert.Equal(t, "positive", doc.Grains[0].Sentiment)
	require.NotNil(t, doc.Grains[0].SentimentScore)
	assert.Greater(t, *doc.Grains[0].SentimentScore, 0.0)
}

func TestNewEnhancedDocumentContexts(t *testing.T) {
	cfg := analysis.DefaultConfig()
	cfg.ContextsMode = analysis.ContextsShort

	positioned := []analysis.TokenWithPosition{
		{Token: "rain", LineIndex: 0, WordIndex: 2,
			OriginalLine: "heavy cold rain falls on the town tonight",
			SongID:       1, SongTitle: "One"},
	}

	doc, err := NewEnhancedDocument(sampleAggregate(), positioned, cfg, "en")
	require.NoError(t, err)

	var rain *Grain
	for i := range doc.Grains {
		if doc.Grains[i].Word == "rain" {
			rain = &doc.Grains[i]
		}
	}
	require.NotNil(t, rain)
	contexts, ok := rain.Contexts.([]string)
	require.True(t, ok)
	// Snippets keep two words either side of the target.
	assert.Equal(t, []string{"heavy cold rain falls on..."}, contexts)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Björk", "bjork"},
		{"Tyler, The Creator", "tyler-the-creator"},
		{"AC/DC", "ac-dc"},
		{"  spaced  out  ", "spaced-out"},
		{"MF DOOM", "mf-doom"},
		{"漢字だけ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "bjork.wg.json", Filename("Björk"))
	assert.Equal(t, "artist.wg.json", Filename("!!!???"))
}
