package analysis

import (
	"strings"
	"sync"

	"github.com/jonreiter/govader"
)

// Sentiment categories. The deadband around zero is fixed: weakly scored
// spans are neutral.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"

	sentimentThreshold = 0.05
)

// WordSentiment is a classified span with its compound polarity score.
type WordSentiment struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// Shared lexicon-based analyzer, built once on first use.
var (
	vaderOnce sync.Once
	vader     *govader.SentimentIntensityAnalyzer
)

func sentimentAnalyzer() *govader.SentimentIntensityAnalyzer {
	vaderOnce.Do(func() {
		vader = govader.NewSentimentIntensityAnalyzer()
	})
	return vader
}

// ScoreSentiment classifies a word or phrase. The compound score is in
// [-1, 1], rounded to four decimals; single words often land in the neutral
// band since the lexicon is tuned for sentences.
func ScoreSentiment(text string) WordSentiment {
	compound := sentimentAnalyzer().PolarityScores(text).Compound

	category := SentimentNeutral
	switch {
	case compound >= sentimentThreshold:
		category = SentimentPositive
	case compound <= -sentimentThreshold:
		category = SentimentNegative
	}
	return WordSentiment{Category: category, Score: round4(compound)}
}

// SentimentScores classifies a batch of words, deduplicated
// case-insensitively. Keys are lowercased. Empty input yields an empty map.
func SentimentScores(words []string) map[string]WordSentiment {
	result := make(map[string]WordSentiment, len(words))
	for _, word := range words {
		lower := strings.ToLower(word)
		if _, done := result[lower]; done {
			continue
		}
		result[lower] = ScoreSentiment(lower)
	}
	return result
}
