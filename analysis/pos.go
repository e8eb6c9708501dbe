package analysis

import (
	"fmt"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// posTagMap translates Penn Treebank tags into coarse categories. Unmapped
// tags fall back to their lowercase form.
var posTagMap = map[string]string{
	"NN": "noun", "NNS": "noun", "NNP": "noun", "NNPS": "noun",
	"VB": "verb", "VBD": "verb", "VBG": "verb", "VBN": "verb", "VBP": "verb", "VBZ": "verb",
	"JJ": "adjective", "JJR": "adjective", "JJS": "adjective",
	"RB": "adverb", "RBR": "adverb", "RBS": "adverb",
	"PRP": "pronoun", "PRP$": "pronoun", "WP": "pronoun", "WP$": "pronoun",
	"IN": "preposition", "TO": "preposition",
	"CC": "conjunction",
	"DT": "determiner", "PDT": "determiner", "WDT": "determiner",
	"UH": "interjection",
	"MD": "modal",
	"CD": "number",
	"EX": "existential",
	"FW": "foreign",
	"LS": "list",
	"POS": "possessive",
	"RP": "particle",
	"SYM": "symbol",
	"WRB": "wh-adverb",
}

type taggedWord struct {
	text string
	tag  string
}

// posTagger lets tests swap out the model-backed tagger.
type posTagger interface {
	tag(words []string) ([]taggedWord, error)
}

type proseTagger struct{}

// tag tags each word as given, one document per word, so entries the model's
// tokenizer would split (contractions, hyphenations) still map back to their
// vocabulary key. When a word does split, the first piece's tag stands for
// the whole word.
func (proseTagger) tag(words []string) ([]taggedWord, error) {
	tagged := make([]taggedWord, 0, len(words))
	for _, word := range words {
		doc, err := prose.NewDocument(
			word,
			prose.WithSegmentation(false),
			prose.WithExtraction(false),
		)
		if err != nil {
			return nil, fmt.Errorf("%w: pos tagger: %v", ErrResourceUnavailable, err)
		}
		tokens := doc.Tokens()
		if len(tokens) == 0 {
			continue
		}
		tagged = append(tagged, taggedWord{text: word, tag: tokens[0].Tag})
	}
	return tagged, nil
}

var defaultTagger posTagger = proseTagger{}

// POSTags tags a deduplicated vocabulary and returns one coarse category per
// lowercased word. When the tagger emits different tags for repeated
// occurrences, the most frequent tag wins. Empty input yields an empty map.
func POSTags(words []string) (map[string]string, error) {
	return posTagsWith(defaultTagger, words)
}

func posTagsWith(tagger posTagger, words []string) (map[string]string, error) {
	if len(words) == 0 {
		return map[string]string{}, nil
	}

	tagged, err := tagger.tag(words)
	if err != nil {
		return nil, err
	}

	// Bucket every observed tag per word, then majority-vote.
	tagCounts := make(map[string]map[string]int)
	for _, tw := range tagged {
		word := strings.ToLower(tw.text)
		if tagCounts[word] == nil {
			tagCounts[word] = make(map[string]int)
		}
		tagCounts[word][tw.tag]++
	}

	result := make(map[string]string, len(tagCounts))
	for word, counts := range tagCounts {
		best, bestCount := "", -1
		for tag, count := range counts {
			if count > bestCount || (count == bestCount && tag < best) {
				best, bestCount = tag, count
			}
		}
		if label, ok := posTagMap[best]; ok {
			result[word] = label
		} else {
			result[word] = strings.ToLower(best)
		}
	}
	return result, nil
}

// POSTag tags a single word.
func POSTag(word string) (string, error) {
	tags, err := POSTags([]string{word})
	if err != nil {
		return "", err
	}
	if tag, ok := tags[strings.ToLower(word)]; ok {
		return tag, nil
	}
	return "unknown", nil
}
