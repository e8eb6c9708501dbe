package analysis

import (
	"strings"
	"unicode"
	"unicode/utf8"

	snowballeng "github.com/kljensen/snowball/english"
)

// TokenFilter is a pure tokens-in, tokens-out transform. Caller-supplied
// filters run after the built-in chain.
type TokenFilter func(tokens []string) []string

// ApplyFilters runs the default filter chain in its fixed order, then any
// extra filters. Later stages assume earlier ones already ran: the length
// filter never sees punctuation tokens, the stopword filter never sees
// too-short tokens.
func ApplyFilters(tokens []string, cfg Config, language Language, extra ...TokenFilter) []string {
	filtered := FilterInvalid(tokens, language)
	filtered = FilterByLength(filtered, cfg.MinWordLength)
	if cfg.RemoveStopWords {
		filtered = FilterStopWords(filtered, cfg, language)
	}
	for _, f := range extra {
		filtered = f(filtered)
	}
	return filtered
}

// FilterInvalid drops tokens that are not words. On the western branch a
// token must be purely alphabetic. On the logographic branch a token is kept
// if it contains at least one logographic character or is purely alphabetic,
// so mixed-script survivors stay in.
func FilterInvalid(tokens []string, language Language) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if language == LanguageLogographic {
			if ContainsLogographic(tok) || isAlphabetic(tok) {
				out = append(out, tok)
			}
			continue
		}
		if isAlphabetic(tok) {
			out = append(out, tok)
		}
	}
	return out
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// FilterByLength drops tokens shorter than minLength runes.
func FilterByLength(tokens []string, minLength int) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) >= minLength {
			out = append(out, tok)
		}
	}
	return out
}

// FilterStopWords removes stopwords case-insensitively. Membership is tested
// against both the original and lowercased token so logographic tokens,
// which have no case folding, still match.
func FilterStopWords(tokens []string, cfg Config, language Language) []string {
	stop := StopWords(cfg, language)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := stop[tok]; ok {
			continue
		}
		if _, ok := stop[strings.ToLower(tok)]; ok {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// StemFilter returns an extra filter that reduces each token to its English
// stem. Useful when callers want "running" and "runs" counted together
// without full lemmatization.
func StemFilter() TokenFilter {
	return func(tokens []string) []string {
		out := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			out = append(out, snowballeng.Stem(tok, false))
		}
		return out
	}
}
