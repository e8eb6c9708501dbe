package analysis

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// Section markers like [Verse 1], [Pre-Chorus], [Verse 1: Artist].
	headerRe = regexp.MustCompile(`\[[A-Za-z0-9\s\-:]+\]`)

	// Everything except letters, digits, underscore, whitespace, apostrophe.
	westernPunctRe = regexp.MustCompile(`[^\p{L}\p{N}_\s']`)

	// ASCII punctuation stripped on the logographic branch. Script-specific
	// punctuation is left for the morphological analyzer to handle.
	asciiPunctRe = regexp.MustCompile("[!\"#$%&'()*+,\\-./:;<=>?@\\[\\]^_`{|}~]")
)

// StripHeaders removes bracketed section markers and collapses whitespace.
// Returns ErrEmptyLyrics if the raw text is blank before stripping.
func StripHeaders(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyLyrics
	}
	cleaned := headerRe.ReplaceAllString(raw, "")
	return collapseWhitespace(cleaned), nil
}

// StripHeadersKeepLines removes section markers per line and drops lines that
// become empty, preserving line order for context extraction.
func StripHeadersKeepLines(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyLyrics
	}
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		cleaned := strings.TrimSpace(headerRe.ReplaceAllString(line, ""))
		if cleaned != "" {
			lines = append(lines, cleaned)
		}
	}
	return lines, nil
}

// Normalize prepares text for tokenization. The western branch lowercases
// and strips punctuation while keeping contraction apostrophes ("don't");
// the logographic branch applies NFKC compatibility normalization (full-width
// forms fold to half-width) and strips ASCII punctuation without case folding.
func Normalize(text string, language Language) string {
	if language == LanguageAuto {
		language = DetectLanguage(text)
	}

	if language == LanguageLogographic {
		text = norm.NFKC.String(text)
		text = asciiPunctRe.ReplaceAllString(text, " ")
		return collapseWhitespace(text)
	}

	text = strings.ToLower(text)
	text = westernPunctRe.ReplaceAllString(text, " ")
	text = stripStrayApostrophes(text)
	return collapseWhitespace(text)
}

// stripStrayApostrophes blanks apostrophes that are not surrounded by word
// characters on both sides, so leading, trailing, and standalone quotes go
// while "don't" keeps its apostrophe.
func stripStrayApostrophes(s string) string {
	if !strings.ContainsRune(s, '\'') {
		return s
	}
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		if r != '\'' {
			b.WriteRune(r)
			continue
		}
		interior := i > 0 && isWordRune(runes[i-1]) &&
			i < len(runes)-1 && isWordRune(runes[i+1])
		if interior {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
