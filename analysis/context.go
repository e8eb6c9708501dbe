package analysis

import (
	"strings"
)

// TokenizeWithPositions walks header-stripped, line-preserved lyrics and
// emits each surviving token with its line index, in-line word index, and
// the original unnormalized line text. This feeds context extraction, which
// needs to point back into the real lyric.
func TokenizeWithPositions(text string, songID int, songTitle string, cfg Config) ([]TokenWithPosition, error) {
	language := cfg.resolveLanguage(text)

	lines, err := StripHeadersKeepLines(text)
	if err != nil {
		return nil, err
	}

	var positioned []TokenWithPosition

	for lineIndex, line := range lines {
		normalized := Normalize(line, language)

		lineTokens, err := tokenizeForLanguage(normalized, cfg, language)
		if err != nil {
			return nil, err
		}

		for i, t := range lineTokens {
			lineTokens[i] = strings.ToLower(t)
		}
		if cfg.UseLemmatization && language == LanguageWestern {
			lineTokens, err = Lemmatize(lineTokens, cfg, line)
			if err != nil {
				return nil, err
			}
		}

		for wordIndex, token := range lineTokens {
			positioned = append(positioned, TokenWithPosition{
				Token:        token,
				LineIndex:    lineIndex,
				WordIndex:    wordIndex,
				OriginalLine: line,
				SongID:       songID,
				SongTitle:    songTitle,
			})
		}
	}
	return positioned, nil
}

// selectOccurrences finds every position whose token matches word
// case-insensitively, keeps at most one per (song, line) so repeated words
// in a line do not yield duplicate snippets, and truncates to maxContexts.
func selectOccurrences(tokens []TokenWithPosition, word string, maxContexts int) []TokenWithPosition {
	lower := strings.ToLower(word)

	type lineKey struct {
		songID    int
		lineIndex int
	}
	seen := make(map[lineKey]struct{})

	var selected []TokenWithPosition
	for _, tok := range tokens {
		if strings.ToLower(tok.Token) != lower {
			continue
		}
		key := lineKey{tok.SongID, tok.LineIndex}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		selected = append(selected, tok)
		if len(selected) == maxContexts {
			break
		}
	}
	return selected
}

// ShortContexts returns windowed snippets for a word, one per selected
// occurrence. Each snippet shows up to windowSize words either side of the
// target with "..." marking edges where the line was actually truncated.
func ShortContexts(tokens []TokenWithPosition, word string, maxContexts, windowSize int) []string {
	selected := selectOccurrences(tokens, word, maxContexts)
	if len(selected) == 0 {
		return nil
	}
	contexts := make([]string, 0, len(selected))
	for _, occ := range selected {
		contexts = append(contexts, shortContext(occ.OriginalLine, word, windowSize))
	}
	return contexts
}

// FullContexts returns whole-line records with track metadata for a word.
// Album and year stay empty here; callers with release metadata fill them.
func FullContexts(tokens []TokenWithPosition, word string, maxContexts int) []WordContext {
	selected := selectOccurrences(tokens, word, maxContexts)
	if len(selected) == 0 {
		return nil
	}
	contexts := make([]WordContext, 0, len(selected))
	for _, occ := range selected {
		contexts = append(contexts, WordContext{
			Line:  strings.TrimSpace(occ.OriginalLine),
			Track: occ.SongTitle,
		})
	}
	return contexts
}

// shortContext windows the original line around the target word. The target
// is located by case-insensitive comparison with punctuation stripped from
// each piece, since the line is unnormalized. If the word cannot be
// relocated (lemmatization may have changed it), a truncated or whole-line
// snippet is returned instead.
func shortContext(line, word string, windowSize int) string {
	words := strings.Fields(line)
	lower := strings.ToLower(word)

	wordIndex := -1
	for i, w := range words {
		if stripPunct(strings.ToLower(w)) == lower {
			wordIndex = i
			break
		}
	}

	if wordIndex == -1 {
		if len(words) <= windowSize*2+1 {
			return strings.TrimSpace(line)
		}
		return "..." + strings.Join(words[:windowSize*2+1], " ") + "..."
	}

	start := wordIndex - windowSize
	if start < 0 {
		start = 0
	}
	end := wordIndex + windowSize + 1
	if end > len(words) {
		end = len(words)
	}

	prefix, suffix := "", ""
	if start > 0 {
		prefix = "..."
	}
	if end < len(words) {
		suffix = "..."
	}
	return prefix + strings.Join(words[start:end], " ") + suffix
}

// stripPunct removes everything except word runes and apostrophes.
func stripPunct(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\'' || isWordRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
