package analysis

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Tokenizer splits text into tokens. BaseForms additionally canonicalizes
// each token to its dictionary form where the variant supports it; the
// western tokenizer defers lemmatization to a separate stage.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
	BaseForms(text string) ([]string, error)
}

// NewTokenizer resolves the tokenizer for a language, using sample text for
// script detection when the language is auto. With no sample the western
// tokenizer is the default.
func NewTokenizer(language Language, sample string) Tokenizer {
	if language == LanguageAuto {
		if sample == "" {
			return WordTokenizer{}
		}
		language = DetectLanguage(sample)
	}
	if language == LanguageLogographic {
		return &MorphTokenizer{}
	}
	return WordTokenizer{}
}

// WordTokenizer is the western branch: a rule-based word tokenizer that
// splits on whitespace and punctuation boundaries and peels contraction
// suffixes ("don't" -> "do", "n't").
type WordTokenizer struct{}

// Contraction endings split off as their own token, longest first.
var contractionSuffixes = []string{"n't", "'ll", "'re", "'ve", "'m", "'s", "'d"}

func (WordTokenizer) Tokenize(text string) ([]string, error) {
	var tokens []string
	for _, field := range strings.Fields(text) {
		for _, piece := range splitOnPunct(field) {
			tokens = append(tokens, splitContraction(piece)...)
		}
	}
	return tokens, nil
}

// BaseForms is identical to Tokenize; western lemmatization is a separate
// pipeline stage.
func (w WordTokenizer) BaseForms(text string) ([]string, error) {
	return w.Tokenize(text)
}

// splitOnPunct breaks a field on runs of characters that are neither word
// runes nor apostrophes.
func splitOnPunct(field string) []string {
	return strings.FieldsFunc(field, func(r rune) bool {
		return r != '\'' && !isWordRune(r)
	})
}

func splitContraction(piece string) []string {
	if !strings.ContainsRune(piece, '\'') {
		return []string{piece}
	}
	lower := strings.ToLower(piece)
	for _, suffix := range contractionSuffixes {
		if len(piece) > len(suffix) && strings.HasSuffix(lower, suffix) {
			cut := len(piece) - len(suffix)
			return []string{piece[:cut], piece[cut:]}
		}
	}
	return []string{piece}
}

// Shared morphological analyzer. Built once on first use; read-only after,
// so concurrent use is safe once initialized.
var (
	morphOnce sync.Once
	morphTok  *tokenizer.Tokenizer
	morphErr  error
)

func morphAnalyzer() (*tokenizer.Tokenizer, error) {
	morphOnce.Do(func() {
		morphTok, morphErr = tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	})
	if morphErr != nil {
		return nil, fmt.Errorf("%w: morphological analyzer: %v", ErrResourceUnavailable, morphErr)
	}
	return morphTok, nil
}

// MorphTokenizer is the logographic branch, backed by a morphological
// analyzer. Tokens are morpheme base forms so inflections of the same verb
// count as one word; the surface form is kept when the dictionary has no
// base form for a morpheme.
type MorphTokenizer struct{}

// Primary grammatical categories kept by the content-word filter:
// noun, verb, adjective, adverb, interjection.
var meaningfulPOS = map[string]struct{}{
	"名詞": {}, "動詞": {}, "形容詞": {}, "副詞": {}, "感動詞": {},
}

// Secondary categories dropped by the content-word filter: non-independent
// continuations (progressive markers and the like) and nominal suffixes
// (honorifics).
var excludedPOS2 = map[string]struct{}{
	"非自立": {}, "接尾": {},
}

func (t *MorphTokenizer) Tokenize(text string) ([]string, error) {
	return t.BaseForms(text)
}

func (t *MorphTokenizer) BaseForms(text string) ([]string, error) {
	analyzer, err := morphAnalyzer()
	if err != nil {
		return nil, err
	}
	var tokens []string
	for _, tok := range analyzer.Tokenize(text) {
		tokens = append(tokens, baseOrSurface(tok))
	}
	return tokens, nil
}

// ContentWords tokenizes and keeps only morphemes whose primary category is
// meaningful and whose secondary category is not excluded, returning base
// forms of the survivors.
func (t *MorphTokenizer) ContentWords(text string) ([]string, error) {
	analyzer, err := morphAnalyzer()
	if err != nil {
		return nil, err
	}
	var tokens []string
	for _, tok := range analyzer.Tokenize(text) {
		pos := tok.POS()
		if len(pos) == 0 {
			continue
		}
		if _, ok := meaningfulPOS[pos[0]]; !ok {
			continue
		}
		if len(pos) > 1 {
			if _, excluded := excludedPOS2[pos[1]]; excluded {
				continue
			}
		}
		tokens = append(tokens, baseOrSurface(tok))
	}
	return tokens, nil
}

func baseOrSurface(tok tokenizer.Token) string {
	if base, ok := tok.BaseForm(); ok && base != "" && base != "*" {
		return base
	}
	return tok.Surface
}
