package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordTokenizer(t *testing.T) {
	tok := WordTokenizer{}

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"whitespace split", "hello world", []string{"hello", "world"}},
		{"negation contraction", "don't stop", []string{"do", "n't", "stop"}},
		{"will contraction", "i'll go", []string{"i", "'ll", "go"}},
		{"are contraction", "we're here", []string{"we", "'re", "here"}},
		{"possessive", "night's end", []string{"night", "'s", "end"}},
		{"no contraction match", "rock'roll", []string{"rock'roll"}},
		{"punctuation boundary", "end.start", []string{"end", "start"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tok.Tokenize(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWordTokenizerBaseForms(t *testing.T) {
	tok := WordTokenizer{}
	got, err := tok.BaseForms("don't stop")
	require.NoError(t, err)
	assert.Equal(t, []string{"do", "n't", "stop"}, got)
}

func TestNewTokenizer(t *testing.T) {
	assert.IsType(t, WordTokenizer{}, NewTokenizer(LanguageWestern, ""))
	assert.IsType(t, &MorphTokenizer{}, NewTokenizer(LanguageLogographic, ""))
	assert.IsType(t, WordTokenizer{}, NewTokenizer(LanguageAuto, ""))
	assert.IsType(t, WordTokenizer{}, NewTokenizer(LanguageAuto, "hello"))
	assert.IsType(t, &MorphTokenizer{}, NewTokenizer(LanguageAuto, "夜空"))
}

func TestMorphTokenizerBaseForms(t *testing.T) {
	tok := &MorphTokenizer{}

	// 食べた is the past tense of 食べる; base forms fold the inflection.
	got, err := tok.BaseForms("食べた")
	require.NoError(t, err)
	assert.Contains(t, got, "食べる")
}

func TestMorphTokenizerContentWords(t *testing.T) {
	tok := &MorphTokenizer{}

	got, err := tok.ContentWords("私は学校に行った")
	require.NoError(t, err)

	// Nouns and the verb survive in base form.
	assert.Contains(t, got, "学校")
	assert.Contains(t, got, "行く")
	// Particles are dropped.
	assert.NotContains(t, got, "は")
	assert.NotContains(t, got, "に")
}
