package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTagger struct {
	tagged []taggedWord
	err    error
}

func (f fakeTagger) tag(words []string) ([]taggedWord, error) {
	return f.tagged, f.err
}

func TestPosTagsWith(t *testing.T) {
	fake := fakeTagger{tagged: []taggedWord{
		{text: "night", tag: "NN"},
		{text: "run", tag: "VB"},
		{text: "dark", tag: "JJ"},
		{text: "slowly", tag: "RB"},
	}}

	tags, err := posTagsWith(fake, []string{"night", "run", "dark", "slowly"})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"night":  "noun",
		"run":    "verb",
		"dark":   "adjective",
		"slowly": "adverb",
	}, tags)
}

func TestPosTagsMajorityVote(t *testing.T) {
	// The same word tagged differently across occurrences takes the most
	// frequent tag.
	fake := fakeTagger{tagged: []taggedWord{
		{text: "run", tag: "VB"},
		{text: "run", tag: "VB"},
		{text: "Run", tag: "NN"},
	}}

	tags, err := posTagsWith(fake, []string{"run"})
	require.NoError(t, err)
	assert.Equal(t, "verb", tags["run"])
}

func TestPosTagsUnmappedTag(t *testing.T) {
	fake := fakeTagger{tagged: []taggedWord{{text: "hmm", tag: "XX"}}}
	tags, err := posTagsWith(fake, []string{"hmm"})
	require.NoError(t, err)
	assert.Equal(t, "xx", tags["hmm"])
}

func TestPosTagsEmpty(t *testing.T) {
	tags, err := POSTags(nil)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestPosTagsError(t *testing.T) {
	fake := fakeTagger{err: errors.New("model unavailable")}
	_, err := posTagsWith(fake, []string{"word"})
	assert.Error(t, err)
}

func TestPOSTagsReal(t *testing.T) {
	tags, err := POSTags([]string{"night", "beautiful"})
	require.NoError(t, err)
	assert.Equal(t, "noun", tags["night"])
	assert.Equal(t, "adjective", tags["beautiful"])
}

func TestPOSTagsKeepsWordsIntact(t *testing.T) {
	// Words the model's tokenizer would split still key the result by the
	// word as given.
	tags, err := POSTags([]string{"don't", "self-made"})
	require.NoError(t, err)

	require.Contains(t, tags, "don't")
	require.Contains(t, tags, "self-made")

	tag, err := POSTag("don't")
	require.NoError(t, err)
	assert.NotEqual(t, "unknown", tag)
}
