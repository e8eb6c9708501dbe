package analysis

import (
	"fmt"
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// Shared lemmatizer, built from the embedded English dictionary on first
// use. Read-only after construction.
var (
	lemmaOnce sync.Once
	lemma     *golem.Lemmatizer
	lemmaErr  error
)

func lemmatizer() (*golem.Lemmatizer, error) {
	lemmaOnce.Do(func() {
		lemma, lemmaErr = golem.New(en.New())
	})
	if lemmaErr != nil {
		return nil, fmt.Errorf("%w: lemmatizer: %v", ErrResourceUnavailable, lemmaErr)
	}
	return lemma, nil
}

// Lemmatize maps each token to its dictionary form. Only the western branch
// is lemmatized here; the logographic tokenizer already emits base forms, so
// its tokens pass through unchanged. sample is used to resolve an auto
// language setting.
func Lemmatize(tokens []string, cfg Config, sample string) ([]string, error) {
	if !cfg.UseLemmatization {
		return tokens, nil
	}
	if cfg.resolveLanguage(sample) == LanguageLogographic {
		return tokens, nil
	}
	lm, err := lemmatizer()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = lm.Lemma(tok)
	}
	return out, nil
}
