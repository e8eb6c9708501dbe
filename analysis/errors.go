package analysis

import "errors"

var (
	// ErrEmptyLyrics is returned when the raw lyrics text is blank or
	// whitespace only. A song whose tokens are all filtered away is not an
	// error; only blank input is.
	ErrEmptyLyrics = errors.New("lyrics text is empty or whitespace only")

	// ErrResourceUnavailable is returned when a required linguistic resource
	// (lemmatizer dictionary, morphological analyzer, POS model) failed to
	// initialize.
	ErrResourceUnavailable = errors.New("linguistic resource unavailable")

	// ErrInvalidConfig is returned by Config.Validate for out-of-range or
	// unrecognized configuration values.
	ErrInvalidConfig = errors.New("invalid analysis config")
)
