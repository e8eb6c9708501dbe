// Package data embeds the stopword lists used by the filter chain.
package data

import _ "embed"

//go:embed stopwords_en.txt
var StopwordsEN string

//go:embed stopwords_ja.txt
var StopwordsJA string
