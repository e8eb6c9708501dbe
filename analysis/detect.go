package analysis

// Code point ranges that mark text as logographic. Kana and ideograph ranges
// cover the common scripts seen in lyrics; the half-width katakana range
// catches older transcriptions.
var logographicRanges = [...][2]rune{
	{0x3040, 0x309F}, // hiragana
	{0x30A0, 0x30FF}, // katakana
	{0x31F0, 0x31FF}, // katakana phonetic extensions
	{0x4E00, 0x9FFF}, // CJK unified ideographs
	{0xFF65, 0xFF9F}, // half-width katakana
}

func isLogographicRune(r rune) bool {
	for _, rng := range logographicRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

// ContainsLogographic reports whether any rune in text belongs to a
// logographic script.
func ContainsLogographic(text string) bool {
	for _, r := range text {
		if isLogographicRune(r) {
			return true
		}
	}
	return false
}

// DetectLanguage classifies text by script composition. Mixed-script lyrics
// are common, so a single logographic character is enough to select the
// logographic branch. Empty text is western.
func DetectLanguage(text string) Language {
	if text == "" {
		return LanguageWestern
	}
	if ContainsLogographic(text) {
		return LanguageLogographic
	}
	return LanguageWestern
}
