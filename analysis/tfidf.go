package analysis

import "math"

// The TF-IDF here is corpus-oriented: term frequency is taken over the whole
// corpus while document frequency counts songs containing the word. That
// yields a single salience score per word per corpus instead of one per
// song, which is what the vocabulary report wants.

// DocumentFrequencies counts, for each word, the number of songs whose count
// table contains it. Presence only; per-song counts are ignored.
func DocumentFrequencies(perSongCounts []map[string]int) map[string]int {
	docFreq := make(map[string]int)
	for _, counts := range perSongCounts {
		for word := range counts {
			docFreq[word]++
		}
	}
	return docFreq
}

// IDF is ln(N/df), defined as 0 when either df or N is zero.
func IDF(documentFrequency, totalDocuments int) float64 {
	if documentFrequency == 0 || totalDocuments == 0 {
		return 0
	}
	return math.Log(float64(totalDocuments) / float64(documentFrequency))
}

// TF is the raw count over the total word count, 0 when the total is 0.
func TF(wordCount, totalWords int) float64 {
	if totalWords == 0 {
		return 0
	}
	return float64(wordCount) / float64(totalWords)
}

// TFIDFScores computes tf*idf for every word in counts. When normalize is
// set, every score is divided by the batch maximum and rounded to four
// decimals, so the top word scores exactly 1.0 whenever any score is
// nonzero.
func TFIDFScores(counts map[string]int, totalWords int, docFreqs map[string]int, totalDocuments int, normalize bool) map[string]float64 {
	if len(counts) == 0 {
		return map[string]float64{}
	}

	scores := make(map[string]float64, len(counts))
	for word, count := range counts {
		scores[word] = TF(count, totalWords) * IDF(docFreqs[word], totalDocuments)
	}

	if normalize {
		maxScore := 0.0
		for _, score := range scores {
			if score > maxScore {
				maxScore = score
			}
		}
		if maxScore > 0 {
			for word, score := range scores {
				scores[word] = round4(score / maxScore)
			}
		}
	}
	return scores
}

// CorpusTFIDF scores an aggregated corpus, treating each song as one
// document. Empty input yields an empty map.
func CorpusTFIDF(perSongCounts []map[string]int, aggregateCounts map[string]int, totalWords int, normalize bool) map[string]float64 {
	if len(perSongCounts) == 0 {
		return map[string]float64{}
	}
	docFreqs := DocumentFrequencies(perSongCounts)
	return TFIDFScores(aggregateCounts, totalWords, docFreqs, len(perSongCounts), normalize)
}
