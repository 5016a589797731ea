// Package stats implements word frequency analysis over a raw corpus.
package stats

// CountWords returns per-word occurrence counts over the input sequence.
// Duplicates in the input count; the caller decides whether the input is
// a deduplicated set or a raw stream.
func CountWords(words []string) map[string]int {
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}
	return counts
}

// FrequencyScores normalizes counts into [0,1] scores, count/total.
// A zero total yields an empty map rather than a division by zero.
func FrequencyScores(counts map[string]int, total int) map[string]float64 {
	scores := make(map[string]float64, len(counts))
	if total == 0 {
		return scores
	}
	for w, c := range counts {
		scores[w] = float64(c) / float64(total)
	}
	return scores
}

// Analyze is the convenience entry point: counts the corpus and derives
// scores from its own length.
func Analyze(words []string) (map[string]int, map[string]float64) {
	counts := CountWords(words)
	return counts, FrequencyScores(counts, len(words))
}
