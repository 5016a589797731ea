package pattern

import (
	"sort"
	"strconv"
)

// LengthCount is one ranked length bucket.
type LengthCount struct {
	Length int
	Count  int
}

// PatternCount is one ranked pattern bucket.
type PatternCount struct {
	Pattern string
	Count   int
}

// Summary is the statsgen output: corpus size and distinct-bucket counts
// plus the ten most frequent lengths.
type Summary struct {
	TotalWords     int
	UniqueLengths  int
	UniqueCharsets int
	UniquePatterns int
	TopLengths     []LengthCount
}

// Policy is the policygen output: observed length bounds, per-class word
// counts, and the five most frequent patterns.
type Policy struct {
	MinLength    int
	MaxLength    int
	LowerCount   int
	UpperCount   int
	DigitCount   int
	SpecialCount int
	TopPatterns  []PatternCount
}

// StatsGen summarizes the corpus. An empty corpus yields a zero-valued
// summary, never a panic.
func StatsGen(words []string) Summary {
	lengths := make(map[int]int)
	charsets := make(map[string]struct{})
	patterns := make(map[string]struct{})
	for _, word := range words {
		lengths[len(word)]++
		charsets[CharsetSignature(word)] = struct{}{}
		patterns[Classify(word)] = struct{}{}
	}
	return Summary{
		TotalWords:     len(words),
		UniqueLengths:  len(lengths),
		UniqueCharsets: len(charsets),
		UniquePatterns: len(patterns),
		TopLengths:     topLengths(lengths, 10),
	}
}

// PolicyGen profiles the corpus against charset-composition policies.
// Empty input reports zero min/max instead of indexing into nothing.
func PolicyGen(words []string) Policy {
	var p Policy
	patterns := make(map[string]int)
	for i, word := range words {
		n := len(word)
		if i == 0 {
			p.MinLength, p.MaxLength = n, n
		}
		if n < p.MinLength {
			p.MinLength = n
		}
		if n > p.MaxLength {
			p.MaxLength = n
		}
		sig := CharsetSignature(word)
		for j := 0; j < len(sig); j++ {
			switch sig[j] {
			case 'l':
				p.LowerCount++
			case 'u':
				p.UpperCount++
			case 'd':
				p.DigitCount++
			case 's':
				p.SpecialCount++
			}
		}
		patterns[Classify(word)]++
	}
	p.TopPatterns = topPatterns(patterns, 5)
	return p
}

// ComprehensiveAnalysis flattens statsgen, policygen, and the rule/mask
// generator counts into one string-keyed record ready for key/value
// serialization. Ranked entries are 1-based: length_1_value is the most
// frequent length.
func ComprehensiveAnalysis(words []string) map[string]string {
	summary := StatsGen(words)
	policy := PolicyGen(words)

	record := map[string]string{
		"total_words":     strconv.Itoa(summary.TotalWords),
		"unique_lengths":  strconv.Itoa(summary.UniqueLengths),
		"unique_charsets": strconv.Itoa(summary.UniqueCharsets),
		"unique_patterns": strconv.Itoa(summary.UniquePatterns),
		"min_length":      strconv.Itoa(policy.MinLength),
		"max_length":      strconv.Itoa(policy.MaxLength),
		"rules_generated": strconv.Itoa(len(RuleGen(words))),
		"masks_generated": strconv.Itoa(len(MaskGen(words))),
	}
	for i, lc := range summary.TopLengths {
		rank := strconv.Itoa(i + 1)
		record["length_"+rank+"_value"] = strconv.Itoa(lc.Length)
		record["length_"+rank+"_count"] = strconv.Itoa(lc.Count)
	}
	for i, pc := range policy.TopPatterns {
		rank := strconv.Itoa(i + 1)
		record["pattern_"+rank+"_value"] = pc.Pattern
		record["pattern_"+rank+"_count"] = strconv.Itoa(pc.Count)
	}
	return record
}

// topLengths ranks length buckets by count descending, then length
// ascending for stable output.
func topLengths(lengths map[int]int, n int) []LengthCount {
	ranked := make([]LengthCount, 0, len(lengths))
	for length, count := range lengths {
		ranked = append(ranked, LengthCount{Length: length, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Length < ranked[j].Length
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func topPatterns(patterns map[string]int, n int) []PatternCount {
	ranked := make([]PatternCount, 0, len(patterns))
	for pattern, count := range patterns {
		ranked = append(ranked, PatternCount{Pattern: pattern, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Pattern < ranked[j].Pattern
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
