package pattern

import (
	"sort"
	"strings"
)

// Thresholds and bounds for mask aggregation.
const (
	maskPatternMinCount = 5  // pattern must occur more often than this
	maskLengthMinCount  = 10 // length bucket must occur more often than this
	maskMinLen          = 3
	maskMaxLen          = 16
	maskMixedMinLen     = 6
)

// MaskGen aggregates the corpus two ways: frequent per-character patterns
// become masks directly, and frequent lengths emit a catalogue of
// uniform-class masks plus, for longer words, mixed prefix+digit
// templates. The result is deduplicated and sorted.
func MaskGen(words []string) []string {
	patternCounts := make(map[string]int)
	lengthCounts := make(map[int]int)
	for _, word := range words {
		patternCounts[Classify(word)]++
		lengthCounts[len(word)]++
	}

	out := make(map[string]struct{})
	for pattern, count := range patternCounts {
		if count > maskPatternMinCount && len(pattern) >= maskMinLen && len(pattern) <= maskMaxLen {
			out[maskFromPattern(pattern)] = struct{}{}
		}
	}
	for length, count := range lengthCounts {
		if count <= maskLengthMinCount || length < maskMinLen || length > maskMaxLen {
			continue
		}
		for _, token := range []string{"?l", "?u", "?d", "?s", "?a"} {
			out[strings.Repeat(token, length)] = struct{}{}
		}
		if length >= maskMixedMinLen {
			for _, m := range mixedMasks(length) {
				out[m] = struct{}{}
			}
		}
	}

	masks := make([]string, 0, len(out))
	for m := range out {
		masks = append(masks, m)
	}
	sort.Strings(masks)
	return masks
}

// mixedMasks emits the capitalized/digit-tail templates for a length >= 6.
func mixedMasks(n int) []string {
	return []string{
		"?u" + strings.Repeat("?l", n-3) + "?d?d",
		strings.Repeat("?l", n-2) + "?d?d",
		strings.Repeat("?l", n-4) + "?d?d?d?d",
		"?u" + strings.Repeat("?l", n-5) + "?d?d?d?d",
	}
}
