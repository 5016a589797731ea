package pattern

import (
	"sort"
	"testing"
)

func repeated(word string, n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = word
	}
	return words
}

func TestMaskGenPatternThreshold(t *testing.T) {
	// 6 occurrences pass the pattern threshold, 6 stays under the length
	// threshold, so only the direct pattern mask appears.
	got := MaskGen(repeated("abc", 6))
	want := []string{"?l?l?l"}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestMaskGenUnderThreshold(t *testing.T) {
	if got := MaskGen(repeated("abc", 5)); len(got) != 0 {
		t.Fatalf("expected no masks at 5 occurrences, got %v", got)
	}
}

func TestMaskGenLengthCatalogue(t *testing.T) {
	got := MaskGen(repeated("abcdef", 11))
	want := []string{
		"?a?a?a?a?a?a",
		"?d?d?d?d?d?d",
		"?l?l?d?d?d?d",
		"?l?l?l?l?d?d",
		"?l?l?l?l?l?l",
		"?s?s?s?s?s?s",
		"?u?l?d?d?d?d",
		"?u?l?l?l?d?d",
		"?u?u?u?u?u?u",
	}
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("got %d masks %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("mask[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMaskGenLengthBounds(t *testing.T) {
	// 2-character words are below the minimum mask length even when
	// frequent.
	if got := MaskGen(repeated("ab", 20)); len(got) != 0 {
		t.Fatalf("expected no masks for 2-character words, got %v", got)
	}
}
