package mutate

import "sort"

// WordSet is a growing, deduplicated candidate set. Iteration order is
// undefined; serialize through Sorted so downstream output is stable.
type WordSet map[string]struct{}

// NewWordSet returns an empty set.
func NewWordSet() WordSet { return make(WordSet) }

// Add inserts a single word.
func (s WordSet) Add(word string) { s[word] = struct{}{} }

// AddAll inserts every word from the slice.
func (s WordSet) AddAll(words []string) {
	for _, w := range words {
		s[w] = struct{}{}
	}
}

// Has reports membership.
func (s WordSet) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Merge folds other into s.
func (s WordSet) Merge(other WordSet) {
	for w := range other {
		s[w] = struct{}{}
	}
}

// Len returns the number of distinct words.
func (s WordSet) Len() int { return len(s) }

// Sorted returns the members as a lexicographically sorted slice.
func (s WordSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
