// Package markov trains a fixed-order character transition model over a
// word corpus and samples new candidate words from it.
package markov

import (
	"math/rand"
	"sort"
	"strings"
)

const (
	// Order is the context length of the chain.
	Order = 2
	// Boundary pads contexts and doubles as the end-of-word outcome. It is
	// not reachable as a corpus character, so it never collides.
	Boundary = '~'
	// MaxGeneratedLen caps a single sampled word.
	MaxGeneratedLen = 30

	// Accepted generated words must be alphabetic and inside these bounds.
	minAcceptedLen = 3
	maxAcceptedLen = 50
)

// Model is an order-2 transition table: a context of Order characters maps
// to a weighted multiset of next-byte outcomes. Weights stay raw counts;
// draws normalize implicitly.
type Model struct {
	table map[string]map[byte]int
}

// NewModel returns an empty, untrained model.
func NewModel() *Model {
	return &Model{table: make(map[string]map[byte]int)}
}

// Train accumulates transitions from the corpus into the table. Words
// shorter than the order are skipped. Training is a single pass and may be
// called repeatedly to fold in more words.
func (m *Model) Train(words []string) {
	pad := strings.Repeat(string(Boundary), Order)
	for _, word := range words {
		if len(word) < Order {
			continue
		}
		padded := pad + word + pad
		for i := 0; i < len(word)+Order; i++ {
			context := padded[i : i+Order]
			next := padded[i+Order]
			outcomes, ok := m.table[context]
			if !ok {
				outcomes = make(map[byte]int)
				m.table[context] = outcomes
			}
			outcomes[next]++
		}
	}
}

// Contexts returns the number of distinct contexts seen during training.
func (m *Model) Contexts() int { return len(m.table) }

// Generate samples a single word from the model, walking from the boundary
// context until it draws the boundary outcome, falls off the table, or hits
// MaxGeneratedLen. The second return is false when no characters were
// produced.
func (m *Model) Generate(rng *rand.Rand) (string, bool) {
	context := strings.Repeat(string(Boundary), Order)
	var word strings.Builder

	for i := 0; i < MaxGeneratedLen; i++ {
		outcomes, ok := m.table[context]
		if !ok || len(outcomes) == 0 {
			break
		}
		next, ok := weightedChoice(outcomes, rng)
		if !ok || next == Boundary {
			break
		}
		word.WriteByte(next)
		context = context[1:] + string(next)
	}

	if word.Len() == 0 {
		return "", false
	}
	return word.String(), true
}

// weightedChoice draws one outcome with probability proportional to its
// weight. Outcomes are visited in ascending byte order so a seeded RNG
// reproduces the same sequence across runs.
func weightedChoice(outcomes map[byte]int, rng *rand.Rand) (byte, bool) {
	keys := make([]byte, 0, len(outcomes))
	total := 0
	for b, w := range outcomes {
		keys = append(keys, b)
		total += w
	}
	if total <= 0 {
		return 0, false
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	draw := rng.Intn(total)
	cumulative := 0
	for _, b := range keys {
		cumulative += outcomes[b]
		if draw < cumulative {
			return b, true
		}
	}
	return 0, false
}

// GenerateWords trains a fresh model on the corpus and samples until count
// accepted words are collected or 10*count attempts have been made,
// whichever comes first. Accepted words are lowercased; results may repeat.
// An empty corpus yields nil.
func GenerateWords(words []string, count int, rng *rand.Rand) []string {
	if len(words) == 0 || count <= 0 {
		return nil
	}

	model := NewModel()
	model.Train(words)

	results := make([]string, 0, count)
	maxAttempts := count * 10
	for attempts := 0; len(results) < count && attempts < maxAttempts; attempts++ {
		word, ok := model.Generate(rng)
		if !ok {
			continue
		}
		if len(word) < minAcceptedLen || len(word) > maxAcceptedLen {
			continue
		}
		if !isAlphabetic(word) {
			continue
		}
		results = append(results, strings.ToLower(word))
	}
	return results
}

func isAlphabetic(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if (b < 'a' || b > 'z') && (b < 'A' || b > 'Z') {
			return false
		}
	}
	return true
}
