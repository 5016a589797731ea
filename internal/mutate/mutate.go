// Package mutate implements the candidate mutation techniques: leetspeak
// substitution, permutations, company-name variation, and the
// expander/cutb/prince/combinator family, plus the hybrid composition and
// the iterative refinement loop driving it to a fixed point.
package mutate

import (
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"wordup/internal/charset"
)

// leetTable maps a letter to its substitution characters. Each variant
// applies one replacement uniformly to every occurrence of the letter.
var leetTable = []struct {
	from byte
	to   string
}{
	{'a', "4@"},
	{'b', "6"},
	{'e', "3"},
	{'g', "9"},
	{'i', "1!"},
	{'l', "1"},
	{'o', "0"},
	{'s', "5$"},
	{'t', "7"},
	{'z', "2"},
}

var (
	permSeparators = []string{"-", "_", ".", " "}
	permSuffixes   = []string{"s", "ing", "ed", "er", "est", "ly", "tion", "sion", "ness", "ment"}

	securityAffixes = []string{"admin", "user", "test", "temp", "new", "old", "backup"}

	businessSuffixes = []string{
		"inc", "corp", "llc", "ltd", "co", "group", "systems", "solutions", "services",
		"technologies", "software", "hardware", "networks", "security", "consulting",
	}
	businessPrefixes = []string{
		"new", "advanced", "premium", "pro", "ultra", "mega", "super", "max", "plus",
		"elite", "gold", "silver", "platinum", "diamond", "titanium", "steel", "iron",
	}

	companyJoins = []string{"", "-", "_"}
)

// expanderMaxInputLen is the per-word bound above which the expander skips
// a word entirely.
const expanderMaxInputLen = 20

// Options configures an Engine. Zero-valued length bounds fall back to the
// corpus defaults.
type Options struct {
	CompanyName   string
	Domain        string
	MinWordLength int
	MaxWordLength int
	Logger        logrus.FieldLogger
}

// Engine applies the mutation techniques under one configuration. All
// technique methods are pure with respect to engine state and safe for
// concurrent use.
type Engine struct {
	company string
	domain  string
	minLen  int
	maxLen  int
	log     logrus.FieldLogger
}

// NewEngine builds an engine, applying defaults for unset options.
func NewEngine(opts Options) *Engine {
	if opts.MinWordLength <= 0 {
		opts.MinWordLength = 3
	}
	if opts.MaxWordLength <= 0 {
		opts.MaxWordLength = 50
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	return &Engine{
		company: opts.CompanyName,
		domain:  opts.Domain,
		minLen:  opts.MinWordLength,
		maxLen:  opts.MaxWordLength,
		log:     opts.Logger,
	}
}

// Leetspeak produces every single-rule substitution variant of each word.
// The original words are always part of the result.
func (e *Engine) Leetspeak(words []string) WordSet {
	out := NewWordSet()
	for _, word := range words {
		leetWord(word, out)
	}
	return out
}

func leetWord(word string, out WordSet) {
	out.Add(word)
	for _, sub := range leetTable {
		if strings.IndexByte(word, sub.from) < 0 {
			continue
		}
		for i := 0; i < len(sub.to); i++ {
			out.Add(strings.ReplaceAll(word, string(sub.from), string(sub.to[i])))
		}
	}
}

// LeetPair is one substitution table entry, exposing the primary
// replacement character.
type LeetPair struct {
	From byte
	To   byte
}

// LeetPairs returns the (letter, primary replacement) pairs of the
// substitution table in table order.
func LeetPairs() []LeetPair {
	pairs := make([]LeetPair, 0, len(leetTable))
	for _, sub := range leetTable {
		pairs = append(pairs, LeetPair{From: sub.from, To: sub.to[0]})
	}
	return pairs
}

// LeetAll applies the first replacement of every mapped letter at once,
// the single combined transform the rule generator also relies on.
func LeetAll(word string) string {
	for _, sub := range leetTable {
		word = strings.ReplaceAll(word, string(sub.from), string(sub.to[0]))
	}
	return word
}

// Permutations inserts separators at internal split points (words longer
// than 4 characters), and appends digit affixes and common suffixes.
func (e *Engine) Permutations(words []string) WordSet {
	out := NewWordSet()
	for _, word := range words {
		out.Add(word)
		if len(word) > 4 {
			for _, sep := range permSeparators {
				for i := 1; i < len(word); i++ {
					out.Add(word[:i] + sep + word[i:])
				}
			}
		}
		for _, d := range charset.Digits() {
			out.Add(word + string(d))
			out.Add(string(d) + word)
			out.Add(word + string(d) + string(d))
		}
		for _, suffix := range permSuffixes {
			out.Add(word + suffix)
		}
	}
	return out
}

// CompanyVariations derives candidates from the configured company name:
// the bare normalized name, business prefix/suffix combinations in three
// join styles, and nearby years. The configured domain and its first label
// are included when set.
func (e *Engine) CompanyVariations() WordSet {
	out := NewWordSet()
	name := strings.ReplaceAll(strings.ToLower(e.company), " ", "")
	if name == "" {
		return out
	}
	out.Add(name)
	for _, suffix := range businessSuffixes {
		for _, join := range companyJoins {
			out.Add(name + join + suffix)
		}
	}
	for _, prefix := range businessPrefixes {
		for _, join := range companyJoins {
			out.Add(prefix + join + name)
		}
	}
	currentYear := time.Now().Year()
	for year := currentYear - 5; year <= currentYear+1; year++ {
		for _, join := range companyJoins {
			out.Add(name + join + strconv.Itoa(year))
		}
	}
	if domain := strings.ToLower(e.domain); domain != "" {
		out.Add(domain)
		if label, _, found := strings.Cut(domain, "."); found && len(label) >= e.minLen {
			out.Add(label)
		}
	}
	return out
}

// Expander emits the fixed catalogue per word: case variants, punctuation
// suffixes, security-context affixes, and digit affixes. Words longer than
// 20 characters are skipped; every candidate is length-filtered against the
// configured maximum.
func (e *Engine) Expander(words []string) WordSet {
	out := NewWordSet()
	for _, word := range words {
		out.Add(word)
		if len(word) > expanderMaxInputLen {
			continue
		}
		e.addBounded(out, strings.ToLower(word))
		e.addBounded(out, strings.ToUpper(word))
		e.addBounded(out, capitalize(word))
		for _, p := range charset.SpecialCommon() {
			e.addBounded(out, word+string(p))
		}
		for _, affix := range securityAffixes {
			e.addBounded(out, affix+word)
			e.addBounded(out, word+"_"+affix)
		}
		for _, d := range charset.Digits() {
			e.addBounded(out, string(d)+word)
			e.addBounded(out, word+string(d))
		}
	}
	return out
}

// Cutb truncates words positionally: up to 3 characters from either end,
// and 1-2 from both ends at once. Cuts shorter than the configured minimum
// are discarded; originals always survive.
func (e *Engine) Cutb(words []string) WordSet {
	out := NewWordSet()
	for _, word := range words {
		out.Add(word)
		n := len(word)
		if n < 3 {
			continue
		}
		for i := 1; i <= 3 && i < n; i++ {
			e.addCut(out, word[i:])
			e.addCut(out, word[:n-i])
		}
		for i := 1; i <= 2; i++ {
			for j := 1; j <= 2; j++ {
				if i+j < n {
					e.addCut(out, word[i:n-j])
				}
			}
		}
	}
	return out
}

// Prince concatenates every unordered pair from the collection, plainly
// and with the three standard separators, keeping results within the
// configured maximum length.
func (e *Engine) Prince(words []string) WordSet {
	out := NewWordSet()
	for i := 0; i < len(words); i++ {
		for j := i + 1; j < len(words); j++ {
			e.addBounded(out, words[i]+words[j])
			e.addBounded(out, words[i]+"_"+words[j])
			e.addBounded(out, words[i]+"-"+words[j])
			e.addBounded(out, words[i]+"."+words[j])
		}
	}
	return out
}

// Combinator crosses two collections, concatenating plainly and with an
// underscore. Quadratic in input size; callers bound the inputs.
func (e *Engine) Combinator(left, right []string) WordSet {
	out := NewWordSet()
	for _, a := range left {
		for _, b := range right {
			e.addBounded(out, a+b)
			e.addBounded(out, a+"_"+b)
		}
	}
	return out
}

// Hybrid composes the techniques: expand the input, cut and pair the
// expanded set, then leetspeak everything produced so far.
func (e *Engine) Hybrid(words []string) WordSet {
	out := NewWordSet()
	out.AddAll(words)

	expanded := e.Expander(words)
	out.Merge(expanded)

	expandedList := expanded.Sorted()
	out.Merge(e.Cutb(expandedList))
	out.Merge(e.Prince(expandedList))

	out.Merge(e.Leetspeak(out.Sorted()))
	return out
}

func (e *Engine) addBounded(out WordSet, word string) {
	if len(word) <= e.maxLen {
		out.Add(word)
	}
}

func (e *Engine) addCut(out WordSet, word string) {
	if len(word) >= e.minLen {
		out.Add(word)
	}
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}

