package pattern

import (
	"strconv"
	"strings"

	"wordup/internal/charset"
	"wordup/internal/mutate"
)

// Year range for generated $-append rules.
const (
	ruleYearFirst = 1900
	ruleYearLast  = 2030
)

// RuleGen emits one rule line per mutation for every word of length >= 3:
// the three case ops, prepend/append rules over the common punctuation set,
// appended integers 0-99 and years 1900-2030, and a leet substitution rule
// when the combined leet transform changes the word. Multi-character
// appends chain $X ops ("$1$9$9$9"); each line ends with a space and the
// base word.
func RuleGen(words []string) []string {
	punct := charset.SpecialCommon()
	var rules []string
	for _, word := range words {
		if len(word) < 3 {
			continue
		}
		rules = append(rules,
			"c "+word,
			"u "+word,
			"l "+word,
		)
		for _, p := range punct {
			rules = append(rules, "^"+string(p)+" "+word)
			rules = append(rules, "$"+string(p)+" "+word)
		}
		for i := 0; i < 100; i++ {
			rules = append(rules, appendOps(strconv.Itoa(i))+" "+word)
		}
		for year := ruleYearFirst; year <= ruleYearLast; year++ {
			rules = append(rules, appendOps(strconv.Itoa(year))+" "+word)
		}
		if leetRule := leetSubstitutionRule(word); leetRule != "" {
			rules = append(rules, leetRule+" "+word)
		}
	}
	return rules
}

// appendOps chains one $X op per character of s.
func appendOps(s string) string {
	var ops strings.Builder
	ops.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		ops.WriteByte('$')
		ops.WriteByte(s[i])
	}
	return ops.String()
}

// leetSubstitutionRule builds a chained sXY rule covering every leet-mapped
// letter present in the word, or "" when the transform is a no-op.
func leetSubstitutionRule(word string) string {
	if mutate.LeetAll(word) == word {
		return ""
	}
	var ops strings.Builder
	for _, sub := range mutate.LeetPairs() {
		if strings.IndexByte(word, sub.From) >= 0 {
			ops.WriteByte('s')
			ops.WriteByte(sub.From)
			ops.WriteByte(sub.To)
		}
	}
	return ops.String()
}
