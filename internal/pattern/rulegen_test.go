package pattern

import "testing"

func TestRuleGen(t *testing.T) {
	rules := RuleGen([]string{"word"})
	want := []string{
		"c word",
		"u word",
		"l word",
		"^! word",
		"$! word",
		"^- word",
		"$0 word",
		"$9$9 word",
		"$1$9$9$9 word",
		"$2$0$3$0 word",
		"so0 word",
	}
	set := make(map[string]struct{}, len(rules))
	for _, r := range rules {
		set[r] = struct{}{}
	}
	for _, w := range want {
		if _, ok := set[w]; !ok {
			t.Errorf("missing rule %q", w)
		}
	}
	// 3 case ops + 20 prepend/append + 100 ints + 131 years + 1 leet
	if len(rules) != 255 {
		t.Errorf("got %d rules, want 255", len(rules))
	}
}

func TestRuleGenSkipsShortWords(t *testing.T) {
	if rules := RuleGen([]string{"ab"}); len(rules) != 0 {
		t.Fatalf("expected no rules for a 2-character word, got %d", len(rules))
	}
}

func TestRuleGenNoLeetRuleWhenUnmapped(t *testing.T) {
	// "nymph" contains no leet-mapped letters, so no sXY rule is emitted:
	// 254 instead of 255.
	rules := RuleGen([]string{"nymph"})
	if len(rules) != 254 {
		t.Fatalf("got %d rules, want 254", len(rules))
	}
	for _, r := range rules {
		if len(r) > 0 && r[0] == 's' {
			t.Errorf("unexpected substitution rule %q", r)
		}
	}
}
