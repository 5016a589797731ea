package charset

import "testing"

func TestClassPredicates(t *testing.T) {
	tests := []struct {
		b       byte
		lower   bool
		upper   bool
		digit   bool
		special bool
	}{
		{'a', true, false, false, false},
		{'z', true, false, false, false},
		{'A', false, true, false, false},
		{'5', false, false, true, false},
		{'!', false, false, false, true},
		{'@', false, false, false, true},
		{'~', false, false, false, true},
		{'`', false, false, false, true},
		{' ', false, false, false, false},
		{0x80, false, false, false, false},
	}
	for _, tt := range tests {
		if got := IsLower(tt.b); got != tt.lower {
			t.Errorf("IsLower(%q) = %v", tt.b, got)
		}
		if got := IsUpper(tt.b); got != tt.upper {
			t.Errorf("IsUpper(%q) = %v", tt.b, got)
		}
		if got := IsDigit(tt.b); got != tt.digit {
			t.Errorf("IsDigit(%q) = %v", tt.b, got)
		}
		if got := IsSpecial(tt.b); got != tt.special {
			t.Errorf("IsSpecial(%q) = %v", tt.b, got)
		}
	}
}

func TestSpecialCommon(t *testing.T) {
	if got := string(SpecialCommon()); got != "!@#$%^&*_-" {
		t.Errorf("SpecialCommon() = %q", got)
	}
}

func TestDigits(t *testing.T) {
	if got := string(Digits()); got != "0123456789" {
		t.Errorf("Digits() = %q", got)
	}
}

func TestCombineDeduplicates(t *testing.T) {
	got := Combine([]byte("abc"), []byte("bcd"))
	if string(got) != "abcd" {
		t.Errorf("Combine = %q, want abcd", got)
	}
}
