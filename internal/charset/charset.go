package charset

// Character-class helpers shared by the pattern analyzer and the mutation
// engine. Classification works on bytes: the corpus contract only admits
// ASCII, and anything outside the named ranges is handled by callers.

// IsLower reports whether b is an ASCII lowercase letter.
func IsLower(b byte) bool { return b >= 'a' && b <= 'z' }

// IsUpper reports whether b is an ASCII uppercase letter.
func IsUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

// IsDigit reports whether b is an ASCII digit.
func IsDigit(b byte) bool { return b >= '0' && b <= '9' }

// IsSpecial reports whether b falls in one of the four ASCII punctuation
// ranges hashcat's ?s class covers: !-/ :-@ [-` {-~.
func IsSpecial(b byte) bool {
	switch {
	case b >= '!' && b <= '/':
		return true
	case b >= ':' && b <= '@':
		return true
	case b >= '[' && b <= '`':
		return true
	case b >= '{' && b <= '~':
		return true
	}
	return false
}

// Digits returns ASCII digits 0-9.
func Digits() []byte {
	d := make([]byte, 0, 10)
	for b := byte('0'); b <= '9'; b++ {
		d = append(d, b)
	}
	return d
}

// SpecialCommon returns a small, common set of punctuation characters,
// used for expander suffixes and generated ^/$ rules.
func SpecialCommon() []byte {
	const s = "!@#$%^&*_-"
	return []byte(s)
}

// SpecialAll returns a broad set of ASCII punctuation characters.
func SpecialAll() []byte {
	out := make([]byte, 0, 32)
	for b := byte(33); b <= 126; b++ {
		if IsLower(b) || IsUpper(b) || IsDigit(b) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Combine merges multiple byte sets into one, de-duplicated, preserving order.
func Combine(sets ...[]byte) []byte {
	seen := make(map[byte]bool, 256)
	out := make([]byte, 0, 256)
	for _, s := range sets {
		for _, b := range s {
			if !seen[b] {
				seen[b] = true
				out = append(out, b)
			}
		}
	}
	return out
}
