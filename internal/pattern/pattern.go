// Package pattern classifies words into character-class signatures,
// per-position patterns, and hashcat-style masks, and generates mask and
// rule artifacts plus aggregate policy statistics from a corpus.
package pattern

import (
	"strings"

	"wordup/internal/charset"
)

// CharsetSignature returns the character classes present anywhere in the
// word as a short flag string in fixed l,u,d,s order, e.g. "lud".
func CharsetSignature(word string) string {
	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for i := 0; i < len(word); i++ {
		b := word[i]
		switch {
		case charset.IsLower(b):
			hasLower = true
		case charset.IsUpper(b):
			hasUpper = true
		case charset.IsDigit(b):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	var sig strings.Builder
	if hasLower {
		sig.WriteByte('l')
	}
	if hasUpper {
		sig.WriteByte('u')
	}
	if hasDigit {
		sig.WriteByte('d')
	}
	if hasSpecial {
		sig.WriteByte('s')
	}
	return sig.String()
}

// Classify returns the per-character class sequence of the word over the
// alphabet {l,u,d,s}, one symbol per byte.
func Classify(word string) string {
	var p strings.Builder
	p.Grow(len(word))
	for i := 0; i < len(word); i++ {
		b := word[i]
		switch {
		case charset.IsLower(b):
			p.WriteByte('l')
		case charset.IsUpper(b):
			p.WriteByte('u')
		case charset.IsDigit(b):
			p.WriteByte('d')
		default:
			p.WriteByte('s')
		}
	}
	return p.String()
}

// Mask derives the hashcat mask for the word. Letters and digits map to
// ?l/?u/?d; bytes in the four ASCII punctuation ranges map to ?s; anything
// else, including non-ASCII bytes, falls back to ?a.
func Mask(word string) string {
	var m strings.Builder
	m.Grow(len(word) * 2)
	for i := 0; i < len(word); i++ {
		b := word[i]
		switch {
		case charset.IsLower(b):
			m.WriteString("?l")
		case charset.IsUpper(b):
			m.WriteString("?u")
		case charset.IsDigit(b):
			m.WriteString("?d")
		case charset.IsSpecial(b):
			m.WriteString("?s")
		default:
			m.WriteString("?a")
		}
	}
	return m.String()
}

// maskFromPattern converts an l/u/d/s pattern string into mask tokens.
func maskFromPattern(pattern string) string {
	var m strings.Builder
	m.Grow(len(pattern) * 2)
	for i := 0; i < len(pattern); i++ {
		m.WriteByte('?')
		m.WriteByte(pattern[i])
	}
	return m.String()
}
