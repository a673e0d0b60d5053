package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokens splits a line on runs of whitespace.
func Tokens(line string) []string {
	return strings.Fields(line)
}

// NormalizeWord converts a raw token into a frequency-table key. The token is
// lowercased and reduced to its alphabetic runes; a combining mark survives
// only when it directly follows a rune that was kept. It returns the empty
// string when the token contains nothing alphabetic.
func NormalizeWord(token string) string {
	if !HasAlpha(token) {
		return ""
	}
	lowered := cases.Lower(language.Und).String(token)

	var b strings.Builder
	b.Grow(len(lowered))
	attached := false
	for _, r := range lowered {
		switch {
		case IsAlpha(r):
			attached = true
		case attached && unicode.Is(unicode.M, r):
		default:
			attached = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsAlpha reports whether r has the Unicode Alphabetic property. Beyond
// letters this covers letter numbers such as "Ⅻ" and the Other_Alphabetic
// runes (Devanagari vowel signs, circled letters).
func IsAlpha(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_Alphabetic, r)
}

// HasAlpha reports whether s contains at least one alphabetic rune.
func HasAlpha(s string) bool {
	return strings.IndexFunc(s, IsAlpha) >= 0
}

// IsBlank reports whether the line is empty after trimming surrounding whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Upper returns the line upper-cased without trimming it.
func Upper(line string) string {
	if line == "" {
		return ""
	}
	return cases.Upper(language.Und).String(line)
}
