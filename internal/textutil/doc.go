// Package textutil provides the token-level text helpers shared by the
// pipeline: whitespace tokenization, word normalization, blank-line
// detection, and Unicode-aware case mapping.
//
// Normalization lowercases a token and keeps only its alphabetic runes, in the
// sense of the Unicode Alphabetic property, plus any combining marks attached
// to them. Decomposed accents and Indic vowel signs therefore stay part of the
// word while punctuation and digits are dropped. Case mapping goes through
// golang.org/x/text/cases rather than the byte-oriented strings helpers so
// multi-rune mappings (for example "ß" to "SS") behave consistently.
package textutil
