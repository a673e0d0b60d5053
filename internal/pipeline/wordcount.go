package pipeline

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"textpipe/internal/textutil"
)

// SortOrder selects the line order used when a frequency table is rendered.
type SortOrder string

const (
	// SortByCount orders by descending count, then ascending word.
	SortByCount SortOrder = "count"
	// SortByWord orders alphabetically.
	SortByWord SortOrder = "word"
	// SortNone keeps map iteration order, which is unspecified.
	SortNone SortOrder = "none"
)

// ParseSortOrder maps a configuration value to a SortOrder. Empty selects SortByCount.
func ParseSortOrder(value string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(value))) {
	case "", SortByCount:
		return SortByCount, nil
	case SortByWord:
		return SortByWord, nil
	case SortNone:
		return SortNone, nil
	default:
		return "", fmt.Errorf("unsupported sort order %q", value)
	}
}

// WordCount pairs a normalized word with its number of occurrences.
type WordCount struct {
	Word  string
	Count int
}

// WordFrequencyTable maps normalized words to occurrence counts. Keys are
// never empty; each starts with an alphabetic rune and holds only alphabetic
// runes and their combining marks. The table is read-only once built.
type WordFrequencyTable struct {
	counts map[string]int
}

// CountWords tallies every normalized word in doc.
func CountWords(doc Document) WordFrequencyTable {
	counts := make(map[string]int)
	for _, line := range doc.lines {
		for _, token := range textutil.Tokens(line) {
			word := textutil.NormalizeWord(token)
			if word == "" {
				continue
			}
			counts[word]++
		}
	}
	return WordFrequencyTable{counts: counts}
}

// Count returns the occurrences recorded for word, or zero.
func (t WordFrequencyTable) Count(word string) int {
	return t.counts[word]
}

// Len returns the number of distinct words.
func (t WordFrequencyTable) Len() int {
	return len(t.counts)
}

// Total returns the sum of all counts.
func (t WordFrequencyTable) Total() int {
	total := 0
	for _, n := range t.counts {
		total += n
	}
	return total
}

// Map returns a copy of the underlying counts.
func (t WordFrequencyTable) Map() map[string]int {
	cp := make(map[string]int, len(t.counts))
	for word, n := range t.counts {
		cp[word] = n
	}
	return cp
}

// Sorted returns every entry in the requested order.
func (t WordFrequencyTable) Sorted(order SortOrder) []WordCount {
	entries := make([]WordCount, 0, len(t.counts))
	for word, n := range t.counts {
		entries = append(entries, WordCount{Word: word, Count: n})
	}
	switch order {
	case SortNone:
	case SortByWord:
		slices.SortFunc(entries, func(a, b WordCount) int {
			return cmp.Compare(a.Word, b.Word)
		})
	default:
		slices.SortFunc(entries, compareByCount)
	}
	return entries
}

// Top returns at most n entries ordered by descending count.
func (t WordFrequencyTable) Top(n int) []WordCount {
	if n <= 0 {
		return nil
	}
	entries := t.Sorted(SortByCount)
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Lines renders the table as "word: count" lines.
func (t WordFrequencyTable) Lines(order SortOrder) []string {
	entries := t.Sorted(order)
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, entry.Word+": "+strconv.Itoa(entry.Count))
	}
	return lines
}

// MostFrequent returns the entry with the highest count. Ties go to the
// lexically smallest word. ok is false for an empty table.
func MostFrequent(t WordFrequencyTable) (WordCount, bool) {
	var best WordCount
	found := false
	for word, n := range t.counts {
		candidate := WordCount{Word: word, Count: n}
		if !found || compareByCount(candidate, best) < 0 {
			best = candidate
			found = true
		}
	}
	return best, found
}

func compareByCount(a, b WordCount) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}
	return cmp.Compare(a.Word, b.Word)
}
