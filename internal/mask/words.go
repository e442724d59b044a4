package mask

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WordSet is a lowercase membership set of banned words.
type WordSet map[string]struct{}

// NewWordSet builds a set from words, folding each entry to lowercase.
// Empty entries are ignored.
func NewWordSet(words []string) WordSet {
	set := make(WordSet, len(words))
	for _, w := range words {
		if key := NormalizeWord(w); key != "" {
			set[key] = struct{}{}
		}
	}
	return set
}

// Contains reports whether the lowercase form of word is in the set.
func (s WordSet) Contains(word string) bool {
	if len(s) == 0 {
		return false
	}
	_, ok := s[NormalizeWord(word)]
	return ok
}

// NormalizeWord returns the comparison key for a banned word.
func NormalizeWord(word string) string {
	return lowerString(word)
}

// ParseWordList splits a comma separated list of words, trims each entry and
// drops empties. Order is preserved; duplicates are left to the caller.
func ParseWordList(list string) []string {
	parts := strings.Split(list, pairSeparator)
	words := make([]string, 0, len(parts))
	for _, part := range parts {
		if word := strings.TrimSpace(part); word != "" {
			words = append(words, word)
		}
	}
	return words
}

// Dedupe lowercases words and removes empties and case-insensitive
// duplicates, keeping the first occurrence.
func Dedupe(words []string) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		key := NormalizeWord(w)
		if key == "" {
			continue
		}
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

// Casers carry per-call state, so a fresh one is built for each string.
func lowerString(s string) string {
	if s == "" {
		return s
	}
	return cases.Lower(language.Und).String(s)
}

func upperString(s string) string {
	if s == "" {
		return s
	}
	return cases.Upper(language.Und).String(s)
}
