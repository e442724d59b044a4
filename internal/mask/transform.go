package mask

import "strings"

const tokenSeparator = " "

// Transform masks every banned token of input using mapping.
//
// Tokens are separated by single spaces; consecutive spaces produce empty
// tokens that survive the split and join unchanged. Matching is
// case-insensitive while the substituted token keeps the case of any
// character the mapping does not cover.
func Transform(input string, banned WordSet, mapping Mapping) string {
	if input == "" || len(banned) == 0 {
		return input
	}
	tokens := strings.Split(input, tokenSeparator)
	for i, token := range tokens {
		if token == "" || !banned.Contains(token) {
			continue
		}
		tokens[i] = mapping.Apply(token)
	}
	return strings.Join(tokens, tokenSeparator)
}

// Stats summarises how a transform touched its input.
type Stats struct {
	Tokens  int `json:"tokens"`
	Matched int `json:"matched"`
	Changed int `json:"changed"`
}

// TransformWithStats behaves like Transform and also counts matched tokens
// and tokens whose text actually changed.
func TransformWithStats(input string, banned WordSet, mapping Mapping) (string, Stats) {
	if input == "" {
		return input, Stats{}
	}
	tokens := strings.Split(input, tokenSeparator)
	stats := Stats{Tokens: len(tokens)}
	for i, token := range tokens {
		if token == "" || !banned.Contains(token) {
			continue
		}
		stats.Matched++
		masked := mapping.Apply(token)
		if masked != token {
			stats.Changed++
		}
		tokens[i] = masked
	}
	return strings.Join(tokens, tokenSeparator), stats
}
