package mask

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	pairSeparator  = ","
	valueSeparator = ":"
)

// Mapping replaces single characters with arbitrary strings.
type Mapping map[rune]string

// Pair is one source letter and its replacement, used for display.
type Pair struct {
	Letter      string `json:"letter"`
	Replacement string `json:"replacement"`
}

// ParseMapping parses a "letter:replacement,letter:replacement" spec.
//
// Each pair is trimmed and split on its first colon. Pairs missing either
// side are skipped. Only the first character of the letter is used, and both
// its lowercase and uppercase forms are mapped. Later pairs win.
func ParseMapping(spec string) Mapping {
	mapping := make(Mapping)
	for _, raw := range strings.Split(spec, pairSeparator) {
		pair := strings.TrimSpace(raw)
		letter, replacement, ok := strings.Cut(pair, valueSeparator)
		if !ok || letter == "" || replacement == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(letter)
		if r == utf8.RuneError && size <= 1 {
			continue
		}
		mapping.set(r, replacement)
	}
	return mapping
}

func (m Mapping) set(r rune, replacement string) {
	m[r] = replacement
	if lr, ok := singleRune(lowerString(string(r))); ok {
		m[lr] = replacement
	}
	if ur, ok := singleRune(upperString(string(r))); ok {
		m[ur] = replacement
	}
}

// Pairs returns the mapping sorted by letter. Upper and lower forms of the
// same letter are listed separately.
func (m Mapping) Pairs() []Pair {
	pairs := make([]Pair, 0, len(m))
	for r, replacement := range m {
		pairs = append(pairs, Pair{Letter: string(r), Replacement: replacement})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Letter < pairs[j].Letter
	})
	return pairs
}

// Apply substitutes every mapped character of word.
func (m Mapping) Apply(word string) string {
	if len(m) == 0 || word == "" {
		return word
	}
	var b strings.Builder
	b.Grow(len(word))
	for i := 0; i < len(word); {
		r, size := utf8.DecodeRuneInString(word[i:])
		if r == utf8.RuneError && size <= 1 {
			b.WriteByte(word[i])
			i++
			continue
		}
		if replacement, ok := m[r]; ok {
			b.WriteString(replacement)
		} else {
			b.WriteString(word[i : i+size])
		}
		i += size
	}
	return b.String()
}

func singleRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if (r == utf8.RuneError && size <= 1) || size != len(s) {
		return 0, false
	}
	return r, true
}
