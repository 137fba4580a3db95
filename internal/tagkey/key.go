package tagkey

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// umlautFolder maps German letters to their ASCII digraphs. This must run
// before generic accent stripping so "ä" becomes "ae" rather than "a".
var umlautFolder = strings.NewReplacer(
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"ß", "ss",
)

// separatorFolder expands grouping and joining punctuation into token
// boundaries so parenthesized and hyphenated content contributes tokens.
var separatorFolder = strings.NewReplacer(
	"(", " ",
	")", " ",
	"[", " ",
	"]", " ",
	"-", " ",
	"_", " ",
	"/", " ",
)

// stripMarks removes combining marks left over after the umlaut fold, so
// accented loanwords ("Bézier") still produce plain ASCII tokens.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Canonical derives the matching key for a tag label. The key is independent
// of casing, surrounding whitespace, separator style, and token order. It
// returns "" for empty or whitespace-only input.
func Canonical(tag string) string {
	tokens := FilterStopWords(Tokenize(Fold(tag)))
	if len(tokens) == 0 {
		return ""
	}
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// Fold lowercases and trims the label, expands separators into spaces, folds
// German umlauts to digraphs, strips remaining combining marks, and drops any
// rune that is not a lowercase ASCII letter, digit, or space.
func Fold(tag string) string {
	lowered := strings.ToLower(strings.TrimSpace(tag))
	if lowered == "" {
		return ""
	}
	expanded := umlautFolder.Replace(separatorFolder.Replace(lowered))
	if plain, _, err := transform.String(stripMarks, expanded); err == nil {
		expanded = plain
	}

	var b strings.Builder
	b.Grow(len(expanded))
	for _, r := range expanded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Tokenize splits folded text on whitespace.
func Tokenize(folded string) []string {
	return strings.Fields(folded)
}

// FilterStopWords removes German/English function words. When filtering would
// drop every token the original slice is returned unchanged, so labels made
// entirely of stop words ("und") still yield a key.
func FilterStopWords(tokens []string) []string {
	filtered := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, stop := stopWords[token]; stop {
			continue
		}
		filtered = append(filtered, token)
	}
	if len(filtered) == 0 {
		return tokens
	}
	return filtered
}
