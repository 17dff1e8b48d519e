package resolver

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents builds a fresh chain per call; a Chain carries buffers and is
// not safe to share between goroutines.
func stripAccents() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Normalize canonicalizes a color description so equivalent inputs compare
// equal: lowercase, no diacritics, hyphens as spaces, single-spaced, and
// each word longer than three letters loses one trailing plural "s".
func Normalize(text string) string {
	lower := strings.ToLower(text)
	stripped, _, err := transform.String(stripAccents(), lower)
	if err != nil {
		stripped = lower
	}
	stripped = strings.ReplaceAll(stripped, "-", " ")

	tokens := strings.Fields(stripped)
	for i, tok := range tokens {
		tokens[i] = depluralize(tok)
	}
	return strings.Join(tokens, " ")
}

// depluralize drops a single trailing "s". Words ending in "ss" are kept
// whole so that normalizing twice gives the same result.
func depluralize(tok string) string {
	if len([]rune(tok)) <= 3 || !strings.HasSuffix(tok, "s") || strings.HasSuffix(tok, "ss") {
		return tok
	}
	return tok[:len(tok)-1]
}
