package hebrew

import "strings"

// ExtractUniqueWords returns the distinct Hebrew words of text in order of
// first appearance. The text is split on runs of whitespace and tokens
// containing no Hebrew code point (punctuation fragments, Latin words,
// numbers) are discarded.
//
// Uniqueness is decided on the vocalized surface form: marks are NOT
// stripped before comparison, so the same consonantal skeleton with
// different vowel points yields distinct words. Callers that want skeleton
// identity can pass the text through StripMarks first.
//
// The function is deterministic and idempotent; empty input and input with
// no Hebrew letters both yield a nil slice.
func ExtractUniqueWords(text string) []string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	var words []string
	seen := make(map[string]struct{}, len(fields))
	for _, tok := range fields {
		if !ContainsHebrew(tok) {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		words = append(words, tok)
	}
	return words
}
