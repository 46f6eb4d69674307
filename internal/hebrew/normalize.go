package hebrew

import "strings"

// isCombiningMark reports whether r is a Hebrew vowel point (niqqud) or
// cantillation mark (ta'am). The ranges cover U+0591..U+05BD (accents and
// points), U+05BF..U+05C2 (rafe, paseq, shin/sin dots) and U+05C4..U+05C5,
// U+05C7 (upper/lower puncta, qamats qatan). Maqaf (U+05BE), sof pasuq
// (U+05C3) and the nun hafukha (U+05C6) are real punctuation, not marks,
// and are preserved.
func isCombiningMark(r rune) bool {
	switch {
	case r >= 0x0591 && r <= 0x05BD:
		return true
	case r >= 0x05BF && r <= 0x05C2:
		return true
	case r >= 0x05C4 && r <= 0x05C5:
		return true
	case r == 0x05C7:
		return true
	}
	return false
}

// StripMarks removes Hebrew vowel points and cantillation marks from s,
// leaving consonant letters, spacing, punctuation and any non-Hebrew text
// untouched. Input without marks is returned unchanged.
func StripMarks(s string) string {
	if !strings.ContainsFunc(s, isCombiningMark) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isCombiningMark(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ContainsHebrew reports whether s contains at least one code point in the
// Hebrew Unicode block (U+0590..U+05FF), marks included.
func ContainsHebrew(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return r >= 0x0590 && r <= 0x05FF
	})
}

// IsRTL reports whether s contains any right-to-left script (Hebrew or
// Arabic blocks). Used by callers to pick text direction for display.
func IsRTL(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return (r >= 0x0590 && r <= 0x05FF) || (r >= 0x0600 && r <= 0x06FF)
	})
}
