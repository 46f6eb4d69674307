package hebrew

// Gematria holds the three numbering schemes computed for a Hebrew word.
// Simple and Standard are identical under the scheme implemented here; the
// field is kept separate so a variant standard scheme (e.g. "gadol" final
// letter values) can diverge later without a model change.
type Gematria struct {
	Simple   int `json:"simple"`
	Standard int `json:"standard"`
	Ordinal  int `json:"ordinal"`
}

// letterValues maps each Hebrew letter to its traditional numeric value.
// Final forms take the value of their base letter; the alternative scheme
// valuing them 500-900 is deliberately not used.
var letterValues = map[rune]int{
	'א': 1, 'ב': 2, 'ג': 3, 'ד': 4, 'ה': 5, 'ו': 6, 'ז': 7, 'ח': 8, 'ט': 9,
	'י': 10, 'כ': 20, 'ל': 30, 'מ': 40, 'נ': 50, 'ס': 60, 'ע': 70, 'פ': 80, 'צ': 90,
	'ק': 100, 'ר': 200, 'ש': 300, 'ת': 400,
	'ך': 20, 'ם': 40, 'ן': 50, 'ף': 80, 'ץ': 90,
}

// letterOrdinals maps each letter to its 1-based position in the 22-letter
// alphabet. Final forms share their base letter's position.
var letterOrdinals = map[rune]int{
	'א': 1, 'ב': 2, 'ג': 3, 'ד': 4, 'ה': 5, 'ו': 6, 'ז': 7, 'ח': 8, 'ט': 9,
	'י': 10, 'כ': 11, 'ל': 12, 'מ': 13, 'נ': 14, 'ס': 15, 'ע': 16, 'פ': 17, 'צ': 18,
	'ק': 19, 'ר': 20, 'ש': 21, 'ת': 22,
	'ך': 11, 'ם': 13, 'ן': 14, 'ף': 17, 'ץ': 18,
}

// Calculate computes the gematria of word under all three schemes. Vowel
// points and any non-letter runes contribute zero, so the function is total
// over arbitrary input: a string with no Hebrew letters yields the zero
// value. If the ordinal sum comes out zero it falls back to the simple sum.
func Calculate(word string) Gematria {
	var g Gematria
	for _, r := range word {
		v := letterValues[r]
		g.Simple += v
		g.Standard += v
		g.Ordinal += letterOrdinals[r]
	}
	if g.Ordinal == 0 {
		g.Ordinal = g.Simple
	}
	return g
}
