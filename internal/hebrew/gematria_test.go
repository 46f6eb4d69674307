package hebrew_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yardenlev/mikra-api/internal/hebrew"
)

func TestCalculate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		word string
		want hebrew.Gematria
	}{
		{
			name: "empty string is zero",
			word: "",
			want: hebrew.Gematria{},
		},
		{
			name: "single letter",
			word: "א",
			want: hebrew.Gematria{Simple: 1, Standard: 1, Ordinal: 1},
		},
		{
			name: "two letters",
			word: "אב",
			want: hebrew.Gematria{Simple: 3, Standard: 3, Ordinal: 3},
		},
		{
			name: "chai",
			word: "חי",
			want: hebrew.Gematria{Simple: 18, Standard: 18, Ordinal: 18},
		},
		{
			name: "shalom without marks",
			word: "שלום",
			want: hebrew.Gematria{Simple: 376, Standard: 376, Ordinal: 52},
		},
		{
			name: "final mem takes base value",
			word: "ם",
			want: hebrew.Gematria{Simple: 40, Standard: 40, Ordinal: 13},
		},
		{
			name: "final tsadi takes base value",
			word: "ץ",
			want: hebrew.Gematria{Simple: 90, Standard: 90, Ordinal: 18},
		},
		{
			name: "vowel points contribute nothing",
			word: "שָׁלוֹם",
			want: hebrew.Gematria{Simple: 376, Standard: 376, Ordinal: 52},
		},
		{
			name: "latin text is zero",
			word: "hello",
			want: hebrew.Gematria{},
		},
		{
			name: "torah",
			word: "תורה",
			want: hebrew.Gematria{Simple: 611, Standard: 611, Ordinal: 53},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, hebrew.Calculate(tc.word))
		})
	}
}

func TestCalculateMatchesStrippedForm(t *testing.T) {
	t.Parallel()

	// Marks carry no value, so a vocalized word and its stripped skeleton
	// always agree.
	words := []string{"בְּרֵאשִׁית", "אֱלֹהִים", "הַשָּׁמַיִם", "וְאֵת"}
	for _, w := range words {
		assert.Equal(t, hebrew.Calculate(hebrew.StripMarks(w)), hebrew.Calculate(w), "word %s", w)
	}
}

func TestCalculateDeterministic(t *testing.T) {
	t.Parallel()

	first := hebrew.Calculate("בְּרֵאשִׁית")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, hebrew.Calculate("בְּרֵאשִׁית"))
	}
}
