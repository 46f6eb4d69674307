package hebrew_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yardenlev/mikra-api/internal/hebrew"
)

func TestStripMarks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "no marks returned unchanged",
			input: "שלום",
			want:  "שלום",
		},
		{
			name:  "niqqud removed",
			input: "שָׁלוֹם",
			want:  "שלום",
		},
		{
			name:  "full verse keeps spaces",
			input: "בְּרֵאשִׁית בָּרָא אֱלֹהִים",
			want:  "בראשית ברא אלהים",
		},
		{
			name:  "maqaf preserved",
			input: "עַל־פְּנֵי",
			want:  "על־פני",
		},
		{
			name:  "sof pasuq preserved",
			input: "הָאָרֶץ׃",
			want:  "הארץ׃",
		},
		{
			name:  "latin text untouched",
			input: "hello world",
			want:  "hello world",
		},
		{
			name:  "mixed hebrew and latin",
			input: "שָׁלוֹם means peace",
			want:  "שלום means peace",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, hebrew.StripMarks(tc.input))
		})
	}
}

func TestStripMarksIdempotent(t *testing.T) {
	t.Parallel()

	input := "וַיֹּאמֶר אֱלֹהִים יְהִי אוֹר"
	once := hebrew.StripMarks(input)
	assert.Equal(t, once, hebrew.StripMarks(once))
}

func TestContainsHebrew(t *testing.T) {
	t.Parallel()

	assert.True(t, hebrew.ContainsHebrew("שלום"))
	assert.True(t, hebrew.ContainsHebrew("x שׁ y"))
	assert.False(t, hebrew.ContainsHebrew("hello"))
	assert.False(t, hebrew.ContainsHebrew(""))
	assert.False(t, hebrew.ContainsHebrew("123 !?"))
}

func TestIsRTL(t *testing.T) {
	t.Parallel()

	assert.True(t, hebrew.IsRTL("שלום"))
	assert.True(t, hebrew.IsRTL("سلام"))
	assert.False(t, hebrew.IsRTL("peace"))
	assert.False(t, hebrew.IsRTL(""))
}
