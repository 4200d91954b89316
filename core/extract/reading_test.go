package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testReadingExtractor(t *testing.T) *ReadingExtractor {
	t.Helper()
	return NewReadingExtractor(zap.NewNop())
}

func TestExtractReadingFromPageText(t *testing.T) {
	r := testReadingExtractor(t)

	tests := []struct {
		name string
		text string
		verb string
		want string
	}{
		{
			name: "fullwidth parens",
			text: "今日は開く（あく）という動詞を勉強します",
			verb: "開く",
			want: "あく",
		},
		{
			name: "ascii parens",
			text: "開ける(あける)は他動詞です",
			verb: "開ける",
			want: "あける",
		},
		{
			name: "lenticular brackets",
			text: "消える【きえる】の使い方",
			verb: "消える",
			want: "きえる",
		},
		{
			name: "katakana reading",
			text: "開く（アク）",
			verb: "開く",
			want: "アク",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reading := r.Extract(tt.text, tt.verb)
			require.NotNil(t, reading)
			assert.Equal(t, tt.want, *reading)
		})
	}
}

func TestExtractReadingFirstMatchWins(t *testing.T) {
	r := testReadingExtractor(t)
	reading := r.Extract("開く（あく）とも開く（ひらく）とも読みます", "開く")
	require.NotNil(t, reading)
	assert.Equal(t, "あく", *reading)
}

func TestExtractReadingDictionaryFallback(t *testing.T) {
	r := testReadingExtractor(t)
	if r.tok == nil {
		t.Skip("dictionary unavailable")
	}

	// No parenthesized reading anywhere in the page text; the IPA
	// dictionary supplies it, converted to hiragana.
	reading := r.Extract("この動詞の例文はありません", "食べる")
	require.NotNil(t, reading)
	assert.Equal(t, "たべる", *reading)
}

func TestExtractReadingNilWhenUnknown(t *testing.T) {
	r := testReadingExtractor(t)
	// Not in the page text and not a dictionary word.
	assert.Nil(t, r.Extract("関係のないテキスト", "ゑゐ子word"))
}

func TestKatakanaToHiragana(t *testing.T) {
	assert.Equal(t, "たべる", katakanaToHiragana("タベル"))
	assert.Equal(t, "あく", katakanaToHiragana("アク"))
	// Non-katakana runes pass through.
	assert.Equal(t, "たべるa1", katakanaToHiragana("タベルa1"))
}
