package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPairTitle(t *testing.T) {
	tests := []struct {
		name         string
		title        string
		intransitive string
		transitive   string
	}{
		{
			name:         "nakaguro separator with category suffix",
			title:        "開く・開ける｜自動詞・他動詞",
			intransitive: "開く",
			transitive:   "開ける",
		},
		{
			name:         "fullwidth slash separator",
			title:        "消える／消す｜自動詞・他動詞",
			intransitive: "消える",
			transitive:   "消す",
		},
		{
			name:         "ascii slash separator",
			title:        "落ちる/落とす",
			intransitive: "落ちる",
			transitive:   "落とす",
		},
		{
			name:         "ascii pipe suffix delimiter",
			title:        "止まる・止める|自動詞・他動詞",
			intransitive: "止まる",
			transitive:   "止める",
		},
		{
			name:         "surrounding whitespace trimmed",
			title:        " 開く ・ 開ける ｜自動詞",
			intransitive: "開く",
			transitive:   "開ける",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intransitive, transitive, err := SplitPairTitle(tt.title)
			require.NoError(t, err)
			assert.Equal(t, tt.intransitive, intransitive)
			assert.Equal(t, tt.transitive, transitive)
		})
	}
}

func TestSplitPairTitleNotExtractable(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{"no separator", "動詞の使い方まとめ"},
		{"three parts", "開く・開ける・開かれる"},
		{"empty left part", "・開ける"},
		{"empty right part", "開く・"},
		{"only suffix", "｜自動詞・他動詞"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := SplitPairTitle(tt.title)
			require.ErrorIs(t, err, ErrNotExtractable)
		})
	}
}

func TestPairID(t *testing.T) {
	assert.Equal(t, "開く開ける", PairID("開く", "開ける"))
	assert.Equal(t, "消える消す", PairID("消える", "消す"))

	// Whitespace, fullwidth included, never survives into the id.
	assert.Equal(t, "開く開ける", PairID("開 く", "開ける　"))
}
