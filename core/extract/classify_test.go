package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExampleClassifier(t *testing.T) {
	c := NewExampleClassifier("開く", "が", "自動詞")

	tests := []struct {
		name string
		line string
		want Confidence
	}{
		{
			name: "marker line is strong",
			line: "自動詞：ドアが開く",
			want: ConfidenceStrong,
		},
		{
			name: "short particle match is weak",
			line: "ドアが開く。",
			want: ConfidenceWeak,
		},
		{
			name: "long marker line is still strong",
			line: "自動詞の例：ドアが開く" + strings.Repeat("あ", 200),
			want: ConfidenceStrong,
		},
		{
			name: "long line without marker is rejected",
			line: "ドアが開く" + strings.Repeat("あ", 200),
			want: ConfidenceNone,
		},
		{
			name: "verb without particle is rejected",
			line: "開くという動詞",
			want: ConfidenceNone,
		},
		{
			name: "particle without verb is rejected",
			line: "窓が閉まる",
			want: ConfidenceNone,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.line))
		})
	}
}

func TestMineExamples(t *testing.T) {
	c := NewExampleClassifier("開く", "が", "自動詞")

	lines := []string{
		"このページでは自動詞と他動詞を勉強します",
		"ドアが開く。",
		"",
		"窓が開く。",
		"店が開く。",
		"目が開く。",
	}

	examples := MineExamples(lines, c)
	// Earliest three only.
	assert.Equal(t, []string{"ドアが開く。", "窓が開く。", "店が開く。"}, examples)
}

func TestMineExamplesEmpty(t *testing.T) {
	c := NewExampleClassifier("開く", "が", "自動詞")
	assert.Empty(t, MineExamples([]string{"関係のない文です"}, c))
	assert.NotNil(t, MineExamples(nil, c))
}
