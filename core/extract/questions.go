// Package extract — practice question and answer mining.
// The source site marks list items with circled ordinal glyphs (①②…⑮);
// questions and answers are runs of text between consecutive glyphs.
package extract

import (
	"strings"
	"unicode/utf8"
)

// circledGlyphs are the ordinal list markers used by the source site.
var circledGlyphs = []rune("①②③④⑤⑥⑦⑧⑨⑩⑪⑫⑬⑭⑮")

// answerMarker introduces the answer block of a practice section.
const answerMarker = "【答え】"

const (
	maxQuestions = 10
	// Runs at or below this rune count are stray markers, not questions.
	minQuestionRunes = 5
)

func isCircledGlyph(r rune) bool {
	for _, g := range circledGlyphs {
		if r == g {
			return true
		}
	}
	return false
}

// glyphRuns returns every run of text starting at an occurrence of glyph and
// ending before the next circled glyph of any kind or a newline. The glyph
// itself is included in the run.
func glyphRuns(text string, glyph rune) []string {
	runes := []rune(text)
	var runs []string
	for i := 0; i < len(runes); i++ {
		if runes[i] != glyph {
			continue
		}
		j := i + 1
		for j < len(runes) && runes[j] != '\n' && !isCircledGlyph(runes[j]) {
			j++
		}
		if j > i+1 {
			runs = append(runs, string(runes[i:j]))
		}
		i = j - 1
	}
	return runs
}

// repairBrackets closes an opening 【 whose matching 】 was cut off by the
// next-glyph boundary.
func repairBrackets(s string) string {
	if strings.Contains(s, "【") && !strings.Contains(s, "】") {
		return s + "】"
	}
	return s
}

// MineQuestions extracts up to maxQuestions practice questions from the body
// text, in glyph order. Each question keeps its leading glyph.
func MineQuestions(text string) []string {
	questions := []string{}
	for _, glyph := range circledGlyphs {
		for _, run := range glyphRuns(text, glyph) {
			run = repairBrackets(strings.TrimSpace(run))
			if utf8.RuneCountInString(run) <= minQuestionRunes {
				continue
			}
			questions = append(questions, run)
			if len(questions) == maxQuestions {
				return questions
			}
		}
	}
	return questions
}

// MineAnswers extracts the answer list from the block introduced by 【答え】,
// running until the next bracketed marker or end of text. Within the block,
// the first run per glyph (in glyph order) becomes one answer, without its
// glyph. The list may be shorter than the question list; no alignment is
// enforced.
func MineAnswers(text string) []string {
	idx := strings.Index(text, answerMarker)
	if idx < 0 {
		return []string{}
	}
	block := text[idx+len(answerMarker):]
	if end := strings.Index(block, "【"); end >= 0 {
		block = block[:end]
	}

	answers := []string{}
	for _, glyph := range circledGlyphs {
		runs := glyphRuns(block, glyph)
		if len(runs) == 0 {
			continue
		}
		answer := strings.TrimSpace(strings.TrimPrefix(runs[0], string(glyph)))
		if answer != "" {
			answers = append(answers, answer)
		}
	}
	return answers
}
