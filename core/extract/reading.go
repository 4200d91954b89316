// Package extract — reading (furigana) extraction.
package extract

import (
	"regexp"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"go.uber.org/zap"
)

// kanaRun matches one or more hiragana or katakana characters.
const kanaRun = `[ぁ-んァ-ン]+`

// ReadingExtractor finds the phonetic reading for a verb. It prefers an
// explicit parenthesized reading next to the verb in the page text and falls
// back to the IPA dictionary when the page carries none.
type ReadingExtractor struct {
	tok *tokenizer.Tokenizer // nil disables the dictionary fallback
	log *zap.Logger
}

// NewReadingExtractor creates a ReadingExtractor. A dictionary init failure
// is not fatal: readings then come only from the page text.
func NewReadingExtractor(log *zap.Logger) *ReadingExtractor {
	tok, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		log.Warn("tokenizer init failed, dictionary reading fallback disabled", zap.Error(err))
		tok = nil
	}
	return &ReadingExtractor{tok: tok, log: log}
}

// Extract returns the reading for verb found in pageText, or nil when none
// can be determined. Furigana is frequently unextractable; a nil reading is
// tolerated data, not an error.
func (r *ReadingExtractor) Extract(pageText, verb string) *string {
	escaped := regexp.QuoteMeta(verb)
	patterns := []string{
		escaped + `[（(](` + kanaRun + `)[）)]`,
		escaped + `【(` + kanaRun + `)】`,
	}
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}
		if m := re.FindStringSubmatch(pageText); m != nil {
			reading := m[1]
			return &reading
		}
	}
	return r.dictionaryReading(verb)
}

// dictionaryReading derives the reading from IPA dictionary features,
// converted to hiragana. Any unknown token aborts the fallback: a partial
// reading is worse than none.
func (r *ReadingExtractor) dictionaryReading(verb string) *string {
	if r.tok == nil {
		return nil
	}

	var b strings.Builder
	for _, token := range r.tok.Tokenize(verb) {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		features := token.Features()
		// IPA feature 7 is the reading in katakana.
		if len(features) <= 7 || features[7] == "*" {
			return nil
		}
		b.WriteString(features[7])
	}
	if b.Len() == 0 {
		return nil
	}

	reading := katakanaToHiragana(b.String())
	return &reading
}

// katakanaToHiragana shifts katakana runes into the hiragana block.
func katakanaToHiragana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'ァ' && r <= 'ヶ' {
			return r - 0x60
		}
		return r
	}, s)
}
