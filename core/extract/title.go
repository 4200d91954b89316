// Package extract — title parsing and ID derivation.
package extract

import (
	"fmt"
	"strings"
	"unicode"
)

// pairSeparators are tried in priority order when splitting a heading into
// its two verb forms.
var pairSeparators = []string{"・", "／", "/"}

// categorySuffixDelimiters cut the trailing grammar-category suffix off a
// heading, e.g. 開く・開ける｜自動詞・他動詞.
var categorySuffixDelimiters = []string{"｜", "|"}

// SplitPairTitle parses a heading like 開く・開ける｜自動詞・他動詞 into the
// (intransitive, transitive) kanji forms. The first separator present
// decides the split; anything other than exactly two non-empty parts makes
// the article not extractable.
func SplitPairTitle(title string) (string, string, error) {
	base := title
	for _, delim := range categorySuffixDelimiters {
		if idx := strings.Index(base, delim); idx >= 0 {
			base = base[:idx]
		}
	}
	base = strings.TrimSpace(base)

	for _, sep := range pairSeparators {
		if !strings.Contains(base, sep) {
			continue
		}
		parts := strings.Split(base, sep)
		if len(parts) != 2 {
			return "", "", fmt.Errorf("%w: title %q splits into %d parts", ErrNotExtractable, title, len(parts))
		}
		intransitive := strings.TrimSpace(parts[0])
		transitive := strings.TrimSpace(parts[1])
		if intransitive == "" || transitive == "" {
			return "", "", fmt.Errorf("%w: title %q has an empty verb form", ErrNotExtractable, title)
		}
		return intransitive, transitive, nil
	}

	return "", "", fmt.Errorf("%w: no pair separator in title %q", ErrNotExtractable, title)
}

// PairID derives the stable record identifier: both kanji forms concatenated
// with no separator and all whitespace removed. This is the idempotency key
// for storage and sync.
func PairID(intransitive, transitive string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, intransitive+transitive)
}
