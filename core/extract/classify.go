// Package extract — example sentence classification.
// Body lines are matched against an ordered rule list with short-circuit
// acceptance: an explicit grammar-term marker accepts at strong confidence,
// a length-bounded particle match accepts at weak confidence.
package extract

import (
	"strings"
	"unicode/utf8"
)

// Confidence grades how certain a classification is.
type Confidence int

const (
	ConfidenceNone Confidence = iota
	ConfidenceWeak
	ConfidenceStrong
)

// weakMaxRunes bounds weak-confidence matches; longer lines are almost
// always surrounding prose rather than example sentences.
const weakMaxRunes = 100

// maxExamples caps how many example sentences are kept per verb side.
const maxExamples = 3

// classifierRule is a single predicate in the rule pipeline.
type classifierRule struct {
	confidence Confidence
	matches    func(line string) bool
}

// ExampleClassifier decides whether a body line is an example sentence for
// one verb side (intransitive with が, transitive with を).
type ExampleClassifier struct {
	rules []classifierRule
}

// NewExampleClassifier builds the rule pipeline for a verb, its particle,
// and its grammar-term marker (自動詞 or 他動詞).
func NewExampleClassifier(verb, particle, marker string) *ExampleClassifier {
	base := func(line string) bool {
		return strings.Contains(line, verb) && strings.Contains(line, particle)
	}
	return &ExampleClassifier{
		rules: []classifierRule{
			{
				confidence: ConfidenceStrong,
				matches: func(line string) bool {
					return base(line) && strings.Contains(line, marker)
				},
			},
			{
				confidence: ConfidenceWeak,
				matches: func(line string) bool {
					return base(line) && utf8.RuneCountInString(line) < weakMaxRunes
				},
			},
		},
	}
}

// Classify returns the confidence of the first accepting rule, or
// ConfidenceNone when no rule matches.
func (c *ExampleClassifier) Classify(line string) Confidence {
	for _, rule := range c.rules {
		if rule.matches(line) {
			return rule.confidence
		}
	}
	return ConfidenceNone
}

// MineExamples walks the body lines in order and collects up to maxExamples
// accepted lines, earliest first.
func MineExamples(lines []string, classifier *ExampleClassifier) []string {
	examples := []string{}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if classifier.Classify(line) == ConfidenceNone {
			continue
		}
		examples = append(examples, line)
		if len(examples) == maxExamples {
			break
		}
	}
	return examples
}
