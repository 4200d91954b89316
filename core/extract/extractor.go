// Package extract implements the article extractor.
// It turns one article's HTML into a structured verb pair record by:
//  1. Splitting the heading into the intransitive/transitive kanji forms
//  2. Mining example sentences, practice questions, and answers from the
//     body text (converted to Markdown so block elements become lines)
//  3. Locating readings and trusted content images
//
// Extraction is heuristic and best-effort: an article that fails a required
// structural step returns ErrNotExtractable, never a partial record.
package extract

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/jitadeck/core"
)

// ErrNotExtractable marks an article whose required structure (heading,
// parseable verb pair) is missing. The caller skips the article and
// continues the batch.
var ErrNotExtractable = errors.New("article not extractable")

// titleSelectors are tried in priority order to locate the article heading.
var titleSelectors = []string{
	"h2.article-title a", "h1.article-title", ".article-title",
	"h2 a", "h1",
}

// contentSelector locates the main article body.
const contentSelector = ".article-body, .article-content, .entry-content"

// trustedImageHosts are the image CDNs the source site serves content
// images from. Anything else (trackers, ads, emoji) is ignored.
var trustedImageHosts = []string{"resize.blogsys.jp", "livedoor.blogimg.jp"}

// maxImages caps how many body images are considered per article.
const maxImages = 5

const (
	intransitiveParticle = "が"
	transitiveParticle   = "を"
	intransitiveMarker   = "自動詞"
	transitiveMarker     = "他動詞"
)

// Extractor parses article HTML into verb pair records.
type Extractor struct {
	readings *ReadingExtractor
	log      *zap.Logger
}

// New creates an Extractor.
func New(log *zap.Logger) *Extractor {
	return &Extractor{
		readings: NewReadingExtractor(log),
		log:      log,
	}
}

// Extract parses one article. It performs no I/O: discovered images are
// returned as candidates for the driver to resolve.
func (e *Extractor) Extract(html string, level core.Level, sourceURL string) (*core.VerbPairRecord, []core.ImageCandidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing article HTML: %w", err)
	}

	title := findTitle(doc)
	if title == "" {
		return nil, nil, fmt.Errorf("%w: no title element", ErrNotExtractable)
	}

	intransitive, transitive, err := SplitPairTitle(title)
	if err != nil {
		return nil, nil, err
	}
	id := PairID(intransitive, transitive)

	body := doc.Find(contentSelector).First()
	if body.Length() == 0 {
		body = doc.Selection
	}
	lines := bodyLines(body, e.log)
	bodyText := strings.Join(lines, "\n")
	pageText := doc.Text()

	intransitiveClassifier := NewExampleClassifier(intransitive, intransitiveParticle, intransitiveMarker)
	transitiveClassifier := NewExampleClassifier(transitive, transitiveParticle, transitiveMarker)

	record := &core.VerbPairRecord{
		ID:    id,
		Title: title,
		Level: level,
		Intransitive: core.VerbForm{
			Kanji:    intransitive,
			Reading:  e.readings.Extract(pageText, intransitive),
			Examples: MineExamples(lines, intransitiveClassifier),
		},
		Transitive: core.VerbForm{
			Kanji:    transitive,
			Reading:  e.readings.Extract(pageText, transitive),
			Examples: MineExamples(lines, transitiveClassifier),
		},
		PracticeQuestions: MineQuestions(bodyText),
		Answers:           MineAnswers(bodyText),
		Images:            []core.ImageRef{},
		SourceURL:         sourceURL,
		Attribution:       core.Attribution,
	}

	return record, discoverImages(body), nil
}

// findTitle returns the first non-empty heading text in selector priority
// order.
func findTitle(doc *goquery.Document) string {
	for _, selector := range titleSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if title := strings.TrimSpace(sel.Text()); title != "" {
			return title
		}
	}
	return ""
}

// bodyLines converts the body HTML to Markdown and splits it into trimmed
// lines. The Markdown detour matters: block elements become separate lines,
// which the line-oriented miners depend on. When conversion fails the plain
// text of the body is used as-is.
func bodyLines(body *goquery.Selection, log *zap.Logger) []string {
	text := ""
	if html, err := goquery.OuterHtml(body); err == nil {
		if markdown, err := htmltomarkdown.ConvertString(html); err == nil {
			text = markdown
		} else {
			log.Debug("markdown conversion failed, using raw text", zap.Error(err))
		}
	}
	if text == "" {
		text = body.Text()
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// discoverImages collects the trusted content images among the first
// maxImages <img> elements of the body, in document order.
func discoverImages(body *goquery.Selection) []core.ImageCandidate {
	var candidates []core.ImageCandidate
	body.Find("img").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= maxImages {
			return false
		}
		src, _ := s.Attr("src")
		if src == "" || !trustedImageURL(src) {
			return true
		}
		alt, _ := s.Attr("alt")
		candidates = append(candidates, core.ImageCandidate{URL: src, Alt: alt})
		return true
	})
	return candidates
}

// trustedImageURL reports whether rawURL is hosted on one of the known
// content image domains.
func trustedImageURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	for _, host := range trustedImageHosts {
		if parsed.Host == host || strings.HasSuffix(parsed.Host, "."+host) {
			return true
		}
	}
	return false
}
