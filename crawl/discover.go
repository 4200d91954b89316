// Package crawl provides article URL discovery for a category listing.
// It walks the category's pagination, collecting article links page by page,
// keeping crawling logic separate from the extraction pipeline.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/jitadeck/core"
)

// articleLinkSelector matches the anchors that carry article links on a
// category page.
const articleLinkSelector = ".article-title a, h2.article-title a, .article-body a"

// Paginator walks category pagination and yields article URLs.
type Paginator struct {
	fetcher core.Fetcher
	log     *zap.Logger
}

// NewPaginator creates a Paginator using the given fetcher.
func NewPaginator(fetcher core.Fetcher, log *zap.Logger) *Paginator {
	return &Paginator{fetcher: fetcher, log: log}
}

// Discover returns the ordered, de-duplicated article URLs reachable from
// categoryURL by following "next page" links until none remain.
//
// Failures are a best-effort degradation, never an error: an unfetchable or
// unparseable page truncates the sequence at that point and the caller
// receives a shorter, valid list.
func (p *Paginator) Discover(ctx context.Context, categoryURL string) []string {
	articles := NewURLSet()
	visited := NewURLSet()

	current := categoryURL
	for current != "" {
		if !visited.Add(current) {
			// Revisit guard: malformed pagination can loop back to a page
			// we already walked.
			p.log.Warn("pagination revisited a page, stopping", zap.String("url", current))
			break
		}

		fmt.Printf("  Fetching category page: %s\n", current)
		result, err := p.fetcher.Fetch(ctx, current)
		if err != nil {
			p.log.Warn("category page fetch failed, truncating pagination",
				zap.String("url", current), zap.Error(err))
			break
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(result.HTML))
		if err != nil {
			p.log.Warn("category page parse failed, truncating pagination",
				zap.String("url", current), zap.Error(err))
			break
		}

		base, err := url.Parse(current)
		if err != nil {
			break
		}

		collectArticleLinks(doc, base, articles)
		current = nextPageURL(doc, base)
	}

	return articles.All()
}

// collectArticleLinks appends every article link on the page to the set,
// preserving first-discovery order.
func collectArticleLinks(doc *goquery.Document, base *url.URL, set *URLSet) {
	doc.Find(articleLinkSelector).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || !IsArticleLink(href) {
			return
		}
		if resolved := ResolveURL(href, base); resolved != "" {
			set.Add(resolved)
		}
	})
}

// nextPageURL locates the next pagination page, trying in priority order:
// an explicit rel="next" link, a pager-next container, a 次のページ text
// link, and finally numbered pagination (follow the link labelled one past
// the entry marked "current").
func nextPageURL(doc *goquery.Document, base *url.URL) string {
	if href, ok := doc.Find(`a[rel="next"]`).First().Attr("href"); ok {
		return ResolveURL(href, base)
	}
	if href, ok := doc.Find(".pager-next a").First().Attr("href"); ok {
		return ResolveURL(href, base)
	}

	var textNext string
	doc.Find("a").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(s.Text(), "次のページ") {
			textNext, _ = s.Attr("href")
			return false
		}
		return true
	})
	if textNext != "" {
		return ResolveURL(textNext, base)
	}

	return numberedNextURL(doc, base)
}

// numberedNextURL implements the numbered-pagination fallback. The "current"
// marker may sit on the anchor itself or on its parent element; that parent
// heuristic is best-effort, and when no current page resolves the walk ends.
func numberedNextURL(doc *goquery.Document, base *url.URL) string {
	pager := doc.Find(".pager a, .pagination a")

	currentPage := 0
	pager.Each(func(_ int, s *goquery.Selection) {
		if !s.HasClass("current") && !s.Parent().HasClass("current") {
			return
		}
		if n, err := strconv.Atoi(strings.TrimSpace(s.Text())); err == nil {
			currentPage = n
		}
	})
	if currentPage == 0 {
		return ""
	}

	var next string
	pager.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		n, err := strconv.Atoi(strings.TrimSpace(s.Text()))
		if err != nil || n != currentPage+1 {
			return true
		}
		next, _ = s.Attr("href")
		return false
	})
	if next == "" {
		return ""
	}
	return ResolveURL(next, base)
}
