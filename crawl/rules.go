// Package crawl — URL filtering rules.
// Provides helpers to recognize article links and resolve relative URLs
// while walking category pagination.
package crawl

import (
	"net/url"
	"strings"
)

// IsArticleLink reports whether href points at a verb-pair article.
// Articles live under /archives/ and end in .html; category listing pages
// also live under /archives/ but carry a "cat_" segment.
func IsArticleLink(href string) bool {
	return strings.Contains(href, "/archives/") &&
		strings.HasSuffix(href, ".html") &&
		!strings.Contains(href, "cat_")
}

// ResolveURL resolves a potentially relative href against a base URL.
// Returns "" for unparseable or non-navigational hrefs.
func ResolveURL(href string, base *url.URL) string {
	if href == "" || strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") {
		return ""
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(parsed)
	resolved.Fragment = ""
	return resolved.String()
}
