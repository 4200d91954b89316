// Package crawl — ordered URL set.
// Preserves first-discovery order while deduplicating, and doubles as the
// page-revisit guard during pagination.
package crawl

// URLSet is an insertion-ordered set of URLs.
type URLSet struct {
	items []string
	seen  map[string]bool
}

// NewURLSet creates an empty URLSet.
func NewURLSet() *URLSet {
	return &URLSet{seen: make(map[string]bool)}
}

// Add inserts a URL if it hasn't been seen before and reports whether the
// URL was new.
func (s *URLSet) Add(url string) bool {
	if s.seen[url] {
		return false
	}
	s.seen[url] = true
	s.items = append(s.items, url)
	return true
}

// Len returns the number of unique URLs seen.
func (s *URLSet) Len() int {
	return len(s.items)
}

// All returns all URLs in first-discovery order.
func (s *URLSet) All() []string {
	return s.items
}
