// Package core defines the pipeline types and interfaces for JitaDeck.
// Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// Level is the provenance tag of a scraped category.
type Level string

// The three difficulty categories published by the source site.
const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Levels lists all categories in scrape order.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// ValidLevel reports whether s names a known level.
func ValidLevel(s string) bool {
	switch Level(s) {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// VerbForm is one half of a verb pair.
type VerbForm struct {
	Kanji    string   `json:"kanji"`
	Reading  *string  `json:"reading"`
	Examples []string `json:"examples"`
}

// ImageRef points a record at a downloaded image file.
type ImageRef struct {
	Filename    string `json:"filename"`
	OriginalURL string `json:"original_url"`
	Alt         string `json:"alt"`
}

// ImageCandidate is an image discovered during extraction but not yet
// downloaded. The driver passes candidates to the image resolver.
type ImageCandidate struct {
	URL string
	Alt string
}

// VerbPairRecord is the structured result of scraping one article.
type VerbPairRecord struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Level             Level      `json:"level"`
	Intransitive      VerbForm   `json:"intransitive"`
	Transitive        VerbForm   `json:"transitive"`
	PracticeQuestions []string   `json:"practice_questions"`
	Answers           []string   `json:"answers"`
	Images            []ImageRef `json:"images"`
	SourceURL         string     `json:"source_url"`
	Attribution       string     `json:"attribution"`
}

// Valid reports whether the record may be persisted. A record missing
// either kanji form is malformed and must never reach the store.
func (r *VerbPairRecord) Valid() bool {
	return r.ID != "" && r.Intransitive.Kanji != "" && r.Transitive.Kanji != ""
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// ImageResolver downloads an image at most once per (record, URL) pair and
// returns the stable local filename.
type ImageResolver interface {
	Resolve(ctx context.Context, recordID, imageURL string) (string, error)
}

// RecordStore persists and loads verb pair records as JSON documents.
type RecordStore interface {
	SaveRecord(rec *VerbPairRecord) (string, error)
	SaveLevel(level Level, recs []*VerbPairRecord) (string, error)
	SaveCombined(all map[Level][]*VerbPairRecord) (string, error)
	LoadRecord(path string) (*VerbPairRecord, error)
	LoadLevel(level Level) ([]*VerbPairRecord, error)
	ListRecordFiles() ([]string, error)
}
