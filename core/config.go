package core

import "time"

// Config carries the process-wide settings. Every component receives the
// values it needs at construction; nothing reads globals.
type Config struct {
	// BaseURL is the scheme+host of the source site, used to resolve
	// relative links.
	BaseURL string `mapstructure:"base_url"`

	// CategoryURLs maps each level to its category listing page.
	CategoryURLs map[Level]string `mapstructure:"category_urls"`

	// DataDir receives the per-record and combined JSON files.
	DataDir string `mapstructure:"data_dir"`

	// ImagesDir receives downloaded image binaries.
	ImagesDir string `mapstructure:"images_dir"`

	// RequestDelay is slept before every page fetch. Politeness control,
	// not an artifact: it keeps the scrape strictly rate-limited.
	RequestDelay time.Duration `mapstructure:"request_delay"`

	// ImageDelay is slept before every image fetch.
	ImageDelay time.Duration `mapstructure:"image_delay"`

	// AnkiConnectURL is the local automation endpoint of the flashcard app.
	AnkiConnectURL string `mapstructure:"anki_connect_url"`

	// DeckName and ModelName identify the target deck and note type.
	DeckName  string `mapstructure:"deck_name"`
	ModelName string `mapstructure:"model_name"`
}

// DefaultConfig returns the documented defaults. The category URLs point at
// the three verb-pair archives of edewakaru.com.
func DefaultConfig() Config {
	return Config{
		BaseURL: "https://www.edewakaru.com",
		CategoryURLs: map[Level]string{
			LevelBeginner:     "https://www.edewakaru.com/archives/cat_116824.html",
			LevelIntermediate: "https://www.edewakaru.com/archives/cat_116825.html",
			LevelAdvanced:     "https://www.edewakaru.com/archives/cat_116826.html",
		},
		DataDir:        "data",
		ImagesDir:      "images",
		RequestDelay:   time.Second,
		ImageDelay:     500 * time.Millisecond,
		AnkiConnectURL: "http://localhost:8765",
		DeckName:       "Japanese::Verb Pairs",
		ModelName:      "Japanese Verb Pair",
	}
}

// Attribution is attached to every scraped record.
const Attribution = "Source: edewakaru.com (絵でわかる日本語)"
