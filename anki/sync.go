// Package anki — record upsert logic.
// Notes are keyed by the VerbPairID field: repeated syncs of the same
// record converge on one note.
package anki

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/gaurav-prasanna/jitadeck/core"
)

// maxFieldItems caps how many questions/answers land on a card.
const maxFieldItems = 5

// Syncer upserts verb pair records into an Anki deck.
type Syncer struct {
	client    *Client
	deck      string
	model     string
	imagesDir string
	log       *zap.Logger
}

// NewSyncer creates a Syncer targeting deck/model, reading image binaries
// from imagesDir.
func NewSyncer(client *Client, deck, model, imagesDir string, log *zap.Logger) *Syncer {
	return &Syncer{client: client, deck: deck, model: model, imagesDir: imagesDir, log: log}
}

// CheckConnection verifies the automation API is reachable. Failing here
// aborts the whole sync run; it is the only systemic failure.
func (s *Syncer) CheckConnection(ctx context.Context) error {
	version, err := s.client.Version(ctx)
	if err != nil {
		return fmt.Errorf("cannot connect to Anki (is Anki running with the AnkiConnect add-on installed?): %w", err)
	}
	fmt.Printf("Connected to AnkiConnect version %d\n", version)
	return nil
}

// EnsureDeck creates the target deck when missing.
func (s *Syncer) EnsureDeck(ctx context.Context) error {
	decks, err := s.client.DeckNames(ctx)
	if err != nil {
		return err
	}
	for _, name := range decks {
		if name == s.deck {
			fmt.Printf("Deck exists: %s\n", s.deck)
			return nil
		}
	}
	if err := s.client.CreateDeck(ctx, s.deck); err != nil {
		return err
	}
	fmt.Printf("Created deck: %s\n", s.deck)
	return nil
}

// EnsureModel creates the verb pair note type when missing.
func (s *Syncer) EnsureModel(ctx context.Context) error {
	models, err := s.client.ModelNames(ctx)
	if err != nil {
		return err
	}
	for _, name := range models {
		if name == s.model {
			fmt.Printf("Model exists: %s\n", s.model)
			return nil
		}
	}
	if err := s.client.CreateModel(ctx, s.model, NoteFieldNames, noteCSS, noteTemplates); err != nil {
		return err
	}
	fmt.Printf("Created model: %s\n", s.model)
	return nil
}

// Upsert adds the record as a new note or updates the existing one, keyed
// by VerbPairID. Returns true when a note was created.
func (s *Syncer) Upsert(ctx context.Context, rec *core.VerbPairRecord) (bool, error) {
	query := fmt.Sprintf(`"deck:%s" "VerbPairID:%s"`, s.deck, rec.ID)
	existing, err := s.client.FindNotes(ctx, query)
	if err != nil {
		return false, fmt.Errorf("finding note %s: %w", rec.ID, err)
	}

	fields := s.noteFields(ctx, rec)

	if len(existing) > 0 {
		if err := s.client.UpdateNoteFields(ctx, existing[0], fields); err != nil {
			return false, fmt.Errorf("updating note %s: %w", rec.ID, err)
		}
		return false, nil
	}

	note := Note{
		DeckName:  s.deck,
		ModelName: s.model,
		Fields:    fields,
		Options:   NoteOptions{AllowDuplicate: false},
		Tags:      []string{"level:" + string(rec.Level), "verb-pair", "edewakaru"},
	}
	if _, err := s.client.AddNote(ctx, note); err != nil {
		return false, fmt.Errorf("adding note %s: %w", rec.ID, err)
	}
	return true, nil
}

// noteFields maps a record onto the note type's named fields.
func (s *Syncer) noteFields(ctx context.Context, rec *core.VerbPairRecord) map[string]string {
	return map[string]string{
		"VerbPairID":          rec.ID,
		"IntransitiveKanji":   rec.Intransitive.Kanji,
		"IntransitiveReading": readingOrEmpty(rec.Intransitive.Reading),
		"TransitiveKanji":     rec.Transitive.Kanji,
		"TransitiveReading":   readingOrEmpty(rec.Transitive.Reading),
		"Level":               string(rec.Level),
		"Image":               s.storeFirstImage(ctx, rec),
		"PracticeQuestions":   FormatPracticeQuestions(rec.PracticeQuestions),
		"Answers":             FormatAnswers(rec.Answers),
		"SourceURL":           rec.SourceURL,
		"Attribution":         rec.Attribution,
	}
}

// storeFirstImage uploads the record's first image to Anki's media store
// and returns the embed markup, or "" when the record has no usable image.
// Image trouble never fails the note.
func (s *Syncer) storeFirstImage(ctx context.Context, rec *core.VerbPairRecord) string {
	if len(rec.Images) == 0 {
		return ""
	}
	filename := rec.Images[0].Filename

	data, err := os.ReadFile(filepath.Join(s.imagesDir, filename))
	if err != nil {
		s.log.Warn("image file unreadable, syncing note without image",
			zap.String("id", rec.ID), zap.Error(err))
		return ""
	}

	stored, err := s.client.StoreMediaFile(ctx, filename, data)
	if err != nil {
		s.log.Warn("media store failed, syncing note without image",
			zap.String("id", rec.ID), zap.Error(err))
		return ""
	}
	return fmt.Sprintf(`<img src="%s">`, stored)
}

// FormatPracticeQuestions renders the question list for the card. Questions
// carrying choice brackets are preferred; without any, the first few raw
// questions are shown.
func FormatPracticeQuestions(questions []string) string {
	var filtered []string
	for _, q := range questions {
		if strings.Contains(q, "［") || strings.Contains(q, "【") {
			filtered = append(filtered, q)
		}
	}
	if len(filtered) == 0 {
		filtered = questions
	}
	if len(filtered) > maxFieldItems {
		filtered = filtered[:maxFieldItems]
	}
	return strings.Join(filtered, "<br>")
}

// FormatAnswers renders the answer list for the card.
func FormatAnswers(answers []string) string {
	if len(answers) > maxFieldItems {
		answers = answers[:maxFieldItems]
	}
	return strings.Join(answers, "<br>")
}

func readingOrEmpty(reading *string) string {
	if reading == nil {
		return ""
	}
	return *reading
}
