// Package store persists verb pair records as human-readable JSON files.
// One document per record keyed by the record id, one combined document per
// level, and one grand combined document. Re-saving a record overwrites it
// in place (upsert-by-id); there is no deletion path.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/jitadeck/core"
)

// combinedSuffix marks per-level and grand combined files so record listing
// can exclude them.
const combinedSuffix = "_verb_pairs.json"

// FileStore writes JSON documents into a flat data directory.
type FileStore struct {
	dataDir string
}

// New creates a FileStore targeting dataDir, creating it if needed.
func New(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &FileStore{dataDir: dataDir}, nil
}

// SaveRecord writes one record to {id}.json and returns the path. Records
// missing a kanji form are invalid and are never persisted.
func (s *FileStore) SaveRecord(rec *core.VerbPairRecord) (string, error) {
	if !rec.Valid() {
		return "", fmt.Errorf("refusing to persist invalid record %q", rec.ID)
	}
	return s.write(rec.ID+".json", rec)
}

// SaveLevel writes one level's combined document.
func (s *FileStore) SaveLevel(level core.Level, recs []*core.VerbPairRecord) (string, error) {
	if recs == nil {
		recs = []*core.VerbPairRecord{}
	}
	return s.write(string(level)+combinedSuffix, recs)
}

// SaveCombined writes the grand combined document mapping each level to its
// records.
func (s *FileStore) SaveCombined(all map[core.Level][]*core.VerbPairRecord) (string, error) {
	return s.write("all"+combinedSuffix, all)
}

// LoadRecord reads one record document.
func (s *FileStore) LoadRecord(path string) (*core.VerbPairRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading record %s: %w", path, err)
	}
	var rec core.VerbPairRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding record %s: %w", path, err)
	}
	return &rec, nil
}

// LoadLevel reads one level's combined document.
func (s *FileStore) LoadLevel(level core.Level) ([]*core.VerbPairRecord, error) {
	path := filepath.Join(s.dataDir, string(level)+combinedSuffix)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level file %s: %w", path, err)
	}
	var recs []*core.VerbPairRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("decoding level file %s: %w", path, err)
	}
	return recs, nil
}

// ListRecordFiles returns the paths of every individual record document in
// the data directory, sorted by name, excluding the combined documents.
func (s *FileStore) ListRecordFiles() ([]string, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("listing data directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasSuffix(name, combinedSuffix) {
			continue
		}
		paths = append(paths, filepath.Join(s.dataDir, name))
	}
	return paths, nil
}

// write marshals v as indented UTF-8 JSON and writes it under name.
func (s *FileStore) write(name string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling %s: %w", name, err)
	}
	path := filepath.Join(s.dataDir, name)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
