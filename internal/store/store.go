package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"go-career-watcher/internal/models"
)

// Store is the handle to the persisted jobs.json document. One process owns
// the file for its lifetime; the document is small enough that every save
// rewrites it wholesale.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted collection. A missing file means a first run and
// yields an empty collection; a malformed file is an error, since silently
// discarding enrichment would lose paid-for API calls.
func (s *Store) Load() (models.Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("📋 No previous %s, starting with empty collection", s.path)
			return models.Collection{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var collection models.Collection
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return collection, nil
}

// Save overwrites the document in full, indented so the file stays
// human-diffable.
func (s *Store) Save(collection models.Collection) error {
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	log.Printf("💾 Saved %d listings to %s", len(collection), s.path)
	return nil
}

// Merge folds the previous collection into the fresh crawl. Ids present in
// both keep the fresh identity fields and carry forward enrichment (and any
// detail sections the fresh record lacks); ids only in previous are dropped.
func Merge(previous, current models.Collection) models.Collection {
	prevByID := previous.ByID()

	merged := make(models.Collection, 0, len(current))
	for _, l := range current {
		prev, ok := prevByID[l.ID]
		if ok {
			if l.Recommend == nil {
				l.Recommend = prev.Recommend
			}
			if l.Analysis == nil {
				l.Analysis = prev.Analysis
			}
			if !l.HasDetail() && prev.HasDetail() {
				l.MinimumQualifications = prev.MinimumQualifications
				l.PreferredQualifications = prev.PreferredQualifications
				l.AboutTheJob = prev.AboutTheJob
				l.Responsibilities = prev.Responsibilities
			}
		}
		merged = append(merged, l)
	}
	return merged
}
