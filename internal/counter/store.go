// Package counter persists the per-category document numbering state.
//
// The entire durable state of the numbering subsystem is one small JSON
// object mapping each document category to the highest number issued so far
// (the high-water mark), e.g.:
//
//	{"Invoice": 12, "Receipt": 3}
//
// A missing or unreadable file is not an error: it degrades to a zero record
// so a fresh installation (or a corrupted file) simply starts numbering from
// scratch. Write failures, by contrast, are fatal to the operation that
// triggered them.
package counter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"invoicegen/internal/logger"
	"invoicegen/pkg/models"
)

// Record maps each document category to its high-water mark.
type Record map[models.Category]int

// NewRecord returns a record with every known category at zero.
func NewRecord() Record {
	r := make(Record, len(models.Categories))
	for _, c := range models.Categories {
		r[c] = 0
	}
	return r
}

// Get returns the high-water mark for a category, 0 if unset.
func (r Record) Get(category models.Category) int {
	return r[category]
}

// Store reads and writes the counter record at a fixed path.
type Store struct {
	path string
	log  zerolog.Logger
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		log:  logger.WithComponent("counter-store"),
	}
}

// Path returns the file backing this store.
func (s *Store) Path() string {
	return s.path
}

// Load reads the counter record from disk. A missing file yields a zero
// record. A malformed file also yields a zero record: historical numbering
// state is lost, so the event is logged, but the operation continues.
func (s *Store) Load() Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().
				Err(err).
				Str("file", s.path).
				Msg("Counter file unreadable, starting from zero")
		}
		return NewRecord()
	}

	record := NewRecord()
	if err := json.Unmarshal(data, &record); err != nil {
		s.log.Warn().
			Err(err).
			Str("file", s.path).
			Msg("Counter file corrupted, numbering state reset to zero")
		return NewRecord()
	}

	// Categories absent from the file stay at zero
	for _, c := range models.Categories {
		if _, ok := record[c]; !ok {
			record[c] = 0
		}
	}
	return record
}

// Save atomically overwrites the counter record, creating the containing
// directory if needed. The record is written to a temporary file first and
// renamed into place so a crash mid-write never leaves a half-written record.
func (s *Store) Save(record Record) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create counter directory %s: %w", dir, err)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode counter record: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".counter-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temporary counter file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write counter record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write counter record: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace counter file: %w", err)
	}

	s.log.Debug().
		Str("file", s.path).
		Interface("record", record).
		Msg("Counter record saved")

	return nil
}
