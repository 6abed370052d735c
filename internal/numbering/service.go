// Package numbering assigns sequential document numbers per category and
// supports manual and forced number selection.
//
// Each category (Invoice, Receipt) has an independent high-water mark: the
// highest number ever issued or administratively set. A number "exists" iff
// it is at or below the mark; the number space below the mark is treated as
// fully consumed, with no tracking of gaps. Normal allocation increments the
// mark; a forced reuse issues a number at or below the mark without touching
// it.
package numbering

import (
	"fmt"

	"github.com/rs/zerolog"

	"invoicegen/internal/counter"
	"invoicegen/internal/logger"
	"invoicegen/pkg/models"
)

// DocumentNumber is an allocated number for one category, carrying both the
// raw integer and its display form.
type DocumentNumber struct {
	Category  models.Category
	Value     int
	Formatted string
}

// Service wraps the counter store with number allocation operations.
type Service struct {
	store *counter.Store
	log   zerolog.Logger
}

// NewService creates a numbering service on top of the given counter store.
func NewService(store *counter.Store) *Service {
	return &Service{
		store: store,
		log:   logger.WithComponent("numbering"),
	}
}

// Format renders a document number in its display form: the category prefix
// followed by the number zero-padded to three digits, e.g. "INV005", "REC123".
// Every user-facing rendering of a number must go through Format so prefixes
// stay consistent across the allocate, force and display paths.
func Format(number int, category models.Category) string {
	return fmt.Sprintf("%s%03d", category.Prefix(), number)
}

// Peek returns the current high-water mark for a category without mutating
// anything. Returns 0 when no record exists.
func (s *Service) Peek(category models.Category) int {
	return s.store.Load().Get(category)
}

// Exists reports whether a number has already been consumed for a category.
// This is a high-water-mark test, not set membership: every number up to the
// current mark is reported as existing, including numbers whose document was
// never actually produced.
func (s *Service) Exists(number int, category models.Category) bool {
	return number <= s.Peek(category)
}

// AllocateNext issues the next number in sequence for a category: it raises
// the high-water mark by one, persists it, and returns the new number. If the
// record cannot be persisted no allocation takes place.
func (s *Service) AllocateNext(category models.Category) (DocumentNumber, error) {
	record := s.store.Load()
	next := record.Get(category) + 1
	record[category] = next

	if err := s.store.Save(record); err != nil {
		return DocumentNumber{}, newAllocationError("AllocateNext", string(category), fmt.Errorf("%w: %v", ErrPersistence, err))
	}

	s.log.Info().
		Str("category", string(category)).
		Int("number", next).
		Msg("Allocated next document number")

	return DocumentNumber{
		Category:  category,
		Value:     next,
		Formatted: Format(next, category),
	}, nil
}

// SetExact advances the stored high-water mark to an explicit number.
//
// Without force, a number at or below the mark is rejected (returns false, no
// mutation): that number space is already consumed. A number above the mark
// raises the mark to it.
//
// With force, the call always succeeds. The mark is still raised when the
// number is above it; when the number is at or below the mark the record is
// left untouched — a forced reuse never lowers or re-raises the mark.
func (s *Service) SetExact(number int, category models.Category, force bool) (bool, error) {
	record := s.store.Load()
	mark := record.Get(category)

	if !force && number <= mark {
		s.log.Debug().
			Str("category", string(category)).
			Int("number", number).
			Int("mark", mark).
			Msg("Rejected existing document number")
		return false, nil
	}

	if number > mark {
		record[category] = number
		if err := s.store.Save(record); err != nil {
			return false, newAllocationError("SetExact", string(category), fmt.Errorf("%w: %v", ErrPersistence, err))
		}
		s.log.Info().
			Str("category", string(category)).
			Int("number", number).
			Int("previous_mark", mark).
			Msg("High-water mark raised to explicit number")
		return true, nil
	}

	// Forced reuse of a consumed number: nothing to persist
	s.log.Warn().
		Str("category", string(category)).
		Int("number", number).
		Int("mark", mark).
		Msg("Forced reuse of existing document number")
	return true, nil
}

// Reset directly overwrites the high-water mark for a category. No existence
// checks are performed; this is an out-of-band administrative correction,
// typically called with N-1 so the next allocation yields N.
func (s *Service) Reset(category models.Category, value int) error {
	record := s.store.Load()
	previous := record.Get(category)
	record[category] = value

	if err := s.store.Save(record); err != nil {
		return newAllocationError("Reset", string(category), fmt.Errorf("%w: %v", ErrPersistence, err))
	}

	s.log.Info().
		Str("category", string(category)).
		Int("previous_mark", previous).
		Int("new_mark", value).
		Msg("Counter administratively reset")

	return nil
}
