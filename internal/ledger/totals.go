// Package ledger accumulates running income and expense totals for accepted
// documents, normalized into a single reference currency, and answers the
// VAT-registration threshold question.
//
// Totals only ever grow: accepted transactions are never edited or deleted.
// The threshold check is an advisory flag for the operator, never a gate on
// document generation.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"invoicegen/internal/logger"
	"invoicegen/pkg/models"
)

// VATRegistrationThreshold is the cumulative income level (in the reference
// currency) at which VAT registration is required.
var VATRegistrationThreshold = decimal.NewFromInt(90000)

// ErrUnknownTransactionType is returned for a transaction type other than
// Income or Expense.
var ErrUnknownTransactionType = errors.New("unknown transaction type")

// Totals holds the two accumulators, both in the reference currency.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Ledger is the process-wide income/expense accumulator, backed by a single
// JSON record on disk so totals survive between command invocations.
type Ledger struct {
	path   string
	rates  RateTable
	totals Totals
	log    zerolog.Logger
}

// Open loads the ledger totals from the given file. A missing or malformed
// file degrades to zero totals, mirroring the counter store's recovery
// semantics.
func Open(path string, rates RateTable) *Ledger {
	l := &Ledger{
		path:  path,
		rates: rates,
		log:   logger.WithComponent("ledger"),
	}
	l.totals = l.load()
	return l
}

// Totals returns the current accumulators.
func (l *Ledger) Totals() Totals {
	return l.totals
}

// RecordAccepted converts the amount into the reference currency and adds it
// to the matching accumulator, then persists the totals. Returns the
// converted amount. Persistence failure aborts the recording: the in-memory
// totals are rolled back and the caller must assume nothing was recorded.
func (l *Ledger) RecordAccepted(txType models.TransactionType, amount decimal.Decimal, currency string) (decimal.Decimal, error) {
	converted, err := l.rates.Convert(amount, currency)
	if err != nil {
		return decimal.Zero, err
	}

	previous := l.totals
	switch txType {
	case models.TransactionIncome:
		l.totals.Income = l.totals.Income.Add(converted)
	case models.TransactionExpense:
		l.totals.Expense = l.totals.Expense.Add(converted)
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownTransactionType, txType)
	}

	if err := l.save(); err != nil {
		l.totals = previous
		return decimal.Zero, err
	}

	l.log.Info().
		Str("transaction_type", string(txType)).
		Str("amount", amount.StringFixed(2)).
		Str("currency", currency).
		Str("converted", converted.StringFixed(2)).
		Str("total_income", l.totals.Income.StringFixed(2)).
		Str("total_expense", l.totals.Expense.StringFixed(2)).
		Msg("Accepted transaction recorded")

	return converted, nil
}

// IncomeExceedsThreshold reports whether cumulative income has reached the
// VAT registration threshold. True at exactly the threshold.
func (l *Ledger) IncomeExceedsThreshold() bool {
	return l.totals.Income.GreaterThanOrEqual(VATRegistrationThreshold)
}

func (l *Ledger) load() Totals {
	zero := Totals{Income: decimal.Zero, Expense: decimal.Zero}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if !os.IsNotExist(err) {
			l.log.Warn().
				Err(err).
				Str("file", l.path).
				Msg("Ledger file unreadable, totals reset to zero")
		}
		return zero
	}

	var totals Totals
	if err := json.Unmarshal(data, &totals); err != nil {
		l.log.Warn().
			Err(err).
			Str("file", l.path).
			Msg("Ledger file corrupted, totals reset to zero")
		return zero
	}
	return totals
}

func (l *Ledger) save() error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create ledger directory %s: %w", dir, err)
	}

	data, err := json.Marshal(l.totals)
	if err != nil {
		return fmt.Errorf("failed to encode ledger totals: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temporary ledger file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write ledger totals: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write ledger totals: %w", err)
	}

	if err := os.Rename(tmpName, l.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace ledger file: %w", err)
	}

	return nil
}
