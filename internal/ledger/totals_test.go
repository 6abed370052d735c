package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicegen/pkg/models"
)

func testRates() RateTable {
	return DefaultRates(decimal.RequireFromString("0.79"))
}

func TestRecordAccepted_USDConvertedToGBP(t *testing.T) {
	book := Open(filepath.Join(t.TempDir(), "ledger_totals.json"), testRates())

	converted, err := book.RecordAccepted(models.TransactionIncome, decimal.RequireFromString("100.00"), "USD")
	require.NoError(t, err)

	assert.Equal(t, "79.00", converted.StringFixed(2))
	assert.Equal(t, "79.00", book.Totals().Income.StringFixed(2))
	assert.Equal(t, "0.00", book.Totals().Expense.StringFixed(2))
}

func TestRecordAccepted_GBPAtPar(t *testing.T) {
	book := Open(filepath.Join(t.TempDir(), "ledger_totals.json"), testRates())

	converted, err := book.RecordAccepted(models.TransactionExpense, decimal.RequireFromString("350.50"), "GBP")
	require.NoError(t, err)

	assert.Equal(t, "350.50", converted.StringFixed(2))
	assert.Equal(t, "350.50", book.Totals().Expense.StringFixed(2))
	assert.Equal(t, "0.00", book.Totals().Income.StringFixed(2))
}

func TestRecordAccepted_UnknownCurrency(t *testing.T) {
	book := Open(filepath.Join(t.TempDir(), "ledger_totals.json"), testRates())

	_, err := book.RecordAccepted(models.TransactionIncome, decimal.NewFromInt(10), "EUR")

	assert.ErrorIs(t, err, ErrUnknownCurrency)
	assert.Equal(t, "0.00", book.Totals().Income.StringFixed(2))
}

func TestRecordAccepted_UnknownTransactionType(t *testing.T) {
	book := Open(filepath.Join(t.TempDir(), "ledger_totals.json"), testRates())

	_, err := book.RecordAccepted("Refund", decimal.NewFromInt(10), "GBP")

	assert.ErrorIs(t, err, ErrUnknownTransactionType)
}

func TestIncomeExceedsThreshold_AtExactlyNinetyThousand(t *testing.T) {
	book := Open(filepath.Join(t.TempDir(), "ledger_totals.json"), testRates())

	_, err := book.RecordAccepted(models.TransactionIncome, decimal.RequireFromString("89999.99"), "GBP")
	require.NoError(t, err)
	assert.False(t, book.IncomeExceedsThreshold())

	_, err = book.RecordAccepted(models.TransactionIncome, decimal.RequireFromString("0.01"), "GBP")
	require.NoError(t, err)
	assert.True(t, book.IncomeExceedsThreshold())
}

func TestThreshold_ExpensesDoNotCount(t *testing.T) {
	book := Open(filepath.Join(t.TempDir(), "ledger_totals.json"), testRates())

	_, err := book.RecordAccepted(models.TransactionExpense, decimal.NewFromInt(100000), "GBP")
	require.NoError(t, err)

	assert.False(t, book.IncomeExceedsThreshold())
}

func TestTotals_PersistAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger_totals.json")

	book := Open(path, testRates())
	_, err := book.RecordAccepted(models.TransactionIncome, decimal.NewFromInt(500), "GBP")
	require.NoError(t, err)
	_, err = book.RecordAccepted(models.TransactionExpense, decimal.NewFromInt(120), "GBP")
	require.NoError(t, err)

	reopened := Open(path, testRates())
	assert.Equal(t, "500.00", reopened.Totals().Income.StringFixed(2))
	assert.Equal(t, "120.00", reopened.Totals().Expense.StringFixed(2))
}

func TestOpen_CorruptFile_ZeroTotals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger_totals.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	book := Open(path, testRates())

	assert.Equal(t, "0.00", book.Totals().Income.StringFixed(2))
	assert.Equal(t, "0.00", book.Totals().Expense.StringFixed(2))
}

func TestConvert_UnknownCurrency(t *testing.T) {
	_, err := testRates().Convert(decimal.NewFromInt(1), "JPY")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}
