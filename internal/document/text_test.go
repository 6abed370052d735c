package document

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"invoicegen/pkg/models"
)

func sampleDocument(txType models.TransactionType) *models.Document {
	return &models.Document{
		Number:          "INV005",
		Category:        models.CategoryInvoice,
		TransactionType: txType,
		EntityName:      "Acme Ltd",
		EntityType:      "Company",
		Amount:          decimal.RequireFromString("1200.00"),
		Currency:        "GBP",
		Date:            time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC),
		PaymentMethod:   "Bank Transfer",
		Description:     "Web portal implementation for client management - DataVista System",
		Company:         models.Company{Name: "UPLOAD FOR SOFTWARE LTD"},
	}
}

func TestTextVersion_Income(t *testing.T) {
	doc := sampleDocument(models.TransactionIncome)

	got := TextVersion(doc)

	assert.Equal(t,
		"Received payment of £1200.00 on 29 August 2026 from Acme Ltd for "+
			"Web portal implementation for client management - DataVista System. "+
			"Thank you for your business. - UPLOAD FOR SOFTWARE LTD",
		got)
}

func TestTextVersion_Expense(t *testing.T) {
	doc := sampleDocument(models.TransactionExpense)

	got := TextVersion(doc)

	assert.Equal(t,
		"Paid amount of £1200.00 on 29 August 2026 to Acme Ltd for "+
			"Web portal implementation for client management - DataVista System. "+
			"Payment made by UPLOAD FOR SOFTWARE LTD.",
		got)
}

func TestTextVersion_USDSymbol(t *testing.T) {
	doc := sampleDocument(models.TransactionIncome)
	doc.Currency = "USD"

	assert.Contains(t, TextVersion(doc), "Received payment of $1200.00")
}

func TestSanitizeEntityName(t *testing.T) {
	assert.Equal(t, "Acme_Ltd", SanitizeEntityName("Acme Ltd"))
	assert.Equal(t, "Jane_Smith-Jones", SanitizeEntityName("Jane Smith-Jones"))
	assert.Equal(t, "O_Brien___Co_", SanitizeEntityName("O'Brien & Co."))
	assert.Equal(t, "plain", SanitizeEntityName("plain"))
}
