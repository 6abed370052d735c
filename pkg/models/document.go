package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category identifies the kind of document being issued. Numbering sequences
// are independent per category.
type Category string

const (
	CategoryInvoice Category = "Invoice"
	CategoryReceipt Category = "Receipt"
)

// Categories lists every supported document category.
var Categories = []Category{CategoryInvoice, CategoryReceipt}

// Prefix returns the display prefix used when formatting document numbers.
func (c Category) Prefix() string {
	if c == CategoryReceipt {
		return "REC"
	}
	return "INV"
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c == CategoryInvoice || c == CategoryReceipt
}

// TransactionType describes the direction of money for a document.
type TransactionType string

const (
	TransactionIncome  TransactionType = "Income"
	TransactionExpense TransactionType = "Expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Company holds the issuing company's identity block printed on every document.
type Company struct {
	Name    string
	Address string
	Email   string
	Phone   string
	Website string
	Number  string // Companies House registration number
	VAT     string // VAT registration number, empty when not registered
}

// Document is a fully specified invoice or receipt ready for assembly.
type Document struct {
	// Core identifiers
	ID       string // Unique document identifier
	Number   string // Formatted document number (e.g. "INV005")
	Category Category

	// Transaction
	TransactionType TransactionType
	EntityName      string // Person or entity on the other side of the transaction
	EntityType      string // "Individual", "Company" or "Platform"
	Amount          decimal.Decimal
	Currency        string // Currency code (GBP or USD)
	Date            time.Time
	PaymentMethod   string

	// Content
	Description string // One-line description of the goods/services
	Notes       string // Optional free-form notes

	// Issuer
	Company Company

	CreatedAt time.Time
}

// CurrencySymbol returns the display symbol for the document's currency.
func (d *Document) CurrencySymbol() string {
	if d.Currency == "USD" {
		return "$"
	}
	return "£"
}
