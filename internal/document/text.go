package document

import (
	"fmt"
	"strings"

	"invoicegen/pkg/models"
)

// TextVersion renders the short text form of a document, suitable for
// pasting into a message to the counterparty.
func TextVersion(doc *models.Document) string {
	dateStr := doc.Date.Format("02 January 2006")
	amountStr := doc.CurrencySymbol() + doc.Amount.StringFixed(2)

	if doc.TransactionType == models.TransactionIncome {
		return fmt.Sprintf("Received payment of %s on %s from %s for %s. Thank you for your business. - %s",
			amountStr, dateStr, doc.EntityName, doc.Description, doc.Company.Name)
	}
	return fmt.Sprintf("Paid amount of %s on %s to %s for %s. Payment made by %s.",
		amountStr, dateStr, doc.EntityName, doc.Description, doc.Company.Name)
}

// SanitizeEntityName makes an entity name safe for use in a filename:
// alphanumerics, underscores and hyphens survive, everything else becomes an
// underscore.
func SanitizeEntityName(name string) string {
	var b strings.Builder
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '-':
			b.WriteRune(c)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
