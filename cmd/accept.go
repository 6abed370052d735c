package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"invoicegen/internal/document"
	"invoicegen/internal/ledger"
	"invoicegen/internal/logger"
)

var acceptCmd = &cobra.Command{
	Use:   "accept [metadata-file]",
	Short: "Accept a generated document and record it in the running totals",
	Long: `Accept a previously generated document by pointing at its metadata
sidecar (the .json file written next to the PDF). The transaction amount is
converted into GBP and added to the income or expense total. Accepting is
one-way: accepted transactions are never edited or removed.

A warning is printed once cumulative income reaches the VAT registration
threshold of £90,000.`,
	Example: `  invoicegen accept output/invoice_INV005_20260829.json`,
	Args:    cobra.ExactArgs(1),
	RunE:    runAccept,
}

func init() {
	rootCmd.AddCommand(acceptCmd)
}

func runAccept(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("accept")

	meta, err := document.ReadMetadata(args[0])
	if err != nil {
		return err
	}

	book := ledger.Open(cfg.LedgerFile, ledger.DefaultRates(cfg.USDRate()))

	converted, err := book.RecordAccepted(meta.TransactionType, meta.Amount, meta.Currency)
	if err != nil {
		log.Error().
			Err(err).
			Str("number", meta.Number).
			Msg("Failed to record accepted document")
		return err
	}

	totals := book.Totals()

	symbol := "£"
	if meta.Currency == "USD" {
		symbol = "$"
	}
	fmt.Printf("Document %s accepted: %s of %s%s recorded (£%s)\n",
		meta.Number, meta.TransactionType, symbol, meta.Amount.StringFixed(2), converted.StringFixed(2))
	fmt.Printf("Total Income:   £%s\n", totals.Income.StringFixed(2))
	fmt.Printf("Total Expenses: £%s\n", totals.Expense.StringFixed(2))

	if book.IncomeExceedsThreshold() {
		fmt.Printf("WARNING: Total income has reached £%s - VAT registration required!\n",
			ledger.VATRegistrationThreshold.StringFixed(2))
	}

	return nil
}
