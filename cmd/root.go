package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"invoicegen/internal/config"
	"invoicegen/internal/logger"
)

var version = "1.0.0"

// cfg is loaded once in main before Execute runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "invoicegen",
	Short: "Generate business invoices and receipts with sequential numbering",
	Long: `invoicegen generates professional invoices and receipts for business
transactions. Each document gets a sequential number per category (INV... for
invoices, REC... for receipts); manual numbers are collision-checked against
the issued range and can be reused with an explicit --force confirmation.

Accepted documents feed running income and expense totals, converted into GBP,
with a warning once cumulative income reaches the VAT registration threshold.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("invoicegen executed without subcommand")

		fmt.Println("Use --help to see available commands and options.")
	},
}

// SetConfig hands the loaded configuration to the command tree.
func SetConfig(c *config.Config) {
	cfg = c
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
