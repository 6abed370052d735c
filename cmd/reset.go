package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"invoicegen/internal/counter"
	"invoicegen/internal/logger"
	"invoicegen/internal/numbering"
	"invoicegen/pkg/models"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset document numbering to start from a chosen number",
	Long: `Administratively reset the numbering counters so the next generated
document in every category gets the chosen number. No existence checks are
performed; this is an out-of-band correction, not a normal issuance path.`,
	Example: `  # The next invoice and receipt will be numbered 20
  invoicegen reset --start 20`,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().Int("start", 1, "Number the next allocation should yield (>= 1)")
}

func runReset(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("reset")

	start, _ := cmd.Flags().GetInt("start")
	if start < 1 {
		return fmt.Errorf("--start must be at least 1, got %d", start)
	}

	service := numbering.NewService(counter.NewStore(cfg.CounterFile))

	// The stored mark is the last issued number, so the next allocation
	// yields start when the mark is start-1.
	for _, c := range models.Categories {
		if err := service.Reset(c, start-1); err != nil {
			return err
		}
	}

	log.Info().
		Int("start", start).
		Msg("Numbering counters reset")

	for _, c := range models.Categories {
		fmt.Printf("%s numbering will continue from %s\n", c, numbering.Format(start, c))
	}

	return nil
}
