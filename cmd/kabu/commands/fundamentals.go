package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/kabu/internal/fundamental"
)

// fundamentalsCmd represents the fundamentals command
var fundamentalsCmd = &cobra.Command{
	Use:   "fundamentals SYMBOL",
	Short: "Fetch and score financial statement data",
	Long: `Fetches financial data via the helper script and rates it with the
weighted-threshold scorer.

Example:
  go run ./cmd/kabu fundamentals 7203`,
	Args: cobra.ExactArgs(1),
	RunE: runFundamentals,
}

func init() {
	rootCmd.AddCommand(fundamentalsCmd)
}

func runFundamentals(cmd *cobra.Command, args []string) error {
	app, cleanup, err := newApp()
	if err != nil {
		return err
	}
	defer cleanup()

	provider := fundamental.NewSubprocessProvider(app.cfg.Fundamentals, app.log)
	scorer := fundamental.NewScorer(app.log)

	data, err := provider.Fetch(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("fetch fundamentals for %s: %w", args[0], err)
	}

	score, err := scorer.Score(data)
	if err != nil {
		return fmt.Errorf("score fundamentals for %s: %w", args[0], err)
	}

	printHeader(fmt.Sprintf("%s  %s", data.Symbol, data.CompanyName))
	fmt.Printf("  Score  : %.1f / 100 (%s)\n", score.Score, score.Rating)
	fmt.Println("───────────────────────────────────────────────────────────")
	for _, reason := range score.Reasons {
		fmt.Printf("  - %s\n", reason)
	}
	printFooter()

	return nil
}
