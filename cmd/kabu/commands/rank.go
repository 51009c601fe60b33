package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// rankCmd represents the rank command
var rankCmd = &cobra.Command{
	Use:   "rank SYMBOL SYMBOL [SYMBOL...]",
	Short: "Rank symbols by composite score",
	Long: `Analyzes each symbol and ranks them by the average of the three
horizon scores, highest first.

Example:
  go run ./cmd/kabu rank 7203 6758 9984 8306`,
	Args: cobra.MinimumNArgs(2),
	RunE: runRank,
}

func init() {
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	app, cleanup, err := newApp()
	if err != nil {
		return err
	}
	defer cleanup()

	ranked := app.analyzer.Compare(context.Background(), args)
	if len(ranked) == 0 {
		return fmt.Errorf("all %d symbols failed to analyze", len(args))
	}

	printHeader("Ranking")
	fmt.Printf("  %-4s %-8s %8s  %-7s %-7s %-7s %10s\n",
		"#", "Symbol", "Score", "Short", "Medium", "Long", "Price")
	fmt.Println("───────────────────────────────────────────────────────────")

	for _, rs := range ranked {
		fmt.Printf("  %-4d %-8s %8.1f  %-7s %-7s %-7s %10.1f\n",
			rs.Rank, rs.Symbol, rs.Score,
			rs.ShortTerm, rs.MediumTerm, rs.LongTerm, rs.Price)
	}
	printFooter()

	if len(ranked) < len(args) {
		fmt.Printf("⚠️  %d of %d symbols skipped\n\n", len(args)-len(ranked), len(args))
	}

	return nil
}
