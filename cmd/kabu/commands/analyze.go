package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze SYMBOL [SYMBOL...]",
	Short: "Analyze one or more symbols",
	Long: `Runs the full indicator and scoring pipeline for each symbol.

With one symbol the full indicator detail is printed. With several,
failed symbols are skipped and the rest are reported.

Example:
  go run ./cmd/kabu analyze 7203
  go run ./cmd/kabu analyze 7203 6758 9984`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	app, cleanup, err := newApp()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()

	if len(args) == 1 {
		analysis, err := app.analyzer.Analyze(ctx, args[0])
		if err != nil {
			return fmt.Errorf("analyze %s: %w", args[0], err)
		}
		printAnalysis(analysis)
		return nil
	}

	results := app.analyzer.AnalyzeBatch(ctx, args)
	if len(results) == 0 {
		return fmt.Errorf("all %d symbols failed to analyze", len(args))
	}

	for _, analysis := range results {
		printAnalysis(analysis)
	}

	if len(results) < len(args) {
		fmt.Printf("⚠️  %d of %d symbols skipped\n\n", len(args)-len(results), len(args))
	}

	return nil
}
