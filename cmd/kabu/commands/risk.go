package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// riskCmd represents the risk command
var riskCmd = &cobra.Command{
	Use:   "risk SYMBOL",
	Short: "Risk metrics for one symbol",
	Long: `Computes beta against the market proxy, max drawdown, 95% VaR,
Sharpe ratio, and annualized return and volatility.

Example:
  go run ./cmd/kabu risk 7203`,
	Args: cobra.ExactArgs(1),
	RunE: runRisk,
}

func init() {
	rootCmd.AddCommand(riskCmd)
}

func runRisk(cmd *cobra.Command, args []string) error {
	app, cleanup, err := newApp()
	if err != nil {
		return err
	}
	defer cleanup()

	analysis, err := app.analyzer.AnalyzeRisk(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("risk analysis for %s: %w", args[0], err)
	}

	printHeader(fmt.Sprintf("Risk: %s (vs %s)", analysis.Symbol, app.cfg.Market.ProxySymbol))
	fmt.Printf("  Beta              : %6.2f\n", analysis.Beta)
	fmt.Printf("  Max drawdown      : %6.2f%%\n", analysis.MaxDrawdown)
	fmt.Printf("  VaR (95%%, daily)  : %6.2f%%\n", analysis.VaR95*100)
	fmt.Printf("  Sharpe ratio      : %6.2f\n", analysis.SharpeRatio)
	fmt.Printf("  Annualized return : %6.2f%%\n", analysis.AnnualizedReturn)
	fmt.Printf("  Volatility        : %6.2f%%\n", analysis.Volatility)
	printFooter()

	return nil
}
