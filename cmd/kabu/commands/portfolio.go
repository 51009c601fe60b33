package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/kabu/internal/contracts"
)

// portfolioCmd represents the portfolio command
var portfolioCmd = &cobra.Command{
	Use:   "portfolio SYMBOL SYMBOL [SYMBOL...]",
	Short: "Build a portfolio allocation",
	Long: `Computes portfolio weights, expected return, risk, and the
correlation matrix for the given symbols.

Methods:
  EQUAL_WEIGHT  equal allocation (default)
  MIN_VARIANCE  minimum-variance allocation
  MAX_SHARPE    weights proportional to positive expected returns

Example:
  go run ./cmd/kabu portfolio 7203 6758 9984 --method MAX_SHARPE`,
	Args: cobra.MinimumNArgs(2),
	RunE: runPortfolio,
}

var portfolioMethod string

func init() {
	rootCmd.AddCommand(portfolioCmd)

	portfolioCmd.Flags().StringVar(&portfolioMethod, "method", "EQUAL_WEIGHT",
		"weighting method (EQUAL_WEIGHT|MIN_VARIANCE|MAX_SHARPE)")
}

func runPortfolio(cmd *cobra.Command, args []string) error {
	method := contracts.WeightingMethod(portfolioMethod)
	switch method {
	case contracts.WeightEqual, contracts.WeightMinVariance, contracts.WeightMaxSharpe:
	default:
		return fmt.Errorf("unknown weighting method %q", portfolioMethod)
	}

	app, cleanup, err := newApp()
	if err != nil {
		return err
	}
	defer cleanup()

	weights, correlation, err := app.analyzer.BuildPortfolio(context.Background(), args, method)
	if err != nil {
		return fmt.Errorf("build portfolio: %w", err)
	}

	printHeader(fmt.Sprintf("Portfolio (%s)", weights.Method))

	for i, symbol := range weights.Symbols {
		fmt.Printf("  %-8s %6.2f%%\n", symbol, weights.Weights[i])
	}

	fmt.Println("───────────────────────────────────────────────────────────")
	fmt.Printf("  Expected return : %6.2f%% p.a.\n", weights.ExpectedReturn)
	fmt.Printf("  Risk            : %6.2f%% p.a.\n", weights.Risk)
	fmt.Printf("  Sharpe ratio    : %6.2f\n", weights.SharpeRatio)
	fmt.Printf("  Diversification : %6.1f / 100\n", correlation.DiversificationScore)
	printFooter()

	return nil
}
