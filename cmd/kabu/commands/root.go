package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kabu",
	Short: "Technical analysis engine for Tokyo-listed equities",
	Long: `kabu - technical analysis and portfolio engine for Japanese stocks

Fetches daily OHLCV data, computes technical indicators, scores each
symbol over three horizons, and builds risk-aware portfolios.

Examples:
  go run ./cmd/kabu analyze 7203
  go run ./cmd/kabu rank 7203 6758 9984
  go run ./cmd/kabu portfolio 7203 6758 9984 --method MAX_SHARPE
  go run ./cmd/kabu api`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
