package commands

import (
	"fmt"

	"github.com/wonny/kabu/internal/contracts"
)

// ═══════════════════════════════════════════════════════════
// Common formatting utilities
// All commands share the same terminal output style.
// ═══════════════════════════════════════════════════════════

func printHeader(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("  %s\n", title)
	fmt.Println("───────────────────────────────────────────────────────────")
}

func printFooter() {
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println()
}

func signalMark(signal contracts.Signal) string {
	switch signal {
	case contracts.SignalBuy:
		return "🟢 BUY "
	case contracts.SignalSell:
		return "🔴 SELL"
	default:
		return "⚪ HOLD"
	}
}

func printHorizon(label string, hs contracts.HorizonScore) {
	fmt.Printf("  %-12s %s  score %6.1f\n", label, signalMark(hs.Signal), hs.Score)
	for _, reason := range hs.Reasons {
		fmt.Printf("               - %s\n", reason)
	}
}

func printAnalysis(a *contracts.Analysis) {
	title := a.Symbol
	if a.Name != "" {
		title = fmt.Sprintf("%s  %s", a.Symbol, a.Name)
	}
	printHeader(fmt.Sprintf("%s  ¥%.1f  (%s)", title, a.Price, a.Date.Format("2006-01-02")))

	fmt.Printf("  SMA20/50/200 : %.1f / %.1f / %.1f\n",
		a.Indicators.SMA20, a.Indicators.SMA50, a.Indicators.SMA200)
	fmt.Printf("  RSI(14)      : %.1f\n", a.Indicators.RSI)
	fmt.Printf("  MACD         : %.2f (signal %.2f)\n", a.Indicators.MACD, a.Indicators.MACDSignal)

	if a.Bollinger != nil {
		fmt.Printf("  Bollinger    : %s (%%B %.1f, bandwidth %.1f%%)\n",
			a.Bollinger.Signal, a.Bollinger.PercentB, a.Bollinger.Bandwidth)
	}
	if a.Ichimoku != nil {
		fmt.Printf("  Ichimoku     : %s\n", a.Ichimoku.Signal)
	}
	if a.ATR != nil {
		fmt.Printf("  ATR(14)      : %.1f (%.2f%%, %s)\n", a.ATR.ATR, a.ATR.ATRPercent, a.ATR.Volatility)
	}
	if a.Stochastic != nil {
		fmt.Printf("  Stochastic   : %%K %.1f / %%D %.1f (%s)\n",
			a.Stochastic.K, a.Stochastic.D, a.Stochastic.Signal)
	}

	fmt.Println("───────────────────────────────────────────────────────────")
	printHorizon("Short term", a.ShortTerm)
	printHorizon("Medium term", a.MediumTerm)
	printHorizon("Long term", a.LongTerm)
	fmt.Println("───────────────────────────────────────────────────────────")
	fmt.Printf("  Composite    : %.1f\n", a.CompositeScore())
	printFooter()
}
