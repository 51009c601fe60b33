package contracts

import "time"

// Signal is a buy-sell-hold decision for one horizon.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalHold Signal = "HOLD"
)

// Horizon identifies the scoring timeframe.
type Horizon string

const (
	HorizonShort  Horizon = "short"  // days to weeks
	HorizonMedium Horizon = "medium" // weeks to months
	HorizonLong   Horizon = "long"   // months to a year
)

// HorizonScore is the scored decision for one (symbol, horizon) pair.
// Score starts at a 50 baseline and accumulates additive rule deltas.
// It is intentionally not clamped to [0,100]; extreme rule combinations
// can push it outside that range and consumers must tolerate this.
type HorizonScore struct {
	Horizon Horizon  `json:"horizon"`
	Signal  Signal   `json:"signal"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

// SignalFromScore maps a score to its signal.
// The 60/40 banding with a HOLD dead zone is the decision boundary contract.
func SignalFromScore(score float64) Signal {
	switch {
	case score >= 60:
		return SignalBuy
	case score <= 40:
		return SignalSell
	default:
		return SignalHold
	}
}

// Analysis is the full per-symbol result produced by one analysis call.
type Analysis struct {
	Symbol     string       `json:"symbol"`
	Name       string       `json:"name,omitempty"`
	Date       time.Time    `json:"date"`
	Price      float64      `json:"price"`
	Indicators IndicatorSet `json:"indicators"`

	Bollinger  *BollingerBands `json:"bollinger,omitempty"`
	Ichimoku   *IchimokuCloud  `json:"ichimoku,omitempty"`
	ATR        *ATRResult      `json:"atr,omitempty"`
	Stochastic *Stochastic     `json:"stochastic,omitempty"`

	ShortTerm  HorizonScore `json:"short_term"`
	MediumTerm HorizonScore `json:"medium_term"`
	LongTerm   HorizonScore `json:"long_term"`
}

// CompositeScore averages the three horizon scores, used for ranking.
func (a *Analysis) CompositeScore() float64 {
	return (a.ShortTerm.Score + a.MediumTerm.Score + a.LongTerm.Score) / 3
}

// RankedSymbol is one entry in a cross-symbol comparison.
type RankedSymbol struct {
	Symbol     string  `json:"symbol"`
	Rank       int     `json:"rank"` // 1-based
	Score      float64 `json:"score"`
	ShortTerm  Signal  `json:"short_term"`
	MediumTerm Signal  `json:"medium_term"`
	LongTerm   Signal  `json:"long_term"`
	Price      float64 `json:"price"`
}
