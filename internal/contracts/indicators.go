package contracts

// IndicatorSet is a snapshot of the basic indicators for one series at its
// latest point. Created fresh per analysis call; never persisted.
type IndicatorSet struct {
	SMA20      float64 `json:"sma20"`
	SMA50      float64 `json:"sma50"`
	SMA200     float64 `json:"sma200"`
	RSI        float64 `json:"rsi"`
	MACD       float64 `json:"macd"`
	MACDSignal float64 `json:"macd_signal"`
}

// Bollinger band state classification, in priority order.
// Bandwidth checks take priority over breakout checks.
const (
	BandSqueeze      = "SQUEEZE"
	BandExpansion    = "EXPANSION"
	BandBreakoutUp   = "BREAKOUT_UP"
	BandBreakoutDown = "BREAKOUT_DOWN"
	BandNormal       = "NORMAL"
)

// BollingerBands holds the band values at the latest point of a series.
type BollingerBands struct {
	Upper     float64 `json:"upper"`
	Middle    float64 `json:"middle"`
	Lower     float64 `json:"lower"`
	Bandwidth float64 `json:"bandwidth"` // (upper-lower)/middle * 100
	PercentB  float64 `json:"percent_b"` // (price-lower)/(upper-lower) * 100
	Signal    string  `json:"signal"`
}

// Ichimoku trend classification from the 4-factor vote.
const (
	IchimokuStrongBullish = "STRONG_BULLISH"
	IchimokuBullish       = "BULLISH"
	IchimokuNeutral       = "NEUTRAL"
	IchimokuBearish       = "BEARISH"
	IchimokuStrongBearish = "STRONG_BEARISH"
)

// IchimokuCloud holds the cloud lines at the latest point of a series.
type IchimokuCloud struct {
	Tenkan      float64 `json:"tenkan"`       // 9-period Donchian midpoint
	Kijun       float64 `json:"kijun"`        // 26-period Donchian midpoint
	SenkouA     float64 `json:"senkou_a"`     // (tenkan+kijun)/2
	SenkouB     float64 `json:"senkou_b"`     // 52-period Donchian midpoint
	Chikou      float64 `json:"chikou"`       // close from 26 periods back
	CloudTop    float64 `json:"cloud_top"`    // max(senkouA, senkouB)
	CloudBottom float64 `json:"cloud_bottom"` // min(senkouA, senkouB)
	Thickness   float64 `json:"thickness"`    // (top-bottom)/price * 100
	Signal      string  `json:"signal"`
}

// ATR volatility buckets by ATR/price ratio.
const (
	VolatilityVeryHigh = "VERY_HIGH"
	VolatilityHigh     = "HIGH"
	VolatilityNormal   = "NORMAL"
	VolatilityLow      = "LOW"
	VolatilityVeryLow  = "VERY_LOW"
)

// ATRResult holds the average true range and derived stop suggestions.
type ATRResult struct {
	ATR          float64 `json:"atr"`
	ATRPercent   float64 `json:"atr_percent"` // ATR/price * 100
	Volatility   string  `json:"volatility"`
	StopLossLong float64 `json:"stop_loss_long"`  // price - 2*ATR
	StopLossShrt float64 `json:"stop_loss_short"` // price + 2*ATR
}

// Stochastic oscillator state and crossover classifications.
const (
	StochOverbought = "OVERBOUGHT"
	StochOversold   = "OVERSOLD"
	StochNeutral    = "NEUTRAL"

	CrossGolden = "GOLDEN_CROSS"
	CrossDead   = "DEAD_CROSS"
	CrossNone   = "NONE"
)

// Stochastic holds the %K/%D pair at the latest point of a series.
type Stochastic struct {
	K         float64 `json:"k"`
	D         float64 `json:"d"`
	Signal    string  `json:"signal"`
	Crossover string  `json:"crossover"`
}
