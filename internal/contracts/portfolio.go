package contracts

// WeightingMethod selects the portfolio weight allocation scheme.
type WeightingMethod string

const (
	WeightEqual       WeightingMethod = "EQUAL_WEIGHT"
	WeightMinVariance WeightingMethod = "MIN_VARIANCE"
	WeightMaxSharpe   WeightingMethod = "MAX_SHARPE"
)

// PortfolioWeights is an allocation across symbols.
// Weights are percentages summing to 100, parallel to Symbols.
type PortfolioWeights struct {
	Symbols        []string        `json:"symbols"`
	Weights        []float64       `json:"weights"`
	ExpectedReturn float64         `json:"expected_return"` // annualized, %
	Risk           float64         `json:"risk"`            // annualized stdev, %
	SharpeRatio    float64         `json:"sharpe_ratio"`
	Method         WeightingMethod `json:"method"`
}

// CorrelationMatrix is a square matrix indexed by symbol order.
// Symmetric by construction with a unit diagonal.
type CorrelationMatrix struct {
	Symbols              []string    `json:"symbols"`
	Matrix               [][]float64 `json:"matrix"`
	DiversificationScore float64     `json:"diversification_score"` // 0-100
}

// RiskAnalysis holds per-symbol risk metrics against the market proxy.
type RiskAnalysis struct {
	Symbol           string  `json:"symbol"`
	Beta             float64 `json:"beta"`
	MaxDrawdown      float64 `json:"max_drawdown"` // largest peak-to-trough decline, %
	VaR95            float64 `json:"var_95"`       // 5th-percentile daily loss, positive
	SharpeRatio      float64 `json:"sharpe_ratio"`
	AnnualizedReturn float64 `json:"annualized_return"` // %
	Volatility       float64 `json:"volatility"`        // annualized stdev, %
}
