package contracts

// FinancialData mirrors the JSON emitted by the fundamentals helper script.
// Pointer fields are nil when the provider has no figure for the symbol.
type FinancialData struct {
	Symbol          string   `json:"symbol"`
	CompanyName     string   `json:"companyName"`
	MarketCap       *float64 `json:"marketCap"`
	PER             *float64 `json:"per"`
	PBR             *float64 `json:"pbr"`
	EPS             *float64 `json:"eps"`
	DividendYield   *float64 `json:"dividendYield"`
	ROE             *float64 `json:"roe"`
	DebtToEquity    *float64 `json:"debtToEquity"`
	CurrentRatio    *float64 `json:"currentRatio"`
	OperatingMargin *float64 `json:"operatingMargin"`
	ProfitMargin    *float64 `json:"profitMargin"`
}

// FundamentalScore is the weighted-threshold rating of a symbol's financials.
type FundamentalScore struct {
	Symbol  string   `json:"symbol"`
	Score   float64  `json:"score"`  // 0-100
	Rating  string   `json:"rating"` // EXCELLENT, GOOD, FAIR, POOR
	Reasons []string `json:"reasons"`
}
