package fundamental

import (
	"fmt"

	"github.com/wonny/kabu/internal/contracts"
	"github.com/wonny/kabu/pkg/logger"
)

// ============================================================================
// Weighted-threshold scoring of financial metrics
// ============================================================================
//
// Each available metric is rated against fixed thresholds and contributes its
// weight to the score. Missing metrics neither help nor hurt: the score is
// renormalized over the weights that were actually evaluated, so a symbol
// with sparse data is judged only on what is known.

// metricRule rates one metric: full weight when good, zero when bad,
// half weight in between.
type metricRule struct {
	name   string
	weight float64
	value  func(*contracts.FinancialData) *float64
	good   func(float64) bool
	bad    func(float64) bool
}

var metricRules = []metricRule{
	{
		name:   "PER",
		weight: 20,
		value:  func(d *contracts.FinancialData) *float64 { return d.PER },
		good:   func(v float64) bool { return v > 0 && v < 15 },
		bad:    func(v float64) bool { return v <= 0 || v > 30 },
	},
	{
		name:   "PBR",
		weight: 15,
		value:  func(d *contracts.FinancialData) *float64 { return d.PBR },
		good:   func(v float64) bool { return v > 0 && v < 1.0 },
		bad:    func(v float64) bool { return v <= 0 || v > 3.0 },
	},
	{
		name:   "ROE",
		weight: 25,
		value:  func(d *contracts.FinancialData) *float64 { return d.ROE },
		good:   func(v float64) bool { return v >= 10 },
		bad:    func(v float64) bool { return v < 5 },
	},
	{
		name:   "operating margin",
		weight: 15,
		value:  func(d *contracts.FinancialData) *float64 { return d.OperatingMargin },
		good:   func(v float64) bool { return v >= 10 },
		bad:    func(v float64) bool { return v < 3 },
	},
	{
		name:   "profit margin",
		weight: 10,
		value:  func(d *contracts.FinancialData) *float64 { return d.ProfitMargin },
		good:   func(v float64) bool { return v >= 8 },
		bad:    func(v float64) bool { return v < 2 },
	},
	{
		name:   "dividend yield",
		weight: 10,
		value:  func(d *contracts.FinancialData) *float64 { return d.DividendYield },
		good:   func(v float64) bool { return v >= 3 },
		bad:    func(v float64) bool { return v < 0.5 },
	},
	{
		name:   "current ratio",
		weight: 5,
		value:  func(d *contracts.FinancialData) *float64 { return d.CurrentRatio },
		good:   func(v float64) bool { return v >= 1.5 },
		bad:    func(v float64) bool { return v < 1.0 },
	},
}

// Scorer rates financial data into a 0-100 fundamental score.
type Scorer struct {
	logger *logger.Logger
}

// NewScorer creates a new fundamental scorer.
func NewScorer(log *logger.Logger) *Scorer {
	return &Scorer{logger: log.WithComponent("fundamental")}
}

// Score rates the available metrics of one symbol.
// Returns an error when no scoreable metric is present at all.
func (s *Scorer) Score(data *contracts.FinancialData) (*contracts.FundamentalScore, error) {
	var earned, possible float64
	var reasons []string

	for _, rule := range metricRules {
		v := rule.value(data)
		if v == nil {
			continue
		}
		possible += rule.weight

		switch {
		case rule.good(*v):
			earned += rule.weight
			reasons = append(reasons, fmt.Sprintf("%s %.2f: good", rule.name, *v))
		case rule.bad(*v):
			reasons = append(reasons, fmt.Sprintf("%s %.2f: weak", rule.name, *v))
		default:
			earned += rule.weight / 2
			reasons = append(reasons, fmt.Sprintf("%s %.2f: fair", rule.name, *v))
		}
	}

	if possible == 0 {
		return nil, contracts.NewDataInsufficientError("fundamental", 1, 0)
	}

	score := earned / possible * 100

	result := &contracts.FundamentalScore{
		Symbol:  data.Symbol,
		Score:   score,
		Rating:  rating(score),
		Reasons: reasons,
	}

	s.logger.WithFields(map[string]interface{}{
		"symbol": data.Symbol,
		"score":  score,
		"rating": result.Rating,
	}).Debug("Scored fundamentals")

	return result, nil
}

func rating(score float64) string {
	switch {
	case score >= 80:
		return "EXCELLENT"
	case score >= 60:
		return "GOOD"
	case score >= 40:
		return "FAIR"
	default:
		return "POOR"
	}
}
