package selection

import (
	"sort"

	"github.com/wonny/kabu/internal/contracts"
	"github.com/wonny/kabu/pkg/logger"
)

// Ranker sorts analyzed symbols for cross-symbol comparison.
type Ranker struct {
	logger *logger.Logger
}

// NewRanker creates a new ranker
func NewRanker(log *logger.Logger) *Ranker {
	return &Ranker{
		logger: log,
	}
}

// Rank orders analyses by composite score, descending, and assigns
// 1-based ranks. An empty input yields an empty result, never an error.
func (r *Ranker) Rank(analyses []*contracts.Analysis) []contracts.RankedSymbol {
	ranked := make([]contracts.RankedSymbol, 0, len(analyses))

	for _, a := range analyses {
		ranked = append(ranked, contracts.RankedSymbol{
			Symbol:     a.Symbol,
			Score:      a.CompositeScore(),
			ShortTerm:  a.ShortTerm.Signal,
			MediumTerm: a.MediumTerm.Signal,
			LongTerm:   a.LongTerm.Signal,
			Price:      a.Price,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	if len(ranked) > 0 {
		r.logger.WithFields(map[string]interface{}{
			"total":      len(ranked),
			"top_symbol": ranked[0].Symbol,
			"top_score":  ranked[0].Score,
		}).Info("Ranking completed")
	}

	return ranked
}

// TopN returns the best n entries of an already ranked list.
func TopN(ranked []contracts.RankedSymbol, n int) []contracts.RankedSymbol {
	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
