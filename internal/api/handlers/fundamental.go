package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wonny/kabu/internal/fundamental"
	"github.com/wonny/kabu/pkg/logger"
)

// FundamentalHandler handles financial statement endpoints.
type FundamentalHandler struct {
	provider fundamental.Provider
	scorer   *fundamental.Scorer
	logger   *logger.Logger
}

// NewFundamentalHandler creates a new fundamentals handler.
func NewFundamentalHandler(provider fundamental.Provider, scorer *fundamental.Scorer, log *logger.Logger) *FundamentalHandler {
	return &FundamentalHandler{
		provider: provider,
		scorer:   scorer,
		logger:   log,
	}
}

// GetScore fetches financials for one symbol and rates them.
// GET /api/fundamentals/{symbol}
func (h *FundamentalHandler) GetScore(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	data, err := h.provider.Fetch(r.Context(), symbol)
	if err != nil {
		h.logger.WithError(err).WithField("symbol", symbol).Error("Fundamentals fetch failed")
		respondError(w, http.StatusBadGateway, "Fundamentals fetch failed: "+err.Error())
		return
	}

	score, err := h.scorer.Score(data)
	if err != nil {
		respondError(w, statusFor(err), "Fundamentals scoring failed: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"financials": data,
		"score":      score,
	})
}
