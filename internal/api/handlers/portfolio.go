package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/wonny/kabu/internal/analyzer"
	"github.com/wonny/kabu/internal/contracts"
	"github.com/wonny/kabu/pkg/logger"
)

// PortfolioHandler handles portfolio construction endpoints.
type PortfolioHandler struct {
	analyzer *analyzer.Analyzer
	logger   *logger.Logger
}

// NewPortfolioHandler creates a new portfolio handler.
func NewPortfolioHandler(a *analyzer.Analyzer, log *logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		analyzer: a,
		logger:   log,
	}
}

// PortfolioRequest is the payload for portfolio construction.
type PortfolioRequest struct {
	Symbols []string `json:"symbols"`
	Method  string   `json:"method"` // EQUAL_WEIGHT, MIN_VARIANCE, MAX_SHARPE
}

// Build computes portfolio weights and the correlation matrix.
// POST /api/portfolio
func (h *PortfolioHandler) Build(w http.ResponseWriter, r *http.Request) {
	var req PortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	method := contracts.WeightingMethod(req.Method)
	switch method {
	case contracts.WeightEqual, contracts.WeightMinVariance, contracts.WeightMaxSharpe:
	case "":
		method = contracts.WeightEqual
	default:
		respondError(w, http.StatusBadRequest, "Unknown weighting method: "+req.Method)
		return
	}

	weights, correlation, err := h.analyzer.BuildPortfolio(r.Context(), req.Symbols, method)
	if err != nil {
		h.logger.WithError(err).Error("Portfolio construction failed")
		respondError(w, statusFor(err), "Portfolio construction failed: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"weights":     weights,
		"correlation": correlation,
	})
}
