package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wonny/kabu/internal/analyzer"
	"github.com/wonny/kabu/internal/contracts"
	"github.com/wonny/kabu/pkg/logger"
)

// AnalysisHandler handles per-symbol analysis and ranking endpoints.
type AnalysisHandler struct {
	analyzer *analyzer.Analyzer
	logger   *logger.Logger
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(a *analyzer.Analyzer, log *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer: a,
		logger:   log,
	}
}

// GetAnalysis runs the full pipeline for one symbol.
// GET /api/analyze/{symbol}
func (h *AnalysisHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	analysis, err := h.analyzer.Analyze(r.Context(), symbol)
	if err != nil {
		h.logger.WithError(err).WithField("symbol", symbol).Error("Analysis failed")
		respondError(w, statusFor(err), "Analysis failed: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, analysis)
}

// BatchRequest is the payload for batch analysis and ranking.
type BatchRequest struct {
	Symbols []string `json:"symbols"`
}

// AnalyzeBatch analyzes a list of symbols, omitting failures.
// POST /api/analyze
func (h *AnalysisHandler) AnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	results := h.analyzer.AnalyzeBatch(r.Context(), req.Symbols)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"requested": len(req.Symbols),
		"analyzed":  len(results),
		"results":   results,
	})
}

// Rank analyzes and ranks a list of symbols by composite score.
// POST /api/rank
func (h *AnalysisHandler) Rank(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ranked := h.analyzer.Compare(r.Context(), req.Symbols)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(ranked),
		"ranking": ranked,
	})
}

// GetRisk returns risk metrics for one symbol against the market proxy.
// GET /api/risk/{symbol}
func (h *AnalysisHandler) GetRisk(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	analysis, err := h.analyzer.AnalyzeRisk(r.Context(), symbol)
	if err != nil {
		h.logger.WithError(err).WithField("symbol", symbol).Error("Risk analysis failed")
		respondError(w, statusFor(err), "Risk analysis failed: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, analysis)
}

// statusFor maps pipeline errors to HTTP status codes. Insufficient
// input data is the caller's problem, everything else is ours.
func statusFor(err error) int {
	var insufficientErr *contracts.DataInsufficientError
	if errors.As(err, &insufficientErr) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
