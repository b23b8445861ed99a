package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sjlee/krx-insight/internal/analysis"
	"github.com/sjlee/krx-insight/internal/contracts"
	"github.com/sjlee/krx-insight/internal/scoring"
	"github.com/sjlee/krx-insight/internal/trend"
	"github.com/sjlee/krx-insight/pkg/logger"
)

// AnalysisHandler handles scoring and signal API endpoints
// ⭐ SSOT: 분석 API 핸들러는 이 구조체에서만
type AnalysisHandler struct {
	scorer    *scoring.Scorer
	generator *trend.Generator
	logger    *logger.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(scorer *scoring.Scorer, generator *trend.Generator, log *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		scorer:    scorer,
		generator: generator,
		logger:    log,
	}
}

// recommendRequest is the body of POST /api/analysis/recommendations.
// 스냅샷 전체를 본문으로 받는다 (정규화가 corpus 기준이므로 부분 전달 금지).
type recommendRequest struct {
	Category string                   `json:"category"` // slug 또는 한글명
	TopN     int                      `json:"top_n"`    // 0이면 전체
	Tickers  []contracts.TickerMetric `json:"tickers"`
}

// Recommend scores the snapshot for the requested risk category
// POST /api/analysis/recommendations
func (h *AnalysisHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// 알 수 없는 성향은 위험중립형으로 대체한다 (요청 전체를 실패시키지 않음).
	category := contracts.Neutral
	if req.Category != "" {
		parsed, err := contracts.ParseRiskCategory(req.Category)
		if err != nil {
			h.logger.WithFields(map[string]interface{}{
				"category": req.Category,
			}).Warn("Unknown risk category, falling back to neutral")
		} else {
			category = parsed
		}
	}

	var recommendations []contracts.Recommendation
	if req.TopN > 0 {
		recommendations = h.scorer.TopN(req.Tickers, category, req.TopN)
	} else {
		recommendations = h.scorer.Score(req.Tickers, category)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"category":        category,
		"recommendations": recommendations,
	})
}

// signalsRequest is the body of POST /api/analysis/signals
type signalsRequest struct {
	Window  string                   `json:"window"` // 기본값 "1D"
	Tickers []contracts.TickerMetric `json:"tickers"`
}

// Signals generates trend signals for the snapshot
// POST /api/analysis/signals
func (h *AnalysisHandler) Signals(w http.ResponseWriter, r *http.Request) {
	var req signalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Window == "" {
		req.Window = "1D"
	}

	signals := h.generator.Generate(req.Tickers, req.Window)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"window":  req.Window,
		"signals": signals,
	})
}

// summaryRequest is the body of POST /api/analysis/summary
type summaryRequest struct {
	Tickers []contracts.TickerMetric `json:"tickers"`
}

// Summary returns aggregate statistics for the snapshot
// POST /api/analysis/summary
func (h *AnalysisHandler) Summary(w http.ResponseWriter, r *http.Request) {
	var req summaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	respondJSON(w, http.StatusOK, analysis.Summarize(req.Tickers))
}
