package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sjlee/krx-insight/internal/contracts"
	"github.com/sjlee/krx-insight/internal/survey"
	"github.com/sjlee/krx-insight/pkg/logger"
)

// SurveyHandler handles questionnaire API endpoints
// ⭐ SSOT: 설문 API 핸들러는 이 구조체에서만
type SurveyHandler struct {
	classifier *survey.Classifier
	logger     *logger.Logger
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(classifier *survey.Classifier, log *logger.Logger) *SurveyHandler {
	return &SurveyHandler{
		classifier: classifier,
		logger:     log,
	}
}

// GetQuestions returns the fixed 11-question survey
// GET /api/survey/questions
func (h *SurveyHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"questions": survey.Questions(),
	})
}

// classifyRequest is the body of POST /api/survey/classify
type classifyRequest struct {
	Answers map[string]int `json:"answers"` // 문항 id → 선택지 인덱스 (0-base)
}

// classifyResponse pairs the profile with its presentation metadata
type classifyResponse struct {
	Profile contracts.InvestorProfile `json:"profile"`
	Info    survey.CategoryInfo       `json:"info"`
}

// Classify maps survey answers to an investor profile
// POST /api/survey/classify
func (h *SurveyHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// 미응답/범위 밖 응답은 분류기가 자체 처리하므로 여기서 검증하지 않는다.
	profile := h.classifier.Classify(req.Answers)

	respondJSON(w, http.StatusOK, classifyResponse{
		Profile: profile,
		Info:    survey.Describe(profile.Category),
	})
}
