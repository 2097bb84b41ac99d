package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/pathlight-ai/pathlight-engine/pkg/models"
	"github.com/pathlight-ai/pathlight-engine/pkg/services"
)

// FeedbackHandler handles learner-feedback HTTP requests.
type FeedbackHandler struct {
	analyzer services.FeedbackAnalyzer
	logger   *zap.Logger
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(analyzer services.FeedbackAnalyzer, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{analyzer: analyzer, logger: logger}
}

// RegisterRoutes registers the feedback handler's routes on the given mux.
func (h *FeedbackHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/feedback", h.Submit)
}

// Submit handles POST /api/feedback.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var feedback models.Feedback
	if err := json.NewDecoder(r.Body).Decode(&feedback); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_input", "invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	result, err := h.analyzer.Analyze(r.Context(), feedback)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, result); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
