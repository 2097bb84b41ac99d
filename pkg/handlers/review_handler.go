package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/pathlight-ai/pathlight-engine/pkg/services"
)

// ReviewHandler handles review-plan HTTP requests.
type ReviewHandler struct {
	reviews services.ReviewService
	logger  *zap.Logger
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviews services.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, logger: logger}
}

// RegisterRoutes registers the review handler's routes on the given mux.
func (h *ReviewHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/plans/{planID}/review", h.Plan)
}

// Plan handles POST /api/plans/{planID}/review.
func (h *ReviewHandler) Plan(w http.ResponseWriter, r *http.Request) {
	planID, ok := parsePlanID(w, r, h.logger)
	if !ok {
		return
	}

	var req UnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UnitID == "" {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_input", "unit_id is required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	plan, err := h.reviews.PlanReview(r.Context(), planID, req.UnitID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, plan); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
