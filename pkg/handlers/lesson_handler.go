package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/pathlight-ai/pathlight-engine/pkg/services"
)

// UnitRequest selects one unit of a plan, used by the lesson and review
// endpoints.
type UnitRequest struct {
	UnitID string `json:"unit_id"`
}

// LessonHandler handles teaching-content HTTP requests.
type LessonHandler struct {
	lessons services.LessonService
	logger  *zap.Logger
}

// NewLessonHandler creates a new lesson handler.
func NewLessonHandler(lessons services.LessonService, logger *zap.Logger) *LessonHandler {
	return &LessonHandler{lessons: lessons, logger: logger}
}

// RegisterRoutes registers the lesson handler's routes on the given mux.
func (h *LessonHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/plans/{planID}/lesson", h.Generate)
}

// Generate handles POST /api/plans/{planID}/lesson.
func (h *LessonHandler) Generate(w http.ResponseWriter, r *http.Request) {
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

	content, err := h.lessons.GenerateLesson(r.Context(), planID, req.UnitID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, content); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
