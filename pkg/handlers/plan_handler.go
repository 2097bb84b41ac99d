package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pathlight-ai/pathlight-engine/pkg/models"
	"github.com/pathlight-ai/pathlight-engine/pkg/services"
)

// CreatePlanRequest for POST /api/plans
type CreatePlanRequest struct {
	Topic     string `json:"topic"`
	ProfileID *int64 `json:"profile_id,omitempty"`
}

// PlanHandler handles learning-plan HTTP requests.
type PlanHandler struct {
	mapper services.KnowledgeMapper
	plans  services.PlanService
	logger *zap.Logger
}

// NewPlanHandler creates a new plan handler.
func NewPlanHandler(mapper services.KnowledgeMapper, plans services.PlanService, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{mapper: mapper, plans: plans, logger: logger}
}

// RegisterRoutes registers the plan handler's routes on the given mux.
func (h *PlanHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/plans", h.Create)
	mux.HandleFunc("GET /api/plans/{planID}", h.Get)
	mux.HandleFunc("GET /api/profiles/{profileID}/plans", h.ListByProfile)
}

// Create handles POST /api/plans: builds the topic's knowledge graph and
// linearizes it into a new persisted plan. Every call creates a new plan.
func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_input", "invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_input", "topic is required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	graph, err := h.mapper.BuildGraph(r.Context(), req.Topic)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	plan, err := h.plans.CreatePlan(r.Context(), req.ProfileID, graph)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusCreated, plan); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Get handles GET /api/plans/{planID}.
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	planID, ok := parsePlanID(w, r, h.logger)
	if !ok {
		return
	}

	plan, err := h.plans.GetPlan(r.Context(), planID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, plan); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ListByProfile handles GET /api/profiles/{profileID}/plans. An unknown
// profile yields an empty list.
func (h *PlanHandler) ListByProfile(w http.ResponseWriter, r *http.Request) {
	profileID, err := strconv.ParseInt(r.PathValue("profileID"), 10, 64)
	if err != nil || profileID <= 0 {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_input", "invalid profile id"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	plans, err := h.plans.ListPlans(r.Context(), profileID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	if plans == nil {
		plans = []*models.LearningPlan{}
	}

	if err := WriteJSON(w, http.StatusOK, plans); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// parsePlanID extracts and validates the {planID} path value. On failure it
// writes the error response and returns ok=false.
func parsePlanID(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (int64, bool) {
	planID, err := strconv.ParseInt(r.PathValue("planID"), 10, 64)
	if err != nil || planID <= 0 {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_input", "invalid plan id"); err != nil {
			logger.Error("Failed to write error response", zap.Error(err))
		}
		return 0, false
	}
	return planID, true
}
