package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/pathlight-ai/pathlight-engine/pkg/models"
	"github.com/pathlight-ai/pathlight-engine/pkg/services"
)

// ProfileHandler handles learner-profile HTTP requests.
type ProfileHandler struct {
	profiles services.ProfileService
	logger   *zap.Logger
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profiles services.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, logger: logger}
}

// RegisterRoutes registers the profile handler's routes on the given mux.
func (h *ProfileHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/profiles", h.Create)
	mux.HandleFunc("GET /api/profiles/{profileID}", h.Get)
}

// Create handles POST /api/profiles.
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_input", "invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	profile, err := h.profiles.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusCreated, profile); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Get handles GET /api/profiles/{profileID}.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profileID, err := strconv.ParseInt(r.PathValue("profileID"), 10, 64)
	if err != nil || profileID <= 0 {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_input", "invalid profile id"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	profile, err := h.profiles.Get(r.Context(), profileID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, profile); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
